// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — roster siswa (identitas untuk laporan & picker kelas)
// =========================================================

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Nomor admisi unik per sekolah; kunci grouping laporan per-siswa
	StudentAdmissionNo string `gorm:"column:student_admission_no;type:varchar(30);not null;uniqueIndex:uq_student_admission_no" json:"student_admission_no"`

	StudentName     string `gorm:"column:student_name;type:varchar(120);not null;index:ix_student_name" json:"student_name"`
	StudentStandard string `gorm:"column:student_standard;type:varchar(20);not null;index:ix_student_class" json:"student_standard"`
	StudentSection  string `gorm:"column:student_section;type:varchar(10);index:ix_student_class" json:"student_section"`

	// Titik naik/turun bus — tampil di laporan transport
	StudentBoardingPoint string `gorm:"column:student_boarding_point;type:varchar(80)" json:"student_boarding_point,omitempty"`

	StudentGuardianPhones pq.StringArray `gorm:"column:student_guardian_phones;type:text[]" json:"student_guardian_phones,omitempty"`

	// Timestamps (eksplisit)
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

// TableName overrides the table name used by Student to `students`
func (Student) TableName() string {
	return "students"
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *Student) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}
