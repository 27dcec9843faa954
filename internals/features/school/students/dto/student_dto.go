// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"schoolku_backend/internals/features/school/students/model"
)

type StudentResponse struct {
	StudentID     string   `json:"student_id"`
	AdmissionNo   string   `json:"admission_no"`
	Name          string   `json:"name"`
	Standard      string   `json:"standard"`
	Section       string   `json:"section,omitempty"`
	BoardingPoint string   `json:"boarding_point,omitempty"`
	GuardianPhone []string `json:"guardian_phones,omitempty"`
}

func ToStudentResponse(m model.Student) StudentResponse {
	return StudentResponse{
		StudentID:     m.StudentID.String(),
		AdmissionNo:   m.StudentAdmissionNo,
		Name:          m.StudentName,
		Standard:      m.StudentStandard,
		Section:       m.StudentSection,
		BoardingPoint: m.StudentBoardingPoint,
		GuardianPhone: append([]string(nil), m.StudentGuardianPhones...),
	}
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
