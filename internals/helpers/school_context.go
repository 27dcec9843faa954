// file: internals/helpers/school_context.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID         = "user_id"          // string | uuid
	LocActiveSchoolID = "active_school_id" // string UUID dari claim token
)

var ErrNoSchoolContext = errors.New("school id tidak ditemukan di token maupun header")

// GetSchoolIDFromContext membaca tenant id aktif:
// 1) locals hasil middleware token (claim active_school_id),
// 2) fallback header X-School-ID (dipakai tooling internal).
func GetSchoolIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	if v := c.Locals(LocActiveSchoolID); v != nil {
		switch t := v.(type) {
		case uuid.UUID:
			if t != uuid.Nil {
				return t, nil
			}
		case string:
			if id, err := uuid.Parse(strings.TrimSpace(t)); err == nil && id != uuid.Nil {
				return id, nil
			}
		}
	}
	if h := strings.TrimSpace(c.Get("X-School-ID")); h != "" {
		if id, err := uuid.Parse(h); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, ErrNoSchoolContext
}
