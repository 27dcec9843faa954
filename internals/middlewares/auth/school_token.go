// file: internals/middlewares/auth/school_token.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolku_backend/internals/configs"
	helper "schoolku_backend/internals/helpers"
)

// SchoolTokenMiddleware memverifikasi Bearer token dan menaruh claim
// active_school_id ke locals. Request tanpa token tetap lolos — resolusi
// tenant masih bisa lewat header X-School-ID (lihat helpers/school_context.go);
// endpoint yang butuh tenant akan menolak sendiri bila dua-duanya kosong.
func SchoolTokenMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if raw == "" || !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			return c.Next()
		}
		tokenStr := strings.TrimSpace(raw[len("Bearer "):])

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "token tidak valid")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "claims tidak valid")
		}
		if v, ok := claims["active_school_id"].(string); ok && v != "" {
			c.Locals(helper.LocActiveSchoolID, v)
		}
		if v, ok := claims["sub"].(string); ok && v != "" {
			c.Locals(helper.LocUserID, v)
		}
		return c.Next()
	}
}
