// internals/middlewares/auth/role_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
)

// OnlyRoles menolak request yang role-nya tidak ada di daftar.
// Dipasang SETELAH AuthMiddleware (butuh Locals("role")).
func OnlyRoles(message string, allowed ...string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[strings.ToLower(r)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := set[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}

// IsStaff: teacher/admin/owner saja.
func IsStaff(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorTeacher(feature), constants.StaffRoles...)
}

// IsAdmin: admin/owner saja.
func IsAdmin(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorAdmin(feature), constants.AdminRoles...)
}
