// file: internals/features/school/academics/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctrl "sekolahku_backend/internals/features/school/academics/classes/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// ClassRoomRoutes — dipasang di group staff (/api/a).
// Mutasi kelas & enrolment dikunci admin/owner; listing cukup staff.
func ClassRoomRoutes(staff fiber.Router, db *gorm.DB) {
	classHandler := classctrl.NewClassRoomController(db)

	grp := staff.Group("/classes")
	{
		grp.Post("/", authMiddleware.IsAdmin("kelola kelas"), classHandler.Create)
		grp.Get("/", classHandler.List)
	}

	// ================================
	// Student Class Enrollments
	// ================================
	enrollHandler := classctrl.NewEnrollmentController(db)

	enrollGrp := staff.Group("/enrollments")
	{
		enrollGrp.Post("/", authMiddleware.IsAdmin("kelola enrolment"), enrollHandler.Enroll)
		enrollGrp.Get("/class/:class_id", enrollHandler.ListByClass)
		enrollGrp.Patch("/:id/close", authMiddleware.IsAdmin("kelola enrolment"), enrollHandler.Close)
	}
}
