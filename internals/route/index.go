// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "sekolahku_backend/internals/features/school/academics/classes/route"
	activityRoute "sekolahku_backend/internals/features/school/activities/daily_activity/route"
	progressRoute "sekolahku_backend/internals/features/school/progress/weekly_reports/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== STAFF (teacher/admin/owner) =====================
	log.Println("[INFO] Setting up STAFF group (Auth + RoleCheck)...")
	staff := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.IsStaff("operasional sekolah"),
	)

	log.Println("[INFO] Setting up ClassRoomRoutes...")
	classRoute.ClassRoomRoutes(staff, db)

	log.Println("[INFO] Setting up DailyActivityRoutes...")
	activityRoute.DailyActivityRoutes(staff, db)

	log.Println("[INFO] Setting up WeeklyReportRoutes...")
	progressRoute.WeeklyReportRoutes(staff, db)
}
