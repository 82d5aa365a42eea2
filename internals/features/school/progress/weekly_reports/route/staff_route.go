// file: internals/features/school/progress/weekly_reports/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressctrl "sekolahku_backend/internals/features/school/progress/weekly_reports/controller"
	middlewares "sekolahku_backend/internals/middlewares"
)

// WeeklyReportRoutes — dipasang di group staff (/api/a).
func WeeklyReportRoutes(staff fiber.Router, db *gorm.DB) {
	ctl := progressctrl.NewWeeklyReportController(db)

	grp := staff.Group("/progress-reports")
	{
		// generate query-nya berat → limiter khusus
		grp.Post("/generate", middlewares.GenerateRateLimiter(), ctl.Generate)
		grp.Post("/bulk-generate", middlewares.GenerateRateLimiter(), ctl.BulkGenerate)

		grp.Get("/student/:student_id", ctl.GetByStudent)
		grp.Get("/class/:class_id", ctl.GetByClass)
		grp.Get("/at-risk", ctl.GetAtRisk)

		grp.Patch("/:id/comments", ctl.UpdateComments)
	}
}
