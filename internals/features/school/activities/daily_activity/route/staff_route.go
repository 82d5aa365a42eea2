// file: internals/features/school/activities/daily_activity/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityctrl "sekolahku_backend/internals/features/school/activities/daily_activity/controller"
)

// DailyActivityRoutes — dipasang di group staff (/api/a).
func DailyActivityRoutes(staff fiber.Router, db *gorm.DB) {
	ctl := activityctrl.NewDailyActivityController(db)

	grp := staff.Group("/daily-activities")
	{
		grp.Post("/", ctl.Create)
		grp.Get("/student/:student_id", ctl.ListByStudent)
	}
}
