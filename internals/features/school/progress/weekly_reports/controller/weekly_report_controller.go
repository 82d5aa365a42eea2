// file: internals/features/school/progress/weekly_reports/controller/weekly_report_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/progress/weekly_reports/dto"
	"sekolahku_backend/internals/features/school/progress/weekly_reports/repository"
	"sekolahku_backend/internals/features/school/progress/weekly_reports/service"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Controller bootstrap
======================================================= */

type WeeklyReportController struct {
	DB      *gorm.DB
	Service *service.WeeklyReportService
}

func NewWeeklyReportController(db *gorm.DB) *WeeklyReportController {
	return &WeeklyReportController{
		DB:      db,
		Service: service.NewWeeklyReportService(repository.NewGormStore(db), time.Now),
	}
}

var validate = validator.New()

// whitelist sort_by → kolom (dipakai SafeOrderClause)
var reportSortColumns = map[string]string{
	"week_number": "weekly_progress_report_week_number",
	"year":        "weekly_progress_report_year",
	"attendance":  "weekly_progress_report_attendance_percentage",
	"created_at":  "weekly_progress_report_created_at",
}

/* =======================================================
   Helpers (local)
======================================================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func queryInt(c *fiber.Ctx, name string) *int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func queryUUID(c *fiber.Ctx, name string) *uuid.UUID {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

/* =======================================================
   POST /progress-reports/generate
======================================================= */

func (ctl *WeeklyReportController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateWeeklyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacherID := helper.GetTeacherIDFromToken(c)

	report, err := ctl.Service.Generate(c.UserContext(), req.StudentID, req.WeekNumber, req.Year, teacherID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Laporan mingguan siap", report)
}

/* =======================================================
   POST /progress-reports/bulk-generate
======================================================= */

func (ctl *WeeklyReportController) BulkGenerate(c *fiber.Ctx) error {
	var req dto.BulkGenerateWeeklyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacherID := helper.GetTeacherIDFromToken(c)

	results, err := ctl.Service.BulkGenerate(c.UserContext(), req.ClassRoomID, req.WeekNumber, req.Year, teacherID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	return helper.Success(c, "Bulk generate selesai", fiber.Map{
		"results":   results,
		"total":     len(results),
		"succeeded": succeeded,
		"failed":    len(results) - succeeded,
	})
}

/* =======================================================
   GET /progress-reports/student/:student_id
======================================================= */

func (ctl *WeeklyReportController) GetByStudent(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	p := helper.ParseFiber(c, "week_number", "desc", helper.DefaultOpts)
	year := queryInt(c, "year")

	orderExpr, err := p.SafeOrderClause(reportSortColumns, "week_number")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by tidak dikenal")
	}

	items, total, err := ctl.Service.GetByStudent(c.UserContext(), studentID, year, orderExpr, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helper.BuildMeta(total, p),
	})
}

/* =======================================================
   GET /progress-reports/class/:class_id
======================================================= */

func (ctl *WeeklyReportController) GetByClass(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	week := queryInt(c, "week_number")
	year := queryInt(c, "year")
	if week == nil || year == nil {
		return helper.Error(c, fiber.StatusBadRequest, "week_number dan year wajib diisi")
	}

	items, err := ctl.Service.GetByClass(c.UserContext(), classID, *week, *year)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", items)
}

/* =======================================================
   PATCH /progress-reports/:id/comments
======================================================= */

func (ctl *WeeklyReportController) UpdateComments(c *fiber.Ctx) error {
	reportID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateCommentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()

	report, err := ctl.Service.UpdateComments(c.UserContext(), reportID, req.ToPatch())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Catatan laporan diperbarui", report)
}

/* =======================================================
   GET /progress-reports/at-risk
======================================================= */

func (ctl *WeeklyReportController) GetAtRisk(c *fiber.Ctx) error {
	filter := service.AtRiskFilter{
		ClassRoomID: queryUUID(c, "class_room_id"),
		WeekNumber:  queryInt(c, "week_number"),
		Year:        queryInt(c, "year"),
	}

	// daftar triase per sekolah bisa panjang → preset halaman admin
	p := helper.ParseFiber(c, "attendance", "asc", helper.AdminOpts)

	items, total, err := ctl.Service.GetAtRisk(c.UserContext(), filter, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helper.BuildMeta(total, p),
	})
}
