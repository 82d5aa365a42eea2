// file: internals/features/school/activities/daily_activity/controller/daily_activity_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/activities/daily_activity/dto"
	model "sekolahku_backend/internals/features/school/activities/daily_activity/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Controller bootstrap
======================================================= */

type DailyActivityController struct {
	DB *gorm.DB
}

func NewDailyActivityController(db *gorm.DB) *DailyActivityController {
	return &DailyActivityController{DB: db}
}

var validate = validator.New()

/* =======================================================
   POST /daily-activities
   Satu baris per (siswa, tanggal) — duplikat ditolak 409.
======================================================= */

func (ctl *DailyActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateDailyActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var recordedBy *uuid.UUID
	if id, err := helper.GetUserIDFromToken(c); err == nil {
		recordedBy = &id
	}

	rec := req.ToModel(recordedBy)
	if err := ctl.DB.WithContext(c.UserContext()).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict,
				fmt.Sprintf("Jurnal harian siswa utk tanggal %s sudah ada", req.Date.Format("2006-01-02")))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan jurnal harian")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jurnal harian tersimpan", rec)
}

/* =======================================================
   GET /daily-activities/student/:student_id?from=&to=
======================================================= */

func (ctl *DailyActivityController) ListByStudent(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("student_id"))
	studentID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid student_id")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.DailyActivityRecordModel{}).
		Where("daily_activity_record_student_id = ?", studentID)

	if from := strings.TrimSpace(c.Query("from")); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "from harus format YYYY-MM-DD")
		}
		q = q.Where("daily_activity_record_date >= ?", t)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "to harus format YYYY-MM-DD")
		}
		q = q.Where("daily_activity_record_date <= ?", t)
	}

	// preset export: per_page=all boleh (tarik satu semester jurnal sekaligus)
	p := helper.ParseFiber(c, "date", "asc", helper.ExportOpts)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung jurnal harian")
	}

	var items []model.DailyActivityRecordModel
	if err := q.Order("daily_activity_record_date ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jurnal harian")
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helper.BuildMeta(total, p),
	})
}
