// file: internals/features/school/academics/classes/controller/enrollments_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/classes/dto"
	model "sekolahku_backend/internals/features/school/academics/classes/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Controller bootstrap
======================================================= */

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

/* =======================================================
   POST /enrollments
   Enrolment aktif lama siswa (kalau ada) ditutup dulu —
   satu siswa hanya boleh punya satu enrolment aktif.
======================================================= */

func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollStudentRequest
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

	m := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&model.StudentClassEnrollmentModel{}).
			Where("student_class_enrollment_student_id = ? AND student_class_enrollment_is_current = TRUE", req.StudentID).
			Updates(map[string]interface{}{
				"student_class_enrollment_is_current": false,
				"student_class_enrollment_left_at":    now,
			}).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan siswa ke kelas")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa terdaftar di kelas", m)
}

/* =======================================================
   GET /enrollments/class/:class_id
======================================================= */

func (ctl *EnrollmentController) ListByClass(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("class_id"))
	classID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid class_id")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Where("student_class_enrollment_class_room_id = ?", classID)
	if c.Query("current") != "false" {
		q = q.Where("student_class_enrollment_is_current = TRUE")
	}

	var items []model.StudentClassEnrollmentModel
	if err := q.Order("student_class_enrollment_student_name_cache ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil enrolment")
	}
	return helper.Success(c, "OK", items)
}

/* =======================================================
   PATCH /enrollments/:id/close
======================================================= */

func (ctl *EnrollmentController) Close(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	now := time.Now()
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentClassEnrollmentModel{}).
		Where("student_class_enrollment_id = ? AND student_class_enrollment_is_current = TRUE", id).
		Updates(map[string]interface{}{
			"student_class_enrollment_is_current": false,
			"student_class_enrollment_left_at":    now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menutup enrolment")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Enrolment aktif tidak ditemukan")
	}
	return helper.Success(c, "Enrolment ditutup", fiber.Map{"student_class_enrollment_id": id})
}
