// file: internals/features/school/academics/classes/controller/class_rooms_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/classes/dto"
	model "sekolahku_backend/internals/features/school/academics/classes/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Controller bootstrap
======================================================= */

type ClassRoomController struct {
	DB *gorm.DB
}

func NewClassRoomController(db *gorm.DB) *ClassRoomController {
	return &ClassRoomController{DB: db}
}

var validate = validator.New()

// whitelist sort_by → kolom (dipakai SafeOrderClause)
var classSortColumns = map[string]string{
	"name":       "class_room_name",
	"created_at": "class_room_created_at",
}

/* =======================================================
   POST /classes
======================================================= */

func (ctl *ClassRoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas dibuat", m)
}

/* =======================================================
   GET /classes
======================================================= */

func (ctl *ClassRoomController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassRoomModel{})
	if c.Query("active") == "true" {
		q = q.Where("class_room_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}

	orderExpr, err := p.SafeOrderClause(classSortColumns, "name")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by tidak dikenal")
	}

	var items []model.ClassRoomModel
	if err := q.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helper.BuildMeta(total, p),
	})
}
