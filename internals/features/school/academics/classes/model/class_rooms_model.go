// file: internals/features/school/academics/classes/model/class_rooms_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: class_rooms
====================================================== */

type ClassRoomModel struct {
	ClassRoomID   uuid.UUID `gorm:"column:class_room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_room_id"`
	ClassRoomName string    `gorm:"column:class_room_name;type:varchar(120);not null" json:"class_room_name"`

	// contoh: "SD-4", "SMP-1"
	ClassRoomLevel *string `gorm:"column:class_room_level;type:varchar(50)" json:"class_room_level,omitempty"`

	// Wali kelas (opsional)
	ClassRoomHomeroomTeacherID *uuid.UUID `gorm:"column:class_room_homeroom_teacher_id;type:uuid" json:"class_room_homeroom_teacher_id,omitempty"`

	ClassRoomIsActive bool `gorm:"column:class_room_is_active;not null;default:true;index" json:"class_room_is_active"`

	// Audit & soft delete
	ClassRoomCreatedAt time.Time      `gorm:"column:class_room_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"class_room_created_at"`
	ClassRoomUpdatedAt time.Time      `gorm:"column:class_room_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"class_room_updated_at"`
	ClassRoomDeletedAt gorm.DeletedAt `gorm:"column:class_room_deleted_at;index" json:"class_room_deleted_at,omitempty"`
}

func (ClassRoomModel) TableName() string {
	return "class_rooms"
}
