// file: internals/features/school/academics/classes/model/student_class_enrollments_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: student_class_enrollments
====================================================== */

type StudentClassEnrollmentModel struct {
	StudentClassEnrollmentID uuid.UUID `gorm:"column:student_class_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_class_enrollment_id"`

	StudentClassEnrollmentStudentID   uuid.UUID `gorm:"column:student_class_enrollment_student_id;type:uuid;not null;index" json:"student_class_enrollment_student_id"`
	StudentClassEnrollmentClassRoomID uuid.UUID `gorm:"column:student_class_enrollment_class_room_id;type:uuid;not null;index" json:"student_class_enrollment_class_room_id"`

	// ===== Cache dari profil siswa (hindari join saat listing) =====
	StudentClassEnrollmentStudentNameCache string `gorm:"column:student_class_enrollment_student_name_cache;type:varchar(80)" json:"student_class_enrollment_student_name_cache"`

	// true = enrolment aktif sekarang; siswa pindah kelas → baris lama di-set false
	StudentClassEnrollmentIsCurrent bool `gorm:"column:student_class_enrollment_is_current;not null;default:true;index" json:"student_class_enrollment_is_current"`

	StudentClassEnrollmentEnrolledAt time.Time  `gorm:"column:student_class_enrollment_enrolled_at;type:timestamptz;not null;default:now()" json:"student_class_enrollment_enrolled_at"`
	StudentClassEnrollmentLeftAt     *time.Time `gorm:"column:student_class_enrollment_left_at;type:timestamptz" json:"student_class_enrollment_left_at,omitempty"`

	// Audit & soft delete
	StudentClassEnrollmentCreatedAt time.Time      `gorm:"column:student_class_enrollment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_class_enrollment_created_at"`
	StudentClassEnrollmentUpdatedAt time.Time      `gorm:"column:student_class_enrollment_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_class_enrollment_updated_at"`
	StudentClassEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:student_class_enrollment_deleted_at;index" json:"student_class_enrollment_deleted_at,omitempty"`
}

func (StudentClassEnrollmentModel) TableName() string {
	return "student_class_enrollments"
}
