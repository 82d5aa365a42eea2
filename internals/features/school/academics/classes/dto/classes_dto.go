// file: internals/features/school/academics/classes/dto/classes_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/academics/classes/model"
)

/*
=========================================================
REQUEST: CREATE CLASS
=========================================================
*/
type CreateClassRoomRequest struct {
	ClassRoomName              string     `json:"class_room_name"                validate:"required,min=1,max=120"`
	ClassRoomLevel             *string    `json:"class_room_level,omitempty"     validate:"omitempty,max=50"`
	ClassRoomHomeroomTeacherID *uuid.UUID `json:"class_room_homeroom_teacher_id,omitempty"`
}

func (r *CreateClassRoomRequest) Normalize() {
	r.ClassRoomName = strings.TrimSpace(r.ClassRoomName)
	if r.ClassRoomLevel != nil {
		s := strings.TrimSpace(*r.ClassRoomLevel)
		if s == "" {
			r.ClassRoomLevel = nil
		} else {
			r.ClassRoomLevel = &s
		}
	}
}

func (r *CreateClassRoomRequest) ToModel() *model.ClassRoomModel {
	return &model.ClassRoomModel{
		ClassRoomName:              r.ClassRoomName,
		ClassRoomLevel:             r.ClassRoomLevel,
		ClassRoomHomeroomTeacherID: r.ClassRoomHomeroomTeacherID,
		ClassRoomIsActive:          true,
	}
}

/*
=========================================================
REQUEST: ENROLL STUDENT
=========================================================
*/
type EnrollStudentRequest struct {
	StudentID   uuid.UUID `json:"student_id"    validate:"required"`
	ClassRoomID uuid.UUID `json:"class_room_id" validate:"required"`
	StudentName string    `json:"student_name"  validate:"omitempty,max=80"`
}

func (r *EnrollStudentRequest) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
}

func (r *EnrollStudentRequest) Validate() error {
	if r.StudentID == uuid.Nil {
		return errors.New("student_id required")
	}
	if r.ClassRoomID == uuid.Nil {
		return errors.New("class_room_id required")
	}
	return nil
}

func (r *EnrollStudentRequest) ToModel() *model.StudentClassEnrollmentModel {
	return &model.StudentClassEnrollmentModel{
		StudentClassEnrollmentStudentID:        r.StudentID,
		StudentClassEnrollmentClassRoomID:      r.ClassRoomID,
		StudentClassEnrollmentStudentNameCache: r.StudentName,
		StudentClassEnrollmentIsCurrent:        true,
		StudentClassEnrollmentEnrolledAt:       time.Now(),
	}
}
