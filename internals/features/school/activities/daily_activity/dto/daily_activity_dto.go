// file: internals/features/school/activities/daily_activity/dto/daily_activity_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/school/activities/daily_activity/model"
)

/*
=========================================================
REQUEST: CREATE (guru mengisi jurnal harian siswa)
=========================================================
*/
type CreateDailyActivityRequest struct {
	StudentID   uuid.UUID  `json:"student_id"    validate:"required"`
	ClassRoomID *uuid.UUID `json:"class_room_id"`
	Date        time.Time  `json:"date"          validate:"required"`

	AttendanceStatus  string  `json:"attendance_status" validate:"required,oneof=present absent late excused"`
	TotalHoursSpent   float64 `json:"total_hours_spent" validate:"min=0,max=24"`
	Punctuality       bool    `json:"punctuality"`
	UniformCompliance bool    `json:"uniform_compliance"`

	SubjectsStudied    []model.SubjectStudiedEntry `json:"subjects_studied,omitempty"`
	HomeworkAssigned   []string                    `json:"homework_assigned,omitempty"`
	HomeworkCompleted  []model.WorkItemEntry       `json:"homework_completed,omitempty"`
	ClassworkCompleted []model.WorkItemEntry       `json:"classwork_completed,omitempty"`
	AssessmentsTaken   []model.AssessmentEntry     `json:"assessments_taken,omitempty"`

	BehaviorRating     *int `json:"behavior_rating,omitempty"     validate:"omitempty,min=1,max=5"`
	ParticipationLevel *int `json:"participation_level,omitempty" validate:"omitempty,min=1,max=5"`
	DisciplineScore    *int `json:"discipline_score,omitempty"    validate:"omitempty,min=1,max=5"`

	SkillsSnapshot map[string]int `json:"skills_snapshot,omitempty" validate:"omitempty,dive,min=1,max=5"`
}

func (r *CreateDailyActivityRequest) Normalize() {
	r.AttendanceStatus = strings.ToLower(strings.TrimSpace(r.AttendanceStatus))
	// tanggal disimpan sebagai date (tanpa jam)
	r.Date = time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *CreateDailyActivityRequest) Validate() error {
	if r.StudentID == uuid.Nil {
		return errors.New("student_id required")
	}
	if r.Date.IsZero() {
		return errors.New("date required")
	}
	for _, st := range r.SubjectsStudied {
		if st.UnderstandingLevel != nil && (*st.UnderstandingLevel < 1 || *st.UnderstandingLevel > 5) {
			return errors.New("understanding_level harus 1..5")
		}
	}
	for _, as := range r.AssessmentsTaken {
		if as.TotalMarks < 0 || as.MarksObtained < 0 {
			return errors.New("marks tidak boleh negatif")
		}
	}
	return nil
}

func (r *CreateDailyActivityRequest) ToModel(recordedBy *uuid.UUID) *model.DailyActivityRecordModel {
	return &model.DailyActivityRecordModel{
		DailyActivityRecordStudentID:   r.StudentID,
		DailyActivityRecordClassRoomID: r.ClassRoomID,
		DailyActivityRecordDate:        r.Date,

		DailyActivityRecordAttendanceStatus:  model.AttendanceStatus(r.AttendanceStatus),
		DailyActivityRecordTotalHoursSpent:   r.TotalHoursSpent,
		DailyActivityRecordPunctuality:       r.Punctuality,
		DailyActivityRecordUniformCompliance: r.UniformCompliance,

		DailyActivityRecordSubjectsStudied:    r.SubjectsStudied,
		DailyActivityRecordHomeworkAssigned:   r.HomeworkAssigned,
		DailyActivityRecordHomeworkCompleted:  r.HomeworkCompleted,
		DailyActivityRecordClassworkCompleted: r.ClassworkCompleted,
		DailyActivityRecordAssessmentsTaken:   r.AssessmentsTaken,

		DailyActivityRecordBehaviorRating:     r.BehaviorRating,
		DailyActivityRecordParticipationLevel: r.ParticipationLevel,
		DailyActivityRecordDisciplineScore:    r.DisciplineScore,

		DailyActivityRecordSkillsSnapshot: datatypes.NewJSONType(r.SkillsSnapshot),

		DailyActivityRecordRecordedByTeacherID: recordedBy,
	}
}
