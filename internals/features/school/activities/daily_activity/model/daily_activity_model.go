// file: internals/features/school/activities/daily_activity/model/daily_activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM: attendance_status
====================================================== */

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

/* ======================================================
   ENUM: completion_status (homework/classwork)
====================================================== */

type CompletionStatus string

const (
	WorkComplete   CompletionStatus = "complete"
	WorkPartial    CompletionStatus = "partial"
	WorkIncomplete CompletionStatus = "incomplete"
)

/* ======================================================
   Payload harian (jsonb, typed)
   Field opsional dibuat pointer: absen = tidak ikut agregasi.
====================================================== */

type SubjectStudiedEntry struct {
	SubjectID          *uuid.UUID `json:"subject_id,omitempty"`
	SubjectName        *string    `json:"subject_name,omitempty"`
	TopicsCovered      []string   `json:"topics_covered,omitempty"`
	UnderstandingLevel *int       `json:"understanding_level,omitempty"` // 1..5
}

type WorkItemEntry struct {
	Title            *string          `json:"title,omitempty"`
	CompletionStatus CompletionStatus `json:"completion_status"`
	Quality          *int             `json:"quality,omitempty"` // 1..5
}

type AssessmentEntry struct {
	SubjectID      *uuid.UUID `json:"subject_id,omitempty"`
	SubjectName    *string    `json:"subject_name,omitempty"`
	AssessmentType string     `json:"assessment_type"` // quiz | test | exam | practical
	MarksObtained  float64    `json:"marks_obtained"`
	TotalMarks     float64    `json:"total_marks"`
}

/* ======================================================
   Model: daily_activity_records
   Satu baris per (siswa, tanggal). Diisi guru tiap hari,
   jadi sumber data Weekly Progress Report.
====================================================== */

type DailyActivityRecordModel struct {
	DailyActivityRecordID uuid.UUID `gorm:"column:daily_activity_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"daily_activity_record_id"`

	DailyActivityRecordStudentID   uuid.UUID  `gorm:"column:daily_activity_record_student_id;type:uuid;not null;index;uniqueIndex:uq_daily_activity_student_date" json:"daily_activity_record_student_id"`
	DailyActivityRecordClassRoomID *uuid.UUID `gorm:"column:daily_activity_record_class_room_id;type:uuid;index" json:"daily_activity_record_class_room_id,omitempty"`
	DailyActivityRecordDate        time.Time  `gorm:"column:daily_activity_record_date;type:date;not null;uniqueIndex:uq_daily_activity_student_date" json:"daily_activity_record_date"`

	// Kehadiran & kedisiplinan hari itu
	DailyActivityRecordAttendanceStatus  AttendanceStatus `gorm:"column:daily_activity_record_attendance_status;type:varchar(10);not null;default:'present'" json:"daily_activity_record_attendance_status"`
	DailyActivityRecordTotalHoursSpent   float64          `gorm:"column:daily_activity_record_total_hours_spent;type:numeric(4,1);not null;default:0" json:"daily_activity_record_total_hours_spent"`
	DailyActivityRecordPunctuality       bool             `gorm:"column:daily_activity_record_punctuality;not null;default:false" json:"daily_activity_record_punctuality"`
	DailyActivityRecordUniformCompliance bool             `gorm:"column:daily_activity_record_uniform_compliance;not null;default:false" json:"daily_activity_record_uniform_compliance"`

	// Payload nested (jsonb)
	DailyActivityRecordSubjectsStudied    datatypes.JSONSlice[SubjectStudiedEntry] `gorm:"column:daily_activity_record_subjects_studied;type:jsonb" json:"daily_activity_record_subjects_studied,omitempty"`
	DailyActivityRecordHomeworkAssigned   datatypes.JSONSlice[string]              `gorm:"column:daily_activity_record_homework_assigned;type:jsonb" json:"daily_activity_record_homework_assigned,omitempty"`
	DailyActivityRecordHomeworkCompleted  datatypes.JSONSlice[WorkItemEntry]       `gorm:"column:daily_activity_record_homework_completed;type:jsonb" json:"daily_activity_record_homework_completed,omitempty"`
	DailyActivityRecordClassworkCompleted datatypes.JSONSlice[WorkItemEntry]       `gorm:"column:daily_activity_record_classwork_completed;type:jsonb" json:"daily_activity_record_classwork_completed,omitempty"`
	DailyActivityRecordAssessmentsTaken   datatypes.JSONSlice[AssessmentEntry]     `gorm:"column:daily_activity_record_assessments_taken;type:jsonb" json:"daily_activity_record_assessments_taken,omitempty"`

	// Penilaian perilaku 1..5 (opsional, nil = guru tidak mengisi)
	DailyActivityRecordBehaviorRating     *int `gorm:"column:daily_activity_record_behavior_rating" json:"daily_activity_record_behavior_rating,omitempty"`
	DailyActivityRecordParticipationLevel *int `gorm:"column:daily_activity_record_participation_level" json:"daily_activity_record_participation_level,omitempty"`
	DailyActivityRecordDisciplineScore    *int `gorm:"column:daily_activity_record_discipline_score" json:"daily_activity_record_discipline_score,omitempty"`

	// Snapshot skill bernama → nilai 1..5 (jsonb object)
	DailyActivityRecordSkillsSnapshot datatypes.JSONType[map[string]int] `gorm:"column:daily_activity_record_skills_snapshot;type:jsonb" json:"daily_activity_record_skills_snapshot,omitempty"`

	// Provenance
	DailyActivityRecordRecordedByTeacherID *uuid.UUID `gorm:"column:daily_activity_record_recorded_by_teacher_id;type:uuid" json:"daily_activity_record_recorded_by_teacher_id,omitempty"`

	// Audit & soft delete
	DailyActivityRecordCreatedAt time.Time      `gorm:"column:daily_activity_record_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"daily_activity_record_created_at"`
	DailyActivityRecordUpdatedAt time.Time      `gorm:"column:daily_activity_record_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"daily_activity_record_updated_at"`
	DailyActivityRecordDeletedAt gorm.DeletedAt `gorm:"column:daily_activity_record_deleted_at;index" json:"daily_activity_record_deleted_at,omitempty"`
}

func (DailyActivityRecordModel) TableName() string {
	return "daily_activity_records"
}
