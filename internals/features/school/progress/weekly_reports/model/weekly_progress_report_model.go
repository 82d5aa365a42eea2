// file: internals/features/school/progress/weekly_reports/model/weekly_progress_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ======================================================
   Embedded (jsonb): ringkasan per mapel
====================================================== */

// Trend masih placeholder — belum ada pembanding antar minggu.
// Disiapkan sebagai extension point untuk Trend Analyzer.
const TrendStable = "stable"

type SubjectAssessmentItem struct {
	AssessmentType string  `json:"assessment_type"`
	Score          float64 `json:"score"`
	OutOf          float64 `json:"out_of"`
}

type SubjectProgressSummary struct {
	SubjectID        *uuid.UUID              `json:"subject_id,omitempty"` // nil = entri tanpa mapel teridentifikasi
	SubjectName      string                  `json:"subject_name"`
	TopicsCompleted  int                     `json:"topics_completed"`
	AvgUnderstanding float64                 `json:"avg_understanding"` // 1 desimal, 0 = tidak ada sampel
	Assessments      []SubjectAssessmentItem `json:"assessments,omitempty"`
	Trend            string                  `json:"trend"`
}

type AssessmentSummary struct {
	SubjectID     *uuid.UUID `json:"subject_id,omitempty"`
	SubjectName   string     `json:"subject_name"`
	Count         int        `json:"count"`
	AvgScore      float64    `json:"avg_score"`
	AvgPercentage float64    `json:"avg_percentage"`
}

/* ======================================================
   Model: weekly_progress_reports
   Identitas unik: (student_id, week_number, year).
====================================================== */

type WeeklyProgressReportModel struct {
	WeeklyProgressReportID uuid.UUID `gorm:"column:weekly_progress_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"weekly_progress_report_id"`

	WeeklyProgressReportStudentID   uuid.UUID  `gorm:"column:weekly_progress_report_student_id;type:uuid;not null;index;uniqueIndex:uq_weekly_report_student_week_year" json:"weekly_progress_report_student_id"`
	WeeklyProgressReportClassRoomID *uuid.UUID `gorm:"column:weekly_progress_report_class_room_id;type:uuid;index" json:"weekly_progress_report_class_room_id,omitempty"`

	WeeklyProgressReportWeekNumber int `gorm:"column:weekly_progress_report_week_number;not null;uniqueIndex:uq_weekly_report_student_week_year" json:"weekly_progress_report_week_number"`
	WeeklyProgressReportYear       int `gorm:"column:weekly_progress_report_year;not null;uniqueIndex:uq_weekly_report_student_week_year" json:"weekly_progress_report_year"`

	WeeklyProgressReportWeekStartDate time.Time `gorm:"column:weekly_progress_report_week_start_date;type:timestamptz;not null" json:"weekly_progress_report_week_start_date"`
	WeeklyProgressReportWeekEndDate   time.Time `gorm:"column:weekly_progress_report_week_end_date;type:timestamptz;not null" json:"weekly_progress_report_week_end_date"`

	// ===== Kehadiran =====
	WeeklyProgressReportTotalWorkingDays     int     `gorm:"column:weekly_progress_report_total_working_days;not null;default:0" json:"weekly_progress_report_total_working_days"`
	WeeklyProgressReportDaysPresent          int     `gorm:"column:weekly_progress_report_days_present;not null;default:0" json:"weekly_progress_report_days_present"`
	WeeklyProgressReportDaysAbsent           int     `gorm:"column:weekly_progress_report_days_absent;not null;default:0" json:"weekly_progress_report_days_absent"`
	WeeklyProgressReportDaysLate             int     `gorm:"column:weekly_progress_report_days_late;not null;default:0" json:"weekly_progress_report_days_late"`
	WeeklyProgressReportDaysExcused          int     `gorm:"column:weekly_progress_report_days_excused;not null;default:0" json:"weekly_progress_report_days_excused"`
	WeeklyProgressReportAttendancePercentage float64 `gorm:"column:weekly_progress_report_attendance_percentage;type:numeric(5,1);not null;default:0;index" json:"weekly_progress_report_attendance_percentage"`
	WeeklyProgressReportPunctualityPercentage float64 `gorm:"column:weekly_progress_report_punctuality_percentage;type:numeric(5,1);not null;default:0" json:"weekly_progress_report_punctuality_percentage"`
	WeeklyProgressReportTotalHoursSpent       float64 `gorm:"column:weekly_progress_report_total_hours_spent;type:numeric(6,1);not null;default:0" json:"weekly_progress_report_total_hours_spent"`
	WeeklyProgressReportUniformComplianceRate float64 `gorm:"column:weekly_progress_report_uniform_compliance_rate;type:numeric(5,1);not null;default:0" json:"weekly_progress_report_uniform_compliance_rate"`

	// ===== Studi per mapel (jsonb) =====
	WeeklyProgressReportSubjectWiseProgress datatypes.JSONSlice[SubjectProgressSummary] `gorm:"column:weekly_progress_report_subject_wise_progress;type:jsonb" json:"weekly_progress_report_subject_wise_progress,omitempty"`

	// ===== PR & tugas kelas =====
	WeeklyProgressReportHomeworkAssigned        int     `gorm:"column:weekly_progress_report_homework_assigned;not null;default:0" json:"weekly_progress_report_homework_assigned"`
	WeeklyProgressReportHomeworkCompleted       int     `gorm:"column:weekly_progress_report_homework_completed;not null;default:0" json:"weekly_progress_report_homework_completed"`
	WeeklyProgressReportHomeworkCompletionRate  float64 `gorm:"column:weekly_progress_report_homework_completion_rate;type:numeric(5,1);not null;default:0" json:"weekly_progress_report_homework_completion_rate"`
	WeeklyProgressReportHomeworkAvgQuality      float64 `gorm:"column:weekly_progress_report_homework_avg_quality;type:numeric(3,1);not null;default:0" json:"weekly_progress_report_homework_avg_quality"`
	WeeklyProgressReportClassworkTotal          int     `gorm:"column:weekly_progress_report_classwork_total;not null;default:0" json:"weekly_progress_report_classwork_total"`
	WeeklyProgressReportClassworkCompleted      int     `gorm:"column:weekly_progress_report_classwork_completed;not null;default:0" json:"weekly_progress_report_classwork_completed"`
	WeeklyProgressReportClassworkCompletionRate float64 `gorm:"column:weekly_progress_report_classwork_completion_rate;type:numeric(5,1);not null;default:0" json:"weekly_progress_report_classwork_completion_rate"`
	WeeklyProgressReportClassworkAvgQuality     float64 `gorm:"column:weekly_progress_report_classwork_avg_quality;type:numeric(3,1);not null;default:0" json:"weekly_progress_report_classwork_avg_quality"`

	// ===== Asesmen =====
	WeeklyProgressReportTotalAssessments    int                                    `gorm:"column:weekly_progress_report_total_assessments;not null;default:0" json:"weekly_progress_report_total_assessments"`
	WeeklyProgressReportAssessmentSummaries datatypes.JSONSlice[AssessmentSummary] `gorm:"column:weekly_progress_report_assessment_summaries;type:jsonb" json:"weekly_progress_report_assessment_summaries,omitempty"`
	WeeklyProgressReportOverallAverageScore float64                                `gorm:"column:weekly_progress_report_overall_average_score;type:numeric(5,1);not null;default:0" json:"weekly_progress_report_overall_average_score"`

	// ===== Perilaku & skill =====
	WeeklyProgressReportAverageBehaviorScore float64                                `gorm:"column:weekly_progress_report_average_behavior_score;type:numeric(3,1);not null;default:0" json:"weekly_progress_report_average_behavior_score"`
	WeeklyProgressReportAverageParticipation float64                                `gorm:"column:weekly_progress_report_average_participation;type:numeric(3,1);not null;default:0" json:"weekly_progress_report_average_participation"`
	WeeklyProgressReportAverageDiscipline    float64                                `gorm:"column:weekly_progress_report_average_discipline;type:numeric(3,1);not null;default:0" json:"weekly_progress_report_average_discipline"`
	WeeklyProgressReportSkillAverages        datatypes.JSONType[map[string]float64] `gorm:"column:weekly_progress_report_skill_averages;type:jsonb" json:"weekly_progress_report_skill_averages,omitempty"`

	// ===== Klasifikasi =====
	WeeklyProgressReportStrengthSubjects pq.StringArray `gorm:"column:weekly_progress_report_strength_subjects;type:text[]" json:"weekly_progress_report_strength_subjects,omitempty"`
	WeeklyProgressReportWeakSubjects     pq.StringArray `gorm:"column:weekly_progress_report_weak_subjects;type:text[]" json:"weekly_progress_report_weak_subjects,omitempty"`
	WeeklyProgressReportFollowUpRequired bool           `gorm:"column:weekly_progress_report_follow_up_required;not null;default:false;index" json:"weekly_progress_report_follow_up_required"`

	// ===== Catatan guru (satu-satunya bagian yang boleh diubah setelah generate) =====
	WeeklyProgressReportTeacherComments    *string        `gorm:"column:weekly_progress_report_teacher_comments;type:text" json:"weekly_progress_report_teacher_comments,omitempty"`
	WeeklyProgressReportWeeklyHighlights   pq.StringArray `gorm:"column:weekly_progress_report_weekly_highlights;type:text[]" json:"weekly_progress_report_weekly_highlights,omitempty"`
	WeeklyProgressReportAreasOfImprovement pq.StringArray `gorm:"column:weekly_progress_report_areas_of_improvement;type:text[]" json:"weekly_progress_report_areas_of_improvement,omitempty"`
	WeeklyProgressReportActionItems        pq.StringArray `gorm:"column:weekly_progress_report_action_items;type:text[]" json:"weekly_progress_report_action_items,omitempty"`

	// Provenance
	WeeklyProgressReportGeneratedByTeacherID *uuid.UUID `gorm:"column:weekly_progress_report_generated_by_teacher_id;type:uuid" json:"weekly_progress_report_generated_by_teacher_id,omitempty"`

	// Audit & soft delete
	WeeklyProgressReportCreatedAt time.Time      `gorm:"column:weekly_progress_report_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"weekly_progress_report_created_at"`
	WeeklyProgressReportUpdatedAt time.Time      `gorm:"column:weekly_progress_report_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"weekly_progress_report_updated_at"`
	WeeklyProgressReportDeletedAt gorm.DeletedAt `gorm:"column:weekly_progress_report_deleted_at;index" json:"weekly_progress_report_deleted_at,omitempty"`
}

func (WeeklyProgressReportModel) TableName() string {
	return "weekly_progress_reports"
}
