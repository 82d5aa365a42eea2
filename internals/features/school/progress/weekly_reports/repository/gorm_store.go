// file: internals/features/school/progress/weekly_reports/repository/gorm_store.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	activityModel "sekolahku_backend/internals/features/school/activities/daily_activity/model"
	reportModel "sekolahku_backend/internals/features/school/progress/weekly_reports/model"
	"sekolahku_backend/internals/features/school/progress/weekly_reports/service"
)

/* =========================
   GormStore — implementasi service.ReportStore di atas Postgres
========================= */

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// compile-time check
var _ service.ReportStore = (*GormStore)(nil)

/* =========================
   Laporan
========================= */

func (s *GormStore) FindReportByKey(ctx context.Context, studentID uuid.UUID, weekNumber, year int) (*reportModel.WeeklyProgressReportModel, error) {
	var m reportModel.WeeklyProgressReportModel
	err := s.DB.WithContext(ctx).
		Where("weekly_progress_report_student_id = ? AND weekly_progress_report_week_number = ? AND weekly_progress_report_year = ?",
			studentID, weekNumber, year).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) FindReportByID(ctx context.Context, id uuid.UUID) (*reportModel.WeeklyProgressReportModel, error) {
	var m reportModel.WeeklyProgressReportModel
	err := s.DB.WithContext(ctx).
		Where("weekly_progress_report_id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// InsertReport: unique index (student, week, year) yang menjaga at-most-once.
// Dengan gorm.Config{TranslateError:true}, pelanggaran unik keluar sebagai
// gorm.ErrDuplicatedKey — kontrak yang diharapkan service.
func (s *GormStore) InsertReport(ctx context.Context, report *reportModel.WeeklyProgressReportModel) error {
	return s.DB.WithContext(ctx).Create(report).Error
}

func (s *GormStore) UpdateReport(ctx context.Context, report *reportModel.WeeklyProgressReportModel) error {
	return s.DB.WithContext(ctx).Save(report).Error
}

func (s *GormStore) ListReportsByStudent(ctx context.Context, studentID uuid.UUID, year *int, orderExpr string, limit, offset int) ([]reportModel.WeeklyProgressReportModel, int64, error) {
	q := s.DB.WithContext(ctx).
		Model(&reportModel.WeeklyProgressReportModel{}).
		Where("weekly_progress_report_student_id = ?", studentID)
	if year != nil {
		q = q.Where("weekly_progress_report_year = ?", *year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if orderExpr == "" {
		orderExpr = "weekly_progress_report_year DESC, weekly_progress_report_week_number DESC"
	}

	var items []reportModel.WeeklyProgressReportModel
	err := q.
		Order(orderExpr).
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *GormStore) ListReportsByClass(ctx context.Context, classRoomID uuid.UUID, weekNumber, year int) ([]reportModel.WeeklyProgressReportModel, error) {
	var items []reportModel.WeeklyProgressReportModel
	err := s.DB.WithContext(ctx).
		Where("weekly_progress_report_class_room_id = ? AND weekly_progress_report_week_number = ? AND weekly_progress_report_year = ?",
			classRoomID, weekNumber, year).
		Order("weekly_progress_report_attendance_percentage DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) ListAtRiskReports(ctx context.Context, filter service.AtRiskFilter, limit, offset int) ([]reportModel.WeeklyProgressReportModel, int64, error) {
	q := s.DB.WithContext(ctx).
		Model(&reportModel.WeeklyProgressReportModel{}).
		Where(`weekly_progress_report_attendance_percentage < 70
			OR weekly_progress_report_homework_completion_rate < 50
			OR weekly_progress_report_average_behavior_score < 2.5
			OR weekly_progress_report_follow_up_required = TRUE`)

	if filter.ClassRoomID != nil {
		q = q.Where("weekly_progress_report_class_room_id = ?", *filter.ClassRoomID)
	}
	if filter.WeekNumber != nil {
		q = q.Where("weekly_progress_report_week_number = ?", *filter.WeekNumber)
	}
	if filter.Year != nil {
		q = q.Where("weekly_progress_report_year = ?", *filter.Year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []reportModel.WeeklyProgressReportModel
	err := q.
		Order("weekly_progress_report_attendance_percentage ASC"). // terparah dulu
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

/* =========================
   Enrolment & kelas
========================= */

func (s *GormStore) CurrentEnrollmentOfStudent(ctx context.Context, studentID uuid.UUID) (*classModel.StudentClassEnrollmentModel, error) {
	var m classModel.StudentClassEnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("student_class_enrollment_student_id = ? AND student_class_enrollment_is_current = TRUE", studentID).
		Order("student_class_enrollment_enrolled_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) CurrentEnrollmentsOfClass(ctx context.Context, classRoomID uuid.UUID) ([]classModel.StudentClassEnrollmentModel, error) {
	var items []classModel.StudentClassEnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("student_class_enrollment_class_room_id = ? AND student_class_enrollment_is_current = TRUE", classRoomID).
		Order("student_class_enrollment_student_name_cache ASC, student_class_enrollment_enrolled_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) ClassRoomIDsWithCurrentEnrollments(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&classModel.StudentClassEnrollmentModel{}).
		Distinct("student_class_enrollment_class_room_id").
		Where("student_class_enrollment_is_current = TRUE").
		Pluck("student_class_enrollment_class_room_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

/* =========================
   Aktivitas harian
========================= */

func (s *GormStore) ActivitiesInRange(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]activityModel.DailyActivityRecordModel, error) {
	var items []activityModel.DailyActivityRecordModel
	err := s.DB.WithContext(ctx).
		Where("daily_activity_record_student_id = ? AND daily_activity_record_date BETWEEN ? AND ?",
			studentID, start, end).
		Order("daily_activity_record_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
