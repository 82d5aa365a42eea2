// file: internals/features/school/progress/weekly_reports/service/store.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	activityModel "sekolahku_backend/internals/features/school/activities/daily_activity/model"
	reportModel "sekolahku_backend/internals/features/school/progress/weekly_reports/model"
)

// Clock injectable supaya perhitungan "minggu lalu" deterministik saat test.
type Clock func() time.Time

// AtRiskFilter penyempitan opsional query at-risk.
type AtRiskFilter struct {
	ClassRoomID *uuid.UUID
	WeekNumber  *int
	Year        *int
}

// ReportStore kontrak akses data engine laporan mingguan.
// Implementasi produksi: repository.GormStore (Postgres via GORM).
// Lookup yang "tidak ketemu" mengembalikan (nil, nil), bukan error.
type ReportStore interface {
	// ===== Laporan =====
	FindReportByKey(ctx context.Context, studentID uuid.UUID, weekNumber, year int) (*reportModel.WeeklyProgressReportModel, error)
	FindReportByID(ctx context.Context, id uuid.UUID) (*reportModel.WeeklyProgressReportModel, error)
	// InsertReport wajib menerjemahkan pelanggaran unique index
	// (student, week, year) menjadi gorm.ErrDuplicatedKey.
	InsertReport(ctx context.Context, report *reportModel.WeeklyProgressReportModel) error
	UpdateReport(ctx context.Context, report *reportModel.WeeklyProgressReportModel) error
	// orderExpr ekspresi "kolom ARAH" hasil whitelist (SafeOrderClause);
	// kosong → tahun & minggu terbaru dulu.
	ListReportsByStudent(ctx context.Context, studentID uuid.UUID, year *int, orderExpr string, limit, offset int) ([]reportModel.WeeklyProgressReportModel, int64, error)
	// Diurutkan attendance_percentage DESC.
	ListReportsByClass(ctx context.Context, classRoomID uuid.UUID, weekNumber, year int) ([]reportModel.WeeklyProgressReportModel, error)
	// OR semantics: satu sinyal saja sudah cukup. Diurutkan attendance ASC (terparah dulu).
	ListAtRiskReports(ctx context.Context, filter AtRiskFilter, limit, offset int) ([]reportModel.WeeklyProgressReportModel, int64, error)

	// ===== Enrolment & kelas =====
	CurrentEnrollmentOfStudent(ctx context.Context, studentID uuid.UUID) (*classModel.StudentClassEnrollmentModel, error)
	CurrentEnrollmentsOfClass(ctx context.Context, classRoomID uuid.UUID) ([]classModel.StudentClassEnrollmentModel, error)
	ClassRoomIDsWithCurrentEnrollments(ctx context.Context) ([]uuid.UUID, error)

	// ===== Aktivitas harian =====
	ActivitiesInRange(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]activityModel.DailyActivityRecordModel, error)
}
