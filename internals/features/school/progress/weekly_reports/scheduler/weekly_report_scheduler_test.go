// file: internals/features/school/progress/weekly_reports/scheduler/weekly_report_scheduler_test.go
package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	activityModel "sekolahku_backend/internals/features/school/activities/daily_activity/model"
	reportModel "sekolahku_backend/internals/features/school/progress/weekly_reports/model"
	"sekolahku_backend/internals/features/school/progress/weekly_reports/service"
)

// stubStore hanya mengimplementasikan jalur yang dilewati RunWeeklyGeneration.
type stubStore struct {
	classIDs     []uuid.UUID
	classListErr error     // ClassRoomIDsWithCurrentEnrollments selalu error
	brokenClass  uuid.UUID // CurrentEnrollmentsOfClass utk kelas ini selalu error
	byClass      map[uuid.UUID][]classModel.StudentClassEnrollmentModel
	enrollments  map[uuid.UUID]*classModel.StudentClassEnrollmentModel
	inserted     []*reportModel.WeeklyProgressReportModel
}

var _ service.ReportStore = (*stubStore)(nil)

func (s *stubStore) FindReportByKey(context.Context, uuid.UUID, int, int) (*reportModel.WeeklyProgressReportModel, error) {
	return nil, nil
}

func (s *stubStore) FindReportByID(context.Context, uuid.UUID) (*reportModel.WeeklyProgressReportModel, error) {
	return nil, nil
}

func (s *stubStore) InsertReport(_ context.Context, report *reportModel.WeeklyProgressReportModel) error {
	s.inserted = append(s.inserted, report)
	return nil
}

func (s *stubStore) UpdateReport(context.Context, *reportModel.WeeklyProgressReportModel) error {
	return nil
}

func (s *stubStore) ListReportsByStudent(context.Context, uuid.UUID, *int, string, int, int) ([]reportModel.WeeklyProgressReportModel, int64, error) {
	return nil, 0, nil
}

func (s *stubStore) ListReportsByClass(context.Context, uuid.UUID, int, int) ([]reportModel.WeeklyProgressReportModel, error) {
	return nil, nil
}

func (s *stubStore) ListAtRiskReports(context.Context, service.AtRiskFilter, int, int) ([]reportModel.WeeklyProgressReportModel, int64, error) {
	return nil, 0, nil
}

func (s *stubStore) CurrentEnrollmentOfStudent(_ context.Context, studentID uuid.UUID) (*classModel.StudentClassEnrollmentModel, error) {
	return s.enrollments[studentID], nil
}

func (s *stubStore) CurrentEnrollmentsOfClass(_ context.Context, classRoomID uuid.UUID) ([]classModel.StudentClassEnrollmentModel, error) {
	if classRoomID == s.brokenClass {
		return nil, errors.New("query timeout")
	}
	return s.byClass[classRoomID], nil
}

func (s *stubStore) ClassRoomIDsWithCurrentEnrollments(context.Context) ([]uuid.UUID, error) {
	if s.classListErr != nil {
		return nil, s.classListErr
	}
	return s.classIDs, nil
}

func (s *stubStore) ActivitiesInRange(context.Context, uuid.UUID, time.Time, time.Time) ([]activityModel.DailyActivityRecordModel, error) {
	return nil, nil
}

func TestRunWeeklyGenerationCountsAndIsolation(t *testing.T) {
	okClass, brokenClass := uuid.New(), uuid.New()
	okStudent, orphan := uuid.New(), uuid.New()

	store := &stubStore{
		classIDs:    []uuid.UUID{brokenClass, okClass},
		brokenClass: brokenClass,
		byClass: map[uuid.UUID][]classModel.StudentClassEnrollmentModel{
			okClass: {
				{StudentClassEnrollmentStudentID: okStudent, StudentClassEnrollmentClassRoomID: okClass, StudentClassEnrollmentIsCurrent: true},
				// enrolment basi: baris kelas masih ada tapi lookup per-siswa kosong
				{StudentClassEnrollmentStudentID: orphan, StudentClassEnrollmentClassRoomID: okClass, StudentClassEnrollmentIsCurrent: true},
			},
		},
		enrollments: map[uuid.UUID]*classModel.StudentClassEnrollmentModel{
			okStudent: {StudentClassEnrollmentStudentID: okStudent, StudentClassEnrollmentClassRoomID: okClass, StudentClassEnrollmentIsCurrent: true},
		},
	}

	svc := service.NewWeeklyReportService(store, nil)

	succeeded, failed, err := RunWeeklyGeneration(context.Background(), svc, 2025, 24)
	if err != nil {
		t.Fatalf("RunWeeklyGeneration: %v", err)
	}

	// Kelas rusak di-skip tanpa menghentikan kelas berikutnya.
	if succeeded != 1 {
		t.Fatalf("succeeded = %d, want 1", succeeded)
	}
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("laporan tersimpan = %d, want 1", len(store.inserted))
	}
	if store.inserted[0].WeeklyProgressReportStudentID != okStudent {
		t.Fatalf("laporan tersimpan utk siswa yang salah")
	}
	if store.inserted[0].WeeklyProgressReportWeekNumber != 24 || store.inserted[0].WeeklyProgressReportYear != 2025 {
		t.Fatalf("minggu/tahun salah: W%d/%d",
			store.inserted[0].WeeklyProgressReportWeekNumber, store.inserted[0].WeeklyProgressReportYear)
	}
}

func TestRunWeeklyGenerationClassListFailure(t *testing.T) {
	store := &stubStore{classListErr: errors.New("db down")}
	svc := service.NewWeeklyReportService(store, nil)

	// Gagal total harus kelihatan di error supaya pemanggil tahu run
	// belum terjadi dan bisa dicoba lagi (bukan dianggap sudah jalan).
	succeeded, failed, err := RunWeeklyGeneration(context.Background(), svc, 2025, 24)
	if err == nil {
		t.Fatalf("gagal ambil daftar kelas harus mengembalikan error")
	}
	if succeeded != 0 || failed != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", succeeded, failed)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("tidak boleh ada laporan tersimpan")
	}
}
