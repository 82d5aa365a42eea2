// file: internals/features/school/progress/weekly_reports/service/report_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	reportModel "sekolahku_backend/internals/features/school/progress/weekly_reports/model"
)

/* =========================
   Service bootstrap
========================= */

type WeeklyReportService struct {
	Store ReportStore
	Clock Clock
}

func NewWeeklyReportService(store ReportStore, clock Clock) *WeeklyReportService {
	if clock == nil {
		clock = time.Now
	}
	return &WeeklyReportService{Store: store, Clock: clock}
}

/* =========================
   BulkGenerationResult — hasil per siswa dalam batch
========================= */

type BulkGenerationResult struct {
	StudentID   uuid.UUID                              `json:"student_id"`
	StudentName string                                 `json:"student_name,omitempty"`
	Success     bool                                   `json:"success"`
	Report      *reportModel.WeeklyProgressReportModel `json:"report,omitempty"`
	Error       string                                 `json:"error,omitempty"`
}

/* =========================
   Generate (single student) — idempoten
========================= */

// Generate membuat (atau mengembalikan yang sudah ada) laporan mingguan utk
// satu siswa. Aman dipanggil berulang: sekali laporan tersimpan, panggilan
// berikutnya mengembalikan baris yang sama tanpa hitung ulang.
func (s *WeeklyReportService) Generate(ctx context.Context, studentID uuid.UUID, weekNumber, year int, teacherID *uuid.UUID) (*reportModel.WeeklyProgressReportModel, error) {
	if studentID == uuid.Nil {
		return nil, ErrStudentIDRequired
	}
	if weekNumber < 1 || weekNumber > 53 || year <= 0 {
		return nil, ErrWeekOutOfRange
	}

	// ===== Idempotency guard =====
	existing, err := s.Store.FindReportByKey(ctx, studentID, weekNumber, year)
	if err != nil {
		return nil, fmt.Errorf("cek laporan existing: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	// Siswa wajib punya enrolment aktif (buat atribusi kelas)
	enrollment, err := s.Store.CurrentEnrollmentOfStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("cari enrolment aktif: %w", err)
	}
	if enrollment == nil {
		return nil, ErrNoActiveEnrollment
	}

	rng := WeekRangeOf(weekNumber, year)
	records, err := s.Store.ActivitiesInRange(ctx, studentID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("ambil aktivitas harian: %w", err)
	}

	report := synthesizeReport(studentID, enrollment, weekNumber, year, rng, aggregateActivities(records), teacherID)

	if err := s.Store.InsertReport(ctx, report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Kalah balapan dengan generate lain utk key yang sama.
			// Baca baris pemenang supaya hasil akhirnya tetap idempoten.
			if winner, ferr := s.Store.FindReportByKey(ctx, studentID, weekNumber, year); ferr == nil && winner != nil {
				return winner, nil
			}
			return nil, ErrDuplicateGeneration
		}
		return nil, fmt.Errorf("simpan laporan: %w", err)
	}
	return report, nil
}

/* =========================
   Report synthesizer
========================= */

// synthesizeReport merakit agregat menjadi bentuk laporan final.
// Satu-satunya write terjadi di Generate (insert satu baris).
func synthesizeReport(
	studentID uuid.UUID,
	enrollment *classModel.StudentClassEnrollmentModel,
	weekNumber, year int,
	rng WeekRange,
	agg *activityAggregate,
	teacherID *uuid.UUID,
) *reportModel.WeeklyProgressReportModel {
	days := float64(agg.TotalWorkingDays)

	// LATE tetap dihitung hadir
	attendancePct := pct(float64(agg.DaysPresent+agg.DaysLate), days)

	// ===== Ringkasan per mapel + klasifikasi kuat/lemah =====
	subjectSummaries := make([]reportModel.SubjectProgressSummary, 0, len(agg.SubjectOrder))
	assessmentSummaries := make([]reportModel.AssessmentSummary, 0, len(agg.SubjectOrder))
	var strengths, weaks []string

	for _, key := range agg.SubjectOrder {
		sub := agg.Subjects[key]

		var subjectID *uuid.UUID
		if key.Known {
			id := key.ID
			subjectID = &id
		}

		avgUnderstanding := avg1(sub.UnderstandingSum, sub.UnderstandingCount)
		subjectSummaries = append(subjectSummaries, reportModel.SubjectProgressSummary{
			SubjectID:        subjectID,
			SubjectName:      sub.Name,
			TopicsCompleted:  sub.TopicsCompleted,
			AvgUnderstanding: avgUnderstanding,
			Assessments:      sub.Assessments,
			Trend:            reportModel.TrendStable,
		})

		// Mapel tanpa sampel pemahaman (avg 0) netral: tidak masuk dua-duanya.
		switch {
		case avgUnderstanding >= 4:
			strengths = append(strengths, sub.Name)
		case avgUnderstanding > 0 && avgUnderstanding <= 2:
			weaks = append(weaks, sub.Name)
		}

		if n := len(sub.Assessments); n > 0 {
			var scoreSum float64
			for _, a := range sub.Assessments {
				scoreSum += a.Score
			}
			assessmentSummaries = append(assessmentSummaries, reportModel.AssessmentSummary{
				SubjectID:     subjectID,
				SubjectName:   sub.Name,
				Count:         n,
				AvgScore:      round1(scoreSum / float64(n)),
				AvgPercentage: pct(sub.MarksObtained, sub.TotalMarks),
			})
		}
	}

	// ===== Rata-rata skill =====
	skillAverages := make(map[string]float64, len(agg.SkillSums))
	for skill, sum := range agg.SkillSums {
		skillAverages[skill] = avg1(sum, agg.SkillCounts[skill])
	}

	followUp := len(weaks) > 0 || attendancePct < 70

	return &reportModel.WeeklyProgressReportModel{
		WeeklyProgressReportStudentID:   studentID,
		WeeklyProgressReportClassRoomID: &enrollment.StudentClassEnrollmentClassRoomID,
		WeeklyProgressReportWeekNumber:  weekNumber,
		WeeklyProgressReportYear:        year,

		WeeklyProgressReportWeekStartDate: rng.Start,
		WeeklyProgressReportWeekEndDate:   rng.End,

		WeeklyProgressReportTotalWorkingDays:      agg.TotalWorkingDays,
		WeeklyProgressReportDaysPresent:           agg.DaysPresent,
		WeeklyProgressReportDaysAbsent:            agg.DaysAbsent,
		WeeklyProgressReportDaysLate:              agg.DaysLate,
		WeeklyProgressReportDaysExcused:           agg.DaysExcused,
		WeeklyProgressReportAttendancePercentage:  attendancePct,
		WeeklyProgressReportPunctualityPercentage: pct(float64(agg.PunctualCount), days),
		WeeklyProgressReportTotalHoursSpent:       round1(agg.TotalHours),
		WeeklyProgressReportUniformComplianceRate: pct(float64(agg.UniformCount), days),

		WeeklyProgressReportSubjectWiseProgress: subjectSummaries,

		WeeklyProgressReportHomeworkAssigned:        agg.HomeworkAssigned,
		WeeklyProgressReportHomeworkCompleted:       agg.HomeworkCompleted,
		WeeklyProgressReportHomeworkCompletionRate:  pct(float64(agg.HomeworkCompleted), float64(agg.HomeworkAssigned)),
		WeeklyProgressReportHomeworkAvgQuality:      avg1(agg.HomeworkQualitySum, agg.HomeworkQualityCount),
		WeeklyProgressReportClassworkTotal:          agg.ClassworkTotal,
		WeeklyProgressReportClassworkCompleted:      agg.ClassworkCompleted,
		WeeklyProgressReportClassworkCompletionRate: pct(float64(agg.ClassworkCompleted), float64(agg.ClassworkTotal)),
		WeeklyProgressReportClassworkAvgQuality:     avg1(agg.ClassworkQualitySum, agg.ClassworkQualityCount),

		WeeklyProgressReportTotalAssessments:    agg.TotalAssessments,
		WeeklyProgressReportAssessmentSummaries: assessmentSummaries,
		WeeklyProgressReportOverallAverageScore: pct(agg.GlobalMarksObtained, agg.GlobalTotalMarks),

		WeeklyProgressReportAverageBehaviorScore: avg1(agg.BehaviorSum, agg.BehaviorCount),
		WeeklyProgressReportAverageParticipation: avg1(agg.ParticipationSum, agg.ParticipationCount),
		WeeklyProgressReportAverageDiscipline:    avg1(agg.DisciplineSum, agg.DisciplineCount),
		WeeklyProgressReportSkillAverages:        datatypes.NewJSONType(skillAverages),

		WeeklyProgressReportStrengthSubjects: strengths,
		WeeklyProgressReportWeakSubjects:     weaks,
		WeeklyProgressReportFollowUpRequired: followUp,

		WeeklyProgressReportGeneratedByTeacherID: teacherID,
	}
}

/* =========================
   Bulk orchestrator
========================= */

// BulkGenerate jalankan pipeline generate utk seluruh enrolment aktif satu
// kelas, sekuensial. Kegagalan per siswa dicatat di hasil, TIDAK menghentikan
// siswa berikutnya. Urutan hasil = urutan iterasi enrolment.
func (s *WeeklyReportService) BulkGenerate(ctx context.Context, classRoomID uuid.UUID, weekNumber, year int, teacherID *uuid.UUID) ([]BulkGenerationResult, error) {
	if classRoomID == uuid.Nil {
		return nil, ErrClassRoomIDRequired
	}
	if weekNumber < 1 || weekNumber > 53 || year <= 0 {
		return nil, ErrWeekOutOfRange
	}

	enrollments, err := s.Store.CurrentEnrollmentsOfClass(ctx, classRoomID)
	if err != nil {
		return nil, fmt.Errorf("ambil enrolment kelas: %w", err)
	}

	results := make([]BulkGenerationResult, 0, len(enrollments))
	for _, enr := range enrollments {
		res := BulkGenerationResult{
			StudentID:   enr.StudentClassEnrollmentStudentID,
			StudentName: enr.StudentClassEnrollmentStudentNameCache,
		}
		report, err := s.Generate(ctx, enr.StudentClassEnrollmentStudentID, weekNumber, year, teacherID)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Success = true
			res.Report = report
		}
		results = append(results, res)
	}
	return results, nil
}

/* =========================
   Read operations
========================= */

func (s *WeeklyReportService) GetByStudent(ctx context.Context, studentID uuid.UUID, year *int, orderExpr string, limit, offset int) ([]reportModel.WeeklyProgressReportModel, int64, error) {
	if studentID == uuid.Nil {
		return nil, 0, ErrStudentIDRequired
	}
	items, total, err := s.Store.ListReportsByStudent(ctx, studentID, year, orderExpr, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list laporan siswa: %w", err)
	}
	return items, total, nil
}

// GetByClass laporan satu kelas utk satu minggu, attendance tertinggi dulu.
func (s *WeeklyReportService) GetByClass(ctx context.Context, classRoomID uuid.UUID, weekNumber, year int) ([]reportModel.WeeklyProgressReportModel, error) {
	if classRoomID == uuid.Nil {
		return nil, ErrClassRoomIDRequired
	}
	if weekNumber < 1 || weekNumber > 53 || year <= 0 {
		return nil, ErrWeekOutOfRange
	}
	items, err := s.Store.ListReportsByClass(ctx, classRoomID, weekNumber, year)
	if err != nil {
		return nil, fmt.Errorf("list laporan kelas: %w", err)
	}
	return items, nil
}

// GetAtRisk laporan siswa berisiko: attendance<70 ATAU homework<50 ATAU
// behavior<2.5 ATAU follow_up_required — satu sinyal saja cukup.
func (s *WeeklyReportService) GetAtRisk(ctx context.Context, filter AtRiskFilter, limit, offset int) ([]reportModel.WeeklyProgressReportModel, int64, error) {
	items, total, err := s.Store.ListAtRiskReports(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list laporan at-risk: %w", err)
	}
	return items, total, nil
}

/* =========================
   UpdateComments — satu-satunya mutasi pasca-generate
========================= */

// CommentPatch field nil = tidak disentuh (tri-state ditangani di DTO).
type CommentPatch struct {
	TeacherComments    *string
	WeeklyHighlights   *[]string
	AreasOfImprovement *[]string
	ActionItems        *[]string
	FollowUpRequired   *bool // override manual oleh guru
}

func (s *WeeklyReportService) UpdateComments(ctx context.Context, reportID uuid.UUID, patch CommentPatch) (*reportModel.WeeklyProgressReportModel, error) {
	if reportID == uuid.Nil {
		return nil, ErrReportNotFound
	}
	report, err := s.Store.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("cari laporan: %w", err)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	if patch.TeacherComments != nil {
		report.WeeklyProgressReportTeacherComments = patch.TeacherComments
	}
	if patch.WeeklyHighlights != nil {
		report.WeeklyProgressReportWeeklyHighlights = *patch.WeeklyHighlights
	}
	if patch.AreasOfImprovement != nil {
		report.WeeklyProgressReportAreasOfImprovement = *patch.AreasOfImprovement
	}
	if patch.ActionItems != nil {
		report.WeeklyProgressReportActionItems = *patch.ActionItems
	}
	if patch.FollowUpRequired != nil {
		report.WeeklyProgressReportFollowUpRequired = *patch.FollowUpRequired
	}

	if err := s.Store.UpdateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("update catatan laporan: %w", err)
	}
	return report, nil
}

/* =========================
   Dipakai scheduler
========================= */

func (s *WeeklyReportService) ClassRoomsWithCurrentEnrollments(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := s.Store.ClassRoomIDsWithCurrentEnrollments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kelas aktif: %w", err)
	}
	return ids, nil
}
