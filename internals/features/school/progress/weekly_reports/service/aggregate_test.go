// file: internals/features/school/progress/weekly_reports/service/aggregate_test.go
package service

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	activityModel "sekolahku_backend/internals/features/school/activities/daily_activity/model"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func attendanceRecord(status activityModel.AttendanceStatus) activityModel.DailyActivityRecordModel {
	return activityModel.DailyActivityRecordModel{
		DailyActivityRecordAttendanceStatus: status,
	}
}

func TestAggregateAttendanceCounts(t *testing.T) {
	records := []activityModel.DailyActivityRecordModel{
		attendanceRecord(activityModel.AttendancePresent),
		attendanceRecord(activityModel.AttendancePresent),
		attendanceRecord(activityModel.AttendanceLate),
		attendanceRecord(activityModel.AttendanceAbsent),
		attendanceRecord(activityModel.AttendanceExcused),
	}

	agg := aggregateActivities(records)

	if agg.TotalWorkingDays != 5 {
		t.Fatalf("TotalWorkingDays = %d", agg.TotalWorkingDays)
	}
	if agg.DaysPresent != 2 || agg.DaysLate != 1 || agg.DaysAbsent != 1 || agg.DaysExcused != 1 {
		t.Fatalf("hitungan kehadiran salah: P=%d L=%d A=%d E=%d",
			agg.DaysPresent, agg.DaysLate, agg.DaysAbsent, agg.DaysExcused)
	}

	// LATE tetap dihitung hadir: (2+1)/5 = 60%
	got := pct(float64(agg.DaysPresent+agg.DaysLate), float64(agg.TotalWorkingDays))
	if !floatEq(got, 60.0) {
		t.Fatalf("attendance pct = %v, want 60.0", got)
	}
}

func TestAggregateEmptyWeekIsAllZero(t *testing.T) {
	agg := aggregateActivities(nil)

	if agg.TotalWorkingDays != 0 || agg.HomeworkAssigned != 0 || agg.TotalAssessments != 0 {
		t.Fatalf("agregat minggu kosong tidak nol: %+v", agg)
	}
	// pembagi nol tidak boleh menghasilkan NaN
	if got := pct(float64(agg.DaysPresent), float64(agg.TotalWorkingDays)); !floatEq(got, 0) {
		t.Fatalf("pct(0,0) = %v", got)
	}
	if got := avg1(agg.BehaviorSum, agg.BehaviorCount); !floatEq(got, 0) {
		t.Fatalf("avg1(0,0) = %v", got)
	}
}

func TestAggregateSubjectGrouping(t *testing.T) {
	mathID := uuid.New()

	records := []activityModel.DailyActivityRecordModel{
		{
			DailyActivityRecordAttendanceStatus: activityModel.AttendancePresent,
			DailyActivityRecordSubjectsStudied: datatypes.NewJSONSlice([]activityModel.SubjectStudiedEntry{
				{SubjectID: &mathID, SubjectName: strPtr("Matematika"), TopicsCovered: []string{"aljabar", "geometri"}, UnderstandingLevel: intPtr(3)},
				{TopicsCovered: []string{"bebas"}}, // tanpa subject_id → bucket unknown
			}),
		},
		{
			DailyActivityRecordAttendanceStatus: activityModel.AttendancePresent,
			DailyActivityRecordSubjectsStudied: datatypes.NewJSONSlice([]activityModel.SubjectStudiedEntry{
				{SubjectID: &mathID, UnderstandingLevel: intPtr(4)}, // nama kosong, harus tetap "Matematika"
				{SubjectID: &mathID, UnderstandingLevel: intPtr(4)},
			}),
		},
	}

	agg := aggregateActivities(records)

	if len(agg.SubjectOrder) != 2 {
		t.Fatalf("jumlah bucket mapel = %d, want 2", len(agg.SubjectOrder))
	}

	mtk := agg.Subjects[subjectKey{Known: true, ID: mathID}]
	if mtk == nil {
		t.Fatalf("bucket Matematika tidak ada")
	}
	if mtk.Name != "Matematika" {
		t.Fatalf("nama mapel = %q", mtk.Name)
	}
	if mtk.TopicsCompleted != 2 {
		t.Fatalf("topik Matematika = %d, want 2", mtk.TopicsCompleted)
	}
	// [3,4,4] → 3.666... → 3.7
	if got := avg1(mtk.UnderstandingSum, mtk.UnderstandingCount); !floatEq(got, 3.7) {
		t.Fatalf("avg pemahaman = %v, want 3.7", got)
	}

	unknown := agg.Subjects[subjectKey{Known: false}]
	if unknown == nil || unknown.Name != "unknown" || unknown.TopicsCompleted != 1 {
		t.Fatalf("bucket unknown salah: %+v", unknown)
	}
}

func TestAggregateOptionalFieldsSkipped(t *testing.T) {
	records := []activityModel.DailyActivityRecordModel{
		{
			DailyActivityRecordAttendanceStatus: activityModel.AttendancePresent,
			DailyActivityRecordBehaviorRating:   intPtr(4),
			DailyActivityRecordHomeworkCompleted: datatypes.NewJSONSlice([]activityModel.WorkItemEntry{
				{CompletionStatus: activityModel.WorkComplete, Quality: intPtr(5)},
				{CompletionStatus: activityModel.WorkPartial}, // quality nil → tidak ikut rata-rata
			}),
		},
		{
			// semua field perilaku nil → bukan sampel
			DailyActivityRecordAttendanceStatus: activityModel.AttendancePresent,
		},
	}

	agg := aggregateActivities(records)

	if agg.BehaviorCount != 1 || agg.BehaviorSum != 4 {
		t.Fatalf("behavior sum=%d count=%d", agg.BehaviorSum, agg.BehaviorCount)
	}
	if agg.HomeworkCompleted != 1 {
		t.Fatalf("homework completed = %d, want 1 (partial tidak dihitung)", agg.HomeworkCompleted)
	}
	if agg.HomeworkQualityCount != 1 || agg.HomeworkQualitySum != 5 {
		t.Fatalf("homework quality sum=%d count=%d", agg.HomeworkQualitySum, agg.HomeworkQualityCount)
	}
}

func TestAggregateSkillAverages(t *testing.T) {
	records := []activityModel.DailyActivityRecordModel{
		{
			DailyActivityRecordAttendanceStatus: activityModel.AttendancePresent,
			DailyActivityRecordSkillsSnapshot:   datatypes.NewJSONType(map[string]int{"membaca": 4, "menulis": 3}),
		},
		{
			DailyActivityRecordAttendanceStatus: activityModel.AttendancePresent,
			DailyActivityRecordSkillsSnapshot:   datatypes.NewJSONType(map[string]int{"membaca": 3}),
		},
	}

	agg := aggregateActivities(records)

	if got := avg1(agg.SkillSums["membaca"], agg.SkillCounts["membaca"]); !floatEq(got, 3.5) {
		t.Fatalf("avg membaca = %v, want 3.5", got)
	}
	if got := avg1(agg.SkillSums["menulis"], agg.SkillCounts["menulis"]); !floatEq(got, 3.0) {
		t.Fatalf("avg menulis = %v, want 3.0", got)
	}
}

func TestRoundingHelpers(t *testing.T) {
	if got := round1(3.666666); !floatEq(got, 3.7) {
		t.Fatalf("round1 = %v", got)
	}
	if got := round1(2.04); !floatEq(got, 2.0) {
		t.Fatalf("round1 = %v", got)
	}
	if got := pct(1, 3); !floatEq(got, 33.3) {
		t.Fatalf("pct(1,3) = %v", got)
	}
	if got := pct(7, 0); !floatEq(got, 0) {
		t.Fatalf("pct(_,0) = %v", got)
	}
	// numerator > denominator tetap persentase valid
	if got := pct(2, 1); !floatEq(got, 100) {
		t.Fatalf("pct(2,1) = %v, want 100", got)
	}
	if got := pct(13, 10); !floatEq(got, 100) {
		t.Fatalf("pct(13,10) = %v, want 100", got)
	}
}
