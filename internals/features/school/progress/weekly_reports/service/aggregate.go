// file: internals/features/school/progress/weekly_reports/service/aggregate.go
package service

import (
	"math"

	"github.com/google/uuid"

	activityModel "sekolahku_backend/internals/features/school/activities/daily_activity/model"
	reportModel "sekolahku_backend/internals/features/school/progress/weekly_reports/model"
)

/* =========================
   Agregator aktivitas harian
   Semua murni in-memory; satu pass atas record seminggu.
========================= */

// subjectKey kunci grouping per mapel. Entri tanpa subject_id masuk bucket
// Known=false — tidak dicampur dengan mapel yang kebetulan bernama "unknown".
type subjectKey struct {
	Known bool
	ID    uuid.UUID
}

type subjectAgg struct {
	Name               string
	TopicsCompleted    int
	UnderstandingSum   int
	UnderstandingCount int
	Assessments        []reportModel.SubjectAssessmentItem
	MarksObtained      float64
	TotalMarks         float64
}

type activityAggregate struct {
	// Kehadiran
	TotalWorkingDays int
	DaysPresent      int
	DaysAbsent       int
	DaysLate         int
	DaysExcused      int
	TotalHours       float64
	PunctualCount    int
	UniformCount     int

	// Studi & asesmen per mapel (urutan kemunculan dipertahankan)
	Subjects     map[subjectKey]*subjectAgg
	SubjectOrder []subjectKey

	// PR & tugas kelas
	HomeworkAssigned      int
	HomeworkCompleted     int
	HomeworkQualitySum    int
	HomeworkQualityCount  int
	ClassworkTotal        int
	ClassworkCompleted    int
	ClassworkQualitySum   int
	ClassworkQualityCount int

	// Asesmen global
	TotalAssessments    int
	GlobalMarksObtained float64
	GlobalTotalMarks    float64

	// Perilaku (hanya record yang field-nya terisi)
	BehaviorSum        int
	BehaviorCount      int
	ParticipationSum   int
	ParticipationCount int
	DisciplineSum      int
	DisciplineCount    int

	// Skill bernama
	SkillSums   map[string]int
	SkillCounts map[string]int
}

func keyOfSubject(id *uuid.UUID) subjectKey {
	if id == nil || *id == uuid.Nil {
		return subjectKey{Known: false}
	}
	return subjectKey{Known: true, ID: *id}
}

func (a *activityAggregate) subject(key subjectKey, name *string) *subjectAgg {
	sub, ok := a.Subjects[key]
	if !ok {
		sub = &subjectAgg{Name: "unknown"}
		a.Subjects[key] = sub
		a.SubjectOrder = append(a.SubjectOrder, key)
	}
	// nama pertama yang terisi menang
	if sub.Name == "unknown" && name != nil && *name != "" {
		sub.Name = *name
	}
	return sub
}

// aggregateActivities meringkas record harian satu siswa dalam satu minggu.
// Field opsional yang kosong tidak menyumbang apa-apa (dan tidak pernah panic).
func aggregateActivities(records []activityModel.DailyActivityRecordModel) *activityAggregate {
	agg := &activityAggregate{
		Subjects:    make(map[subjectKey]*subjectAgg),
		SkillSums:   make(map[string]int),
		SkillCounts: make(map[string]int),
	}

	for _, rec := range records {
		agg.TotalWorkingDays++

		switch rec.DailyActivityRecordAttendanceStatus {
		case activityModel.AttendancePresent:
			agg.DaysPresent++
		case activityModel.AttendanceAbsent:
			agg.DaysAbsent++
		case activityModel.AttendanceLate:
			agg.DaysLate++
		case activityModel.AttendanceExcused:
			agg.DaysExcused++
		}

		agg.TotalHours += rec.DailyActivityRecordTotalHoursSpent
		if rec.DailyActivityRecordPunctuality {
			agg.PunctualCount++
		}
		if rec.DailyActivityRecordUniformCompliance {
			agg.UniformCount++
		}

		// ===== Studi per mapel =====
		for _, st := range rec.DailyActivityRecordSubjectsStudied {
			sub := agg.subject(keyOfSubject(st.SubjectID), st.SubjectName)
			sub.TopicsCompleted += len(st.TopicsCovered)
			if st.UnderstandingLevel != nil {
				sub.UnderstandingSum += *st.UnderstandingLevel
				sub.UnderstandingCount++
			}
		}

		// ===== Asesmen =====
		for _, as := range rec.DailyActivityRecordAssessmentsTaken {
			sub := agg.subject(keyOfSubject(as.SubjectID), as.SubjectName)
			sub.Assessments = append(sub.Assessments, reportModel.SubjectAssessmentItem{
				AssessmentType: as.AssessmentType,
				Score:          as.MarksObtained,
				OutOf:          as.TotalMarks,
			})
			sub.MarksObtained += as.MarksObtained
			sub.TotalMarks += as.TotalMarks

			agg.TotalAssessments++
			agg.GlobalMarksObtained += as.MarksObtained
			agg.GlobalTotalMarks += as.TotalMarks
		}

		// ===== PR =====
		agg.HomeworkAssigned += len(rec.DailyActivityRecordHomeworkAssigned)
		for _, hw := range rec.DailyActivityRecordHomeworkCompleted {
			if hw.CompletionStatus == activityModel.WorkComplete {
				agg.HomeworkCompleted++
			}
			if hw.Quality != nil {
				agg.HomeworkQualitySum += *hw.Quality
				agg.HomeworkQualityCount++
			}
		}

		// ===== Tugas kelas =====
		for _, cw := range rec.DailyActivityRecordClassworkCompleted {
			agg.ClassworkTotal++
			if cw.CompletionStatus == activityModel.WorkComplete {
				agg.ClassworkCompleted++
			}
			if cw.Quality != nil {
				agg.ClassworkQualitySum += *cw.Quality
				agg.ClassworkQualityCount++
			}
		}

		// ===== Perilaku =====
		if rec.DailyActivityRecordBehaviorRating != nil {
			agg.BehaviorSum += *rec.DailyActivityRecordBehaviorRating
			agg.BehaviorCount++
		}
		if rec.DailyActivityRecordParticipationLevel != nil {
			agg.ParticipationSum += *rec.DailyActivityRecordParticipationLevel
			agg.ParticipationCount++
		}
		if rec.DailyActivityRecordDisciplineScore != nil {
			agg.DisciplineSum += *rec.DailyActivityRecordDisciplineScore
			agg.DisciplineCount++
		}

		// ===== Skill =====
		for skill, level := range rec.DailyActivityRecordSkillsSnapshot.Data() {
			agg.SkillSums[skill] += level
			agg.SkillCounts[skill]++
		}
	}

	return agg
}

/* =========================
   Util rasio & pembulatan
========================= */

// round1 pembulatan 1 desimal.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// pct rasio dalam persen, selalu di [0,100]. Pembagi nol → 0 (bukan NaN);
// numerator > denominator (mis. menyelesaikan PR minggu sebelumnya) → 100.
func pct(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	v := round1(numerator / denominator * 100)
	if v > 100 {
		return 100
	}
	return v
}

// avg1 rata-rata 1 desimal dari sum/count int, 0 kalau tidak ada sampel.
func avg1(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return round1(float64(sum) / float64(count))
}
