// file: internals/features/school/activities/daily_activity/dto/daily_activity_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/activities/daily_activity/model"
)

func TestCreateRequestNormalize(t *testing.T) {
	req := CreateDailyActivityRequest{
		StudentID:        uuid.New(),
		Date:             time.Date(2025, time.June, 16, 14, 30, 5, 0, time.FixedZone("WIB", 7*3600)),
		AttendanceStatus: "  PRESENT ",
	}
	req.Normalize()

	if req.AttendanceStatus != "present" {
		t.Fatalf("attendance = %q", req.AttendanceStatus)
	}
	want := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)
	if !req.Date.Equal(want) {
		t.Fatalf("date = %v, want %v (dipangkas ke tengah malam UTC)", req.Date, want)
	}
}

func TestCreateRequestValidate(t *testing.T) {
	bad := 7
	req := CreateDailyActivityRequest{
		StudentID:        uuid.New(),
		Date:             time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC),
		AttendanceStatus: "present",
		SubjectsStudied: []model.SubjectStudiedEntry{
			{UnderstandingLevel: &bad},
		},
	}
	if err := req.Validate(); err == nil {
		t.Fatalf("understanding_level 7 harus ditolak")
	}

	req.SubjectsStudied = nil
	req.AssessmentsTaken = []model.AssessmentEntry{{MarksObtained: -1, TotalMarks: 10}}
	if err := req.Validate(); err == nil {
		t.Fatalf("marks negatif harus ditolak")
	}

	req.AssessmentsTaken = nil
	if err := req.Validate(); err != nil {
		t.Fatalf("request valid ditolak: %v", err)
	}

	req.StudentID = uuid.Nil
	if err := req.Validate(); err == nil {
		t.Fatalf("student_id kosong harus ditolak")
	}
}

func TestCreateRequestToModel(t *testing.T) {
	teacherID := uuid.New()
	req := CreateDailyActivityRequest{
		StudentID:        uuid.New(),
		Date:             time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC),
		AttendanceStatus: "late",
		TotalHoursSpent:  5.5,
		SkillsSnapshot:   map[string]int{"membaca": 4},
	}

	m := req.ToModel(&teacherID)

	if m.DailyActivityRecordAttendanceStatus != model.AttendanceLate {
		t.Fatalf("status = %q", m.DailyActivityRecordAttendanceStatus)
	}
	if m.DailyActivityRecordRecordedByTeacherID == nil || *m.DailyActivityRecordRecordedByTeacherID != teacherID {
		t.Fatalf("recorded_by tidak terisi")
	}
	if got := m.DailyActivityRecordSkillsSnapshot.Data(); got["membaca"] != 4 {
		t.Fatalf("skills snapshot = %v", got)
	}
}
