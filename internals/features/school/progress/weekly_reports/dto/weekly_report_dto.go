// file: internals/features/school/progress/weekly_reports/dto/weekly_report_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/progress/weekly_reports/service"
)

/*
=========================================================
PATCH FIELD — tri-state (absent | null | value)
=========================================================
*/
type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

/*
=========================================================
REQUEST: GENERATE (single & bulk)
=========================================================
*/
type GenerateWeeklyReportRequest struct {
	StudentID  uuid.UUID `json:"student_id"  validate:"required"`
	WeekNumber int       `json:"week_number" validate:"required,min=1,max=53"`
	Year       int       `json:"year"        validate:"required,min=2000"`
}

type BulkGenerateWeeklyReportRequest struct {
	ClassRoomID uuid.UUID `json:"class_room_id" validate:"required"`
	WeekNumber  int       `json:"week_number"   validate:"required,min=1,max=53"`
	Year        int       `json:"year"          validate:"required,min=2000"`
}

/*
=========================================================
REQUEST: UPDATE COMMENTS (PATCH)
Field absent = tidak disentuh; null = dikosongkan.
=========================================================
*/
type UpdateCommentsRequest struct {
	TeacherComments    PatchField[string]   `json:"teacher_comments"`
	WeeklyHighlights   PatchField[[]string] `json:"weekly_highlights"`
	AreasOfImprovement PatchField[[]string] `json:"areas_of_improvement"`
	ActionItems        PatchField[[]string] `json:"action_items"`
	FollowUpRequired   PatchField[bool]     `json:"follow_up_required"`
}

func (r *UpdateCommentsRequest) Normalize() {
	if r.TeacherComments.Present && r.TeacherComments.Value != nil {
		s := strings.TrimSpace(*r.TeacherComments.Value)
		r.TeacherComments.Value = &s
	}
	trimList := func(p *PatchField[[]string]) {
		if !p.Present || p.Value == nil {
			return
		}
		out := make([]string, 0, len(*p.Value))
		for _, s := range *p.Value {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
		p.Value = &out
	}
	trimList(&r.WeeklyHighlights)
	trimList(&r.AreasOfImprovement)
	trimList(&r.ActionItems)
}

// ToPatch konversi tri-state → service.CommentPatch.
// null pada string/list = dikosongkan; null pada follow_up = abaikan override.
func (r *UpdateCommentsRequest) ToPatch() service.CommentPatch {
	patch := service.CommentPatch{}

	if r.TeacherComments.Present {
		if r.TeacherComments.Value != nil {
			patch.TeacherComments = r.TeacherComments.Value
		} else {
			empty := ""
			patch.TeacherComments = &empty
		}
	}

	listField := func(p PatchField[[]string]) *[]string {
		if !p.Present {
			return nil
		}
		if p.Value != nil {
			return p.Value
		}
		empty := []string{}
		return &empty
	}
	patch.WeeklyHighlights = listField(r.WeeklyHighlights)
	patch.AreasOfImprovement = listField(r.AreasOfImprovement)
	patch.ActionItems = listField(r.ActionItems)

	if r.FollowUpRequired.Present && r.FollowUpRequired.Value != nil {
		patch.FollowUpRequired = r.FollowUpRequired.Value
	}
	return patch
}
