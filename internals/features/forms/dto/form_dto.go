// file: internals/features/forms/dto/form_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

/* =========================================================
   1) TEMPLATE CRUD
========================================================= */

// FieldInput is one field as sent by the form builder. Options accepts
// either a list of strings or one delimited string. An absent ID means
// a new field; a known ID updates in place; a stale ID is ignored.
type FieldInput struct {
	ID         *uuid.UUID  `json:"id"`
	Label      string      `json:"label"`
	Type       string      `json:"type"       validate:"required"`
	Required   bool        `json:"required"`
	HelpText   string      `json:"help_text"`
	Options    interface{} `json:"options"`
	AllowOther bool        `json:"allow_other"`
}

type CreateFormRequest struct {
	Name        string `json:"form_name"`
	Description string `json:"form_description"`
	Category    string `json:"form_category"`

	ValidForValue *int    `json:"form_valid_for_value"`
	ValidForUnit  *string `json:"form_valid_for_unit"`
	ValidUntil    *string `json:"form_valid_until"`

	Fields []FieldInput `json:"fields"`
}

type UpdateFormRequest struct {
	Name        helper.PatchField[string] `json:"form_name"`
	Description helper.PatchField[string] `json:"form_description"`
	Category    helper.PatchField[string] `json:"form_category"`

	ValidForValue helper.PatchField[int]    `json:"form_valid_for_value"`
	ValidForUnit  helper.PatchField[string] `json:"form_valid_for_unit"`
	ValidUntil    helper.PatchField[string] `json:"form_valid_until"`

	// nil slice leaves the field list untouched
	Fields          *[]FieldInput `json:"fields"`
	RemovedFieldIDs []uuid.UUID   `json:"removed_field_ids"`
}

/* =========================================================
   2) ASSIGNMENT / SUBMISSION
========================================================= */

type AssignFormRequest struct {
	TeenID        uuid.UUID  `json:"teen_id"  validate:"required"`
	EventID       *uuid.UUID `json:"event_id"`
	DueAt         *string    `json:"due_at"`
	Required      bool       `json:"required"`
	AllowReassign bool       `json:"allow_reassign"`
}

type SubmitFormRequest struct {
	Data map[string]interface{} `json:"data" validate:"required"`
}

// AssignmentView is an assignment row with derived display status.
type AssignmentView struct {
	AssignmentID uuid.UUID  `json:"assignment_id"`
	FormID       uuid.UUID  `json:"form_id"`
	FormName     string     `json:"form_name"`
	TeenID       uuid.UUID  `json:"teen_id"`
	TeenName     string     `json:"teen_name"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	Required     bool       `json:"required"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Status       string     `json:"status"`
}

// SummaryRow is one resolved field/value pair for a printable summary.
type SummaryRow struct {
	FieldID  uuid.UUID `json:"field_id"`
	Label    string    `json:"label"`
	HelpText string    `json:"help_text,omitempty"`
	Type     string    `json:"type"`
	Value    string    `json:"value"`
}

func ParseDueAt(value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t, true
		}
	}
	return nil, false
}
