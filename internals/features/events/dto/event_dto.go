// file: internals/features/events/dto/event_dto.go
package dto

import (
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

type CreateEventRequest struct {
	Name        string `json:"event_name"        validate:"required,max=160"`
	Description string `json:"event_description" validate:"omitempty"`
	Location    string `json:"event_location"    validate:"omitempty,max=240"`
	StartAt     string `json:"event_start_at"    validate:"omitempty"`
	EndAt       string `json:"event_end_at"      validate:"omitempty"`
}

type UpdateEventRequest struct {
	Name        helper.PatchField[string] `json:"event_name"`
	Description helper.PatchField[string] `json:"event_description"`
	Location    helper.PatchField[string] `json:"event_location"`
	StartAt     helper.PatchField[string] `json:"event_start_at"`
	EndAt       helper.PatchField[string] `json:"event_end_at"`
}
