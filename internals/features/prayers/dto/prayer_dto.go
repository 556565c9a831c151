// file: internals/features/prayers/dto/prayer_dto.go
package dto

import (
	"github.com/google/uuid"

	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

type CreatePrayerRequest struct {
	TeenID      *uuid.UUID `json:"teen_id"`
	RequestedBy string     `json:"requested_by" validate:"omitempty,max=120"`
	Text        string     `json:"text"         validate:"required"`
}

type UpdatePrayerRequest struct {
	RequestedBy helper.PatchField[string] `json:"requested_by"`
	Text        helper.PatchField[string] `json:"text"`
}
