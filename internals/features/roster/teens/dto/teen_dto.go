// file: internals/features/roster/teens/dto/teen_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

/* =========================================================
   1) PUBLIC REGISTRATION
========================================================= */

type RegisterTeenRequest struct {
	FirstName          string `json:"first_name"          validate:"required,max=80"`
	LastName           string `json:"last_name"           validate:"required,max=80"`
	DOB                string `json:"dob"                 validate:"required"`
	TeenEmail          string `json:"teen_email"          validate:"required,email,max=160"`
	TeenPhone          string `json:"teen_phone"          validate:"omitempty,max=30"`
	AddressLine1       string `json:"address_line1"       validate:"required,max=160"`
	AddressLine2       string `json:"address_line2"       validate:"omitempty,max=160"`
	City               string `json:"city"                validate:"required,max=80"`
	State              string `json:"state"               validate:"required,max=40"`
	PostalCode         string `json:"postal_code"         validate:"required,max=20"`
	Parish             string `json:"parish"              validate:"omitempty,max=120"`
	EmergencyName      string `json:"emergency_contact_name"  validate:"omitempty,max=120"`
	EmergencyPhone     string `json:"emergency_contact_phone" validate:"omitempty,max=30"`
	ParentName         string `json:"parent_name"         validate:"required,max=120"`
	ParentEmail        string `json:"parent_email"        validate:"required,email,max=160"`
	ParentPhone        string `json:"parent_phone"        validate:"required,max=30"`
	ParentRelationship string `json:"parent_relationship" validate:"required,max=60"`

	// raw answers from the public form, stored as-submitted
	RegistrationDataJSON datatypes.JSON `json:"registration_data_json" validate:"omitempty"`
}

/* =========================================================
   2) STAFF UPDATE (partial, tri-state)
========================================================= */

type UpdateTeenRequest struct {
	FirstName          helper.PatchField[string] `json:"teen_first_name"`
	LastName           helper.PatchField[string] `json:"teen_last_name"`
	DOB                helper.PatchField[string] `json:"teen_dob"`
	TeenEmail          helper.PatchField[string] `json:"teen_email"`
	TeenPhone          helper.PatchField[string] `json:"teen_phone"`
	AddressLine1       helper.PatchField[string] `json:"teen_address_line1"`
	AddressLine2       helper.PatchField[string] `json:"teen_address_line2"`
	City               helper.PatchField[string] `json:"teen_city"`
	State              helper.PatchField[string] `json:"teen_state"`
	PostalCode         helper.PatchField[string] `json:"teen_postal_code"`
	Parish             helper.PatchField[string] `json:"teen_parish"`
	EmergencyName      helper.PatchField[string] `json:"teen_emergency_contact_name"`
	EmergencyPhone     helper.PatchField[string] `json:"teen_emergency_contact_phone"`
	ParentName         helper.PatchField[string] `json:"teen_parent_name"`
	ParentEmail        helper.PatchField[string] `json:"teen_parent_email"`
	ParentPhone        helper.PatchField[string] `json:"teen_parent_phone"`
	ParentRelationship helper.PatchField[string] `json:"teen_parent_relationship"`
	RegistrationStatus helper.PatchField[string] `json:"teen_registration_status"`
}

type ArchiveTeenRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=160"`
}

/* =========================================================
   3) helpers
========================================================= */

// ParseDOB accepts the wire date format used by the registration form.
func ParseDOB(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
