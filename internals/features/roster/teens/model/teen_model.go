// file: internals/features/roster/teens/model/teen_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Registration workflow states a teen moves through after the public form.
const (
	RegistrationPendingParentVerification = "PENDING_PARENT_VERIFICATION"
	RegistrationPendingAdditionalInfo     = "PENDING_ADDITIONAL_INFO"
	RegistrationComplete                  = "COMPLETE"
)

var RegistrationStatuses = []string{
	RegistrationPendingParentVerification,
	RegistrationPendingAdditionalInfo,
	RegistrationComplete,
}

func IsRegistrationStatus(s string) bool {
	for _, v := range RegistrationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type TeenModel struct {
	// PK
	TeenID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teen_id" json:"teen_id"`

	// Check-in code read over the phone / typed on the kiosk
	TeenPublicID *string `gorm:"type:varchar(20);uniqueIndex;column:teen_public_id" json:"teen_public_id,omitempty"`

	// Identity
	TeenFirstName string    `gorm:"type:varchar(80);not null;column:teen_first_name" json:"teen_first_name"`
	TeenLastName  string    `gorm:"type:varchar(80);not null;column:teen_last_name"  json:"teen_last_name"`
	TeenDOB       time.Time `gorm:"type:date;not null;column:teen_dob"               json:"teen_dob"`

	// Contact (nullable)
	TeenEmail *string `gorm:"type:varchar(160);column:teen_email" json:"teen_email,omitempty"`
	TeenPhone *string `gorm:"type:varchar(30);column:teen_phone"  json:"teen_phone,omitempty"`

	// Address
	TeenAddressLine1 *string `gorm:"type:varchar(160);column:teen_address_line1" json:"teen_address_line1,omitempty"`
	TeenAddressLine2 *string `gorm:"type:varchar(160);column:teen_address_line2" json:"teen_address_line2,omitempty"`
	TeenCity         *string `gorm:"type:varchar(80);column:teen_city"           json:"teen_city,omitempty"`
	TeenState        *string `gorm:"type:varchar(40);column:teen_state"          json:"teen_state,omitempty"`
	TeenPostalCode   *string `gorm:"type:varchar(20);column:teen_postal_code"    json:"teen_postal_code,omitempty"`
	TeenParish       *string `gorm:"type:varchar(120);column:teen_parish"        json:"teen_parish,omitempty"`

	// Emergency contact
	TeenEmergencyContactName  *string `gorm:"type:varchar(120);column:teen_emergency_contact_name"  json:"teen_emergency_contact_name,omitempty"`
	TeenEmergencyContactPhone *string `gorm:"type:varchar(30);column:teen_emergency_contact_phone"  json:"teen_emergency_contact_phone,omitempty"`

	// Parent / guardian
	TeenParentName         *string `gorm:"type:varchar(120);column:teen_parent_name"         json:"teen_parent_name,omitempty"`
	TeenParentEmail        *string `gorm:"type:varchar(160);column:teen_parent_email"        json:"teen_parent_email,omitempty"`
	TeenParentPhone        *string `gorm:"type:varchar(30);column:teen_parent_phone"         json:"teen_parent_phone,omitempty"`
	TeenParentRelationship *string `gorm:"type:varchar(60);column:teen_parent_relationship"  json:"teen_parent_relationship,omitempty"`

	// Registration workflow
	TeenRegistrationStatus   string         `gorm:"type:varchar(40);not null;default:'PENDING_PARENT_VERIFICATION';column:teen_registration_status" json:"teen_registration_status"`
	TeenRegistrationDataJSON datatypes.JSON `gorm:"column:teen_registration_data_json" json:"teen_registration_data_json,omitempty"`

	// Status & audit
	TeenArchivedAt     *time.Time `gorm:"type:timestamptz;index;column:teen_archived_at"                 json:"teen_archived_at,omitempty"`
	TeenArchivedReason *string    `gorm:"type:varchar(160);column:teen_archived_reason"                  json:"teen_archived_reason,omitempty"`
	TeenCreatedAt      time.Time  `gorm:"type:timestamptz;not null;autoCreateTime;column:teen_created_at" json:"teen_created_at"`
	TeenUpdatedAt      time.Time  `gorm:"type:timestamptz;not null;autoUpdateTime;column:teen_updated_at" json:"teen_updated_at"`
}

func (TeenModel) TableName() string { return "teens" }

// FullName joins first and last, skipping blanks.
func (t *TeenModel) FullName() string {
	switch {
	case t.TeenFirstName == "" && t.TeenLastName == "":
		return ""
	case t.TeenFirstName == "":
		return t.TeenLastName
	case t.TeenLastName == "":
		return t.TeenFirstName
	}
	return t.TeenFirstName + " " + t.TeenLastName
}
