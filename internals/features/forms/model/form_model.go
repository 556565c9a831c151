// file: internals/features/forms/model/form_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   Form templates
========================================================= */

const (
	FormStatusActive   = "ACTIVE"
	FormStatusArchived = "ARCHIVED"
)

const (
	FormCategoryGeneral = "GENERAL"
	FormCategoryRelease = "RELEASE"
	FormCategoryEvent   = "EVENT"
	FormCategoryMedical = "MEDICAL"
)

var FormCategories = []string{
	FormCategoryGeneral,
	FormCategoryRelease,
	FormCategoryEvent,
	FormCategoryMedical,
}

func IsFormCategory(s string) bool {
	for _, v := range FormCategories {
		if v == s {
			return true
		}
	}
	return false
}

// Validity units for relative expiration.
const (
	ValidForDays   = "DAYS"
	ValidForMonths = "MONTHS"
	ValidForYears  = "YEARS"
)

func IsValidForUnit(s string) bool {
	return s == ValidForDays || s == ValidForMonths || s == ValidForYears
}

type FormModel struct {
	FormID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:form_id" json:"form_id"`

	FormName        string  `gorm:"type:varchar(160);not null;column:form_name"       json:"form_name"`
	FormDescription *string `gorm:"type:text;column:form_description"                 json:"form_description,omitempty"`
	FormCategory    string  `gorm:"type:varchar(20);not null;default:'GENERAL';column:form_category" json:"form_category"`
	FormStatus      string  `gorm:"type:varchar(20);not null;default:'ACTIVE';index;column:form_status" json:"form_status"`

	// Expiration: a fixed date wins over the relative window.
	FormValidForValue *int       `gorm:"column:form_valid_for_value"                    json:"form_valid_for_value,omitempty"`
	FormValidForUnit  *string    `gorm:"type:varchar(10);column:form_valid_for_unit"    json:"form_valid_for_unit,omitempty"`
	FormValidUntil    *time.Time `gorm:"type:timestamptz;column:form_valid_until"       json:"form_valid_until,omitempty"`

	FormCreatedBy *uuid.UUID `gorm:"type:uuid;column:form_created_by" json:"form_created_by,omitempty"`

	FormCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:form_created_at" json:"form_created_at"`
	FormUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:form_updated_at" json:"form_updated_at"`

	Fields []FormFieldModel `gorm:"foreignKey:FieldFormID;references:FormID" json:"fields,omitempty"`
}

func (FormModel) TableName() string { return "forms" }

/* =========================================================
   Form fields
========================================================= */

type FormFieldModel struct {
	FieldID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:field_id" json:"field_id"`
	FieldFormID uuid.UUID `gorm:"type:uuid;not null;index;column:field_form_id"                  json:"field_form_id"`

	FieldLabel    string  `gorm:"type:varchar(240);not null;column:field_label" json:"field_label"`
	FieldType     string  `gorm:"type:varchar(20);not null;column:field_type"   json:"field_type"`
	FieldRequired bool    `gorm:"not null;default:false;column:field_required"  json:"field_required"`
	FieldHelpText *string `gorm:"type:text;column:field_help_text"              json:"field_help_text,omitempty"`

	// {"options": [...], "allowOther": bool}, only for choice fields
	FieldOptionsJSON datatypes.JSON `gorm:"column:field_options_json" json:"field_options_json,omitempty"`

	FieldOrder int `gorm:"not null;default:0;column:field_order" json:"field_order"`

	// Archived fields stay on record so old submissions still resolve.
	FieldArchivedAt *time.Time `gorm:"type:timestamptz;column:field_archived_at" json:"field_archived_at,omitempty"`

	FieldCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:field_created_at" json:"field_created_at"`
	FieldUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:field_updated_at" json:"field_updated_at"`
}

func (FormFieldModel) TableName() string { return "form_fields" }
