// file: internals/features/forms/service/template_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/dto"
	"github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/engine"
	formModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

func patchValue[T any](v T) helper.PatchField[T] {
	return helper.PatchField[T]{Present: true, Value: &v}
}

func patchNull[T any]() helper.PatchField[T] {
	return helper.PatchField[T]{Present: true}
}

func relativeForm(value int, unit string) formModel.FormModel {
	return formModel.FormModel{FormValidForValue: &value, FormValidForUnit: &unit}
}

func TestApplyValidityPatch_FixedDateWinsAndClearsWindow(t *testing.T) {
	form := relativeForm(30, formModel.ValidForDays)

	req := formDTO.UpdateFormRequest{ValidUntil: patchValue("2027-01-01")}
	require.NoError(t, applyValidityPatch(&form, req))

	require.NotNil(t, form.FormValidUntil)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), *form.FormValidUntil)
	assert.Nil(t, form.FormValidForValue)
	assert.Nil(t, form.FormValidForUnit)
}

func TestApplyValidityPatch_WindowDisplacesFixedDate(t *testing.T) {
	until := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	form := formModel.FormModel{FormValidUntil: &until}

	req := formDTO.UpdateFormRequest{
		ValidForValue: patchValue(6),
		ValidForUnit:  patchValue(formModel.ValidForMonths),
	}
	require.NoError(t, applyValidityPatch(&form, req))

	assert.Nil(t, form.FormValidUntil)
	require.NotNil(t, form.FormValidForValue)
	assert.Equal(t, 6, *form.FormValidForValue)
	assert.Equal(t, formModel.ValidForMonths, *form.FormValidForUnit)
}

func TestApplyValidityPatch_NullClearsOnlyNamedComponent(t *testing.T) {
	form := relativeForm(30, formModel.ValidForDays)

	req := formDTO.UpdateFormRequest{ValidForValue: patchNull[int]()}
	require.NoError(t, applyValidityPatch(&form, req))

	assert.Nil(t, form.FormValidForValue)
	require.NotNil(t, form.FormValidForUnit)

	// clearing everything yields the never-expires policy
	req = formDTO.UpdateFormRequest{
		ValidForUnit: patchNull[string](),
		ValidUntil:   patchNull[string](),
	}
	require.NoError(t, applyValidityPatch(&form, req))
	assert.Nil(t, form.FormValidForValue)
	assert.Nil(t, form.FormValidForUnit)
	assert.Nil(t, form.FormValidUntil)
}

func TestApplyValidityPatch_AbsentFieldsKeepStored(t *testing.T) {
	form := relativeForm(30, formModel.ValidForDays)

	require.NoError(t, applyValidityPatch(&form, formDTO.UpdateFormRequest{}))
	require.NotNil(t, form.FormValidForValue)
	assert.Equal(t, 30, *form.FormValidForValue)
}

func TestApplyValidityPatch_RejectsBadInput(t *testing.T) {
	form := formModel.FormModel{}

	assert.Error(t, applyValidityPatch(&form, formDTO.UpdateFormRequest{
		ValidForValue: patchValue(0),
	}))
	assert.Error(t, applyValidityPatch(&form, formDTO.UpdateFormRequest{
		ValidForUnit: patchValue("WEEKS"),
	}))
	assert.Error(t, applyValidityPatch(&form, formDTO.UpdateFormRequest{
		ValidUntil: patchValue("not-a-date"),
	}))
}

func TestBuildField_DropsBlankLabelAndUnknownType(t *testing.T) {
	formID := uuid.New()

	_, ok := buildField(formID, formDTO.FieldInput{Label: "   ", Type: engine.TypeShortText}, 0)
	assert.False(t, ok)

	_, ok = buildField(formID, formDTO.FieldInput{Label: "Name", Type: "WIDGET"}, 0)
	assert.False(t, ok)

	field, ok := buildField(formID, formDTO.FieldInput{
		Label:      " Shirt size ",
		Type:       engine.TypeSelect,
		Required:   true,
		Options:    "S, M, L",
		AllowOther: true,
	}, 3)
	require.True(t, ok)
	assert.Equal(t, "Shirt size", field.FieldLabel)
	assert.Equal(t, 3, field.FieldOrder)
	assert.True(t, field.FieldRequired)

	opts := engine.DecodeOptions(field.FieldOptionsJSON)
	require.NotNil(t, opts)
	assert.Equal(t, []string{"S", "M", "L"}, opts.Options)
	assert.True(t, opts.AllowOther)
}

func TestBuildField_SectionNeverRequired(t *testing.T) {
	field, ok := buildField(uuid.New(), formDTO.FieldInput{
		Label:    "Medical info",
		Type:     engine.TypeSection,
		Required: true,
	}, 0)
	require.True(t, ok)
	assert.False(t, field.FieldRequired)
}
