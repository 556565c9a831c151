// file: internals/features/forms/engine/fields_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textField(id, typ string, required bool) FieldSpec {
	return FieldSpec{ID: id, Label: "Field " + id, Type: typ, Required: required}
}

func TestValidateSubmission_RequiredText(t *testing.T) {
	fields := []FieldSpec{textField("f1", TypeShortText, true)}

	err := ValidateSubmission(fields, map[string]interface{}{})
	require.Error(t, err)
	fe, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, CodeRequiredMissing, fe.Code)

	err = ValidateSubmission(fields, map[string]interface{}{"f1": "hello"})
	assert.NoError(t, err)
}

func TestValidateSubmission_OptionalBlankPasses(t *testing.T) {
	fields := []FieldSpec{
		textField("f1", TypeShortText, false),
		textField("f2", TypeNumber, false),
		textField("f3", TypeDate, false),
	}
	assert.NoError(t, ValidateSubmission(fields, map[string]interface{}{}))
}

func TestValidateSubmission_SectionNeverRequired(t *testing.T) {
	fields := []FieldSpec{textField("s1", TypeSection, true)}
	assert.NoError(t, ValidateSubmission(fields, map[string]interface{}{}))
}

func TestValidateSubmission_EmailCheckedEvenWhenOptional(t *testing.T) {
	fields := []FieldSpec{textField("email", TypeEmail, false)}

	err := ValidateSubmission(fields, map[string]interface{}{"email": "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidEmail, err.(*FieldError).Code)

	assert.NoError(t, ValidateSubmission(fields, map[string]interface{}{"email": "kid@example.com"}))
	assert.NoError(t, ValidateSubmission(fields, map[string]interface{}{"email": ""}))
}

func TestValidateSubmission_PhoneNormalized(t *testing.T) {
	fields := []FieldSpec{textField("phone", TypePhone, false)}

	data := map[string]interface{}{"phone": "555-123-4567"}
	require.NoError(t, ValidateSubmission(fields, data))
	assert.Equal(t, "(555)123-4567", data["phone"])

	err := ValidateSubmission(fields, map[string]interface{}{"phone": "555-123-456"})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidPhone, err.(*FieldError).Code)
}

func TestValidateSubmission_Checkbox(t *testing.T) {
	plain := []FieldSpec{textField("cb", TypeCheckbox, true)}

	err := ValidateSubmission(plain, map[string]interface{}{"cb": false})
	require.Error(t, err)
	assert.Equal(t, CodeRequiredMissing, err.(*FieldError).Code)

	assert.NoError(t, ValidateSubmission(plain, map[string]interface{}{"cb": true}))

	withOptions := []FieldSpec{{
		ID: "cb2", Label: "Days", Type: TypeCheckbox, Required: true,
		Options: &FieldOptions{Options: []string{"Mon", "Tue"}},
	}}
	err = ValidateSubmission(withOptions, map[string]interface{}{"cb2": []interface{}{}})
	require.Error(t, err)
	assert.NoError(t, ValidateSubmission(withOptions, map[string]interface{}{"cb2": []interface{}{"Mon"}}))
}

func TestValidateSubmission_SelectOther(t *testing.T) {
	field := FieldSpec{
		ID: "size", Label: "Shirt size", Type: TypeSelect, Required: true,
		Options: &FieldOptions{Options: []string{"S", "M"}, AllowOther: true},
	}
	fields := []FieldSpec{field}

	// sentinel with side text validates
	data := map[string]interface{}{
		"size":        OtherSentinel,
		"size__other": "XL",
	}
	assert.NoError(t, ValidateSubmission(fields, data))
	assert.Equal(t, "XL", DisplayValue(field, data))

	// sentinel without side text is rejected
	err := ValidateSubmission(fields, map[string]interface{}{"size": OtherSentinel})
	require.Error(t, err)
	assert.Equal(t, CodeRequiredMissing, err.(*FieldError).Code)

	// sentinel on a field that does not allow other
	noOther := field
	noOther.Options = &FieldOptions{Options: []string{"S", "M"}}
	err = ValidateSubmission([]FieldSpec{noOther}, map[string]interface{}{
		"size": OtherSentinel, "size__other": "XL",
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidValue, err.(*FieldError).Code)
}

func TestValidateSubmission_MultiSelectOther(t *testing.T) {
	field := FieldSpec{
		ID: "allergies", Label: "Allergies", Type: TypeMultiSelect, Required: false,
		Options: &FieldOptions{Options: []string{"Peanuts", "Dairy"}, AllowOther: true},
	}
	fields := []FieldSpec{field}

	data := map[string]interface{}{
		"allergies":        []interface{}{"Peanuts", OtherSentinel},
		"allergies__other": "Shellfish",
	}
	require.NoError(t, ValidateSubmission(fields, data))
	assert.Equal(t, "Peanuts, Shellfish", DisplayValue(field, data))
}

func TestValidateSubmission_Signature(t *testing.T) {
	field := textField("sig", TypeSignature, true)
	fields := []FieldSpec{field}

	assert.NoError(t, ValidateSubmission(fields, map[string]interface{}{
		"sig": map[string]interface{}{"mode": "type", "value": "Jane Parent"},
	}))
	assert.NoError(t, ValidateSubmission(fields, map[string]interface{}{
		"sig": map[string]interface{}{"mode": "draw", "dataUrl": "data:image/png;base64,AAAA"},
	}))

	err := ValidateSubmission(fields, map[string]interface{}{
		"sig": map[string]interface{}{"mode": "type", "value": "  "},
	})
	require.Error(t, err)
	assert.Equal(t, CodeRequiredMissing, err.(*FieldError).Code)

	err = ValidateSubmission(fields, map[string]interface{}{
		"sig": map[string]interface{}{"mode": "stamp"},
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidSignature, err.(*FieldError).Code)

	err = ValidateSubmission(fields, map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, CodeRequiredMissing, err.(*FieldError).Code)
}

func TestDisplayValue_Basics(t *testing.T) {
	cb := textField("cb", TypeCheckbox, false)
	assert.Equal(t, "Yes", DisplayValue(cb, map[string]interface{}{"cb": true}))
	assert.Equal(t, "No", DisplayValue(cb, map[string]interface{}{"cb": false}))

	sig := textField("sig", TypeSignature, false)
	assert.Equal(t, "Jane Parent", DisplayValue(sig, map[string]interface{}{
		"sig": map[string]interface{}{"mode": "type", "value": "Jane Parent"},
	}))
	assert.Equal(t, "[signed]", DisplayValue(sig, map[string]interface{}{
		"sig": map[string]interface{}{"mode": "draw", "dataUrl": "data:..."},
	}))
}
