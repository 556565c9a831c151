// file: internals/features/forms/engine/fields.go
package engine

import (
	"fmt"
	"strings"

	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

/* =========================================================
   Field types — closed set, dispatched through one table
========================================================= */

const (
	TypeSection     = "SECTION"
	TypeShortText   = "SHORT_TEXT"
	TypeLongText    = "LONG_TEXT"
	TypeNumber      = "NUMBER"
	TypeDate        = "DATE"
	TypeEmail       = "EMAIL"
	TypePhone       = "PHONE"
	TypeCheckbox    = "CHECKBOX"
	TypeSelect      = "SELECT"
	TypeMultiSelect = "MULTI_SELECT"
	TypeSignature   = "SIGNATURE"
)

// Wire conventions shared with submitted payloads.
const (
	OtherSentinel = "__other__"
	VarsKey       = "__vars__"
)

// OtherKey is the side key carrying free text when the Other option is chosen.
func OtherKey(fieldID string) string { return fieldID + "__other" }

func IsFieldType(t string) bool {
	_, ok := fieldHandlers[t]
	return ok
}

// FieldSpec is the slice of a stored field the validator needs.
type FieldSpec struct {
	ID       string
	Label    string
	Type     string
	Required bool
	Options  *FieldOptions
}

/* =========================================================
   Validation errors
========================================================= */

const (
	CodeRequiredMissing  = "RequiredMissing"
	CodeInvalidEmail     = "InvalidEmail"
	CodeInvalidPhone     = "InvalidPhone"
	CodeInvalidValue     = "InvalidValue"
	CodeInvalidSignature = "InvalidSignature"
)

type FieldError struct {
	FieldID string
	Label   string
	Code    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Label, e.Message)
}

func fieldErr(f FieldSpec, code, msg string) *FieldError {
	return &FieldError{FieldID: f.ID, Label: f.Label, Code: code, Message: msg}
}

/* =========================================================
   Dispatch table
========================================================= */

// A handler validates the raw submitted value and returns the normalized
// form to persist. data is the whole payload so handlers can reach side
// keys like "{fieldId}__other".
type fieldHandler func(f FieldSpec, raw interface{}, data map[string]interface{}) (interface{}, error)

var fieldHandlers = map[string]fieldHandler{
	TypeSection:     validateSection,
	TypeShortText:   validateText,
	TypeLongText:    validateText,
	TypeNumber:      validateText,
	TypeDate:        validateText,
	TypeEmail:       validateEmail,
	TypePhone:       validatePhone,
	TypeCheckbox:    validateCheckbox,
	TypeSelect:      validateSelect,
	TypeMultiSelect: validateMultiSelect,
	TypeSignature:   validateSignature,
}

// ValidateSubmission checks every field's value against its type and
// writes normalized values (phone formatting) back into data. The first
// failing field aborts; data is mutated only for values that validated.
func ValidateSubmission(fields []FieldSpec, data map[string]interface{}) error {
	for _, f := range fields {
		handler, ok := fieldHandlers[f.Type]
		if !ok {
			return fieldErr(f, CodeInvalidValue, "unknown field type "+f.Type)
		}
		normalized, err := handler(f, data[f.ID], data)
		if err != nil {
			return err
		}
		if normalized != nil {
			data[f.ID] = normalized
		}
	}
	return nil
}

/* =========================================================
   Per-type handlers
========================================================= */

func validateSection(FieldSpec, interface{}, map[string]interface{}) (interface{}, error) {
	// display-only
	return nil, nil
}

func validateText(f FieldSpec, raw interface{}, _ map[string]interface{}) (interface{}, error) {
	s := asString(raw)
	if strings.TrimSpace(s) == "" {
		if f.Required {
			return nil, fieldErr(f, CodeRequiredMissing, "a value is required")
		}
		return nil, nil
	}
	return s, nil
}

// Email and phone are checked whenever a value is present, required or not.
func validateEmail(f FieldSpec, raw interface{}, _ map[string]interface{}) (interface{}, error) {
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		if f.Required {
			return nil, fieldErr(f, CodeRequiredMissing, "a value is required")
		}
		return nil, nil
	}
	if !helper.IsValidEmail(s) {
		return nil, fieldErr(f, CodeInvalidEmail, "not a valid email address")
	}
	return s, nil
}

func validatePhone(f FieldSpec, raw interface{}, _ map[string]interface{}) (interface{}, error) {
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		if f.Required {
			return nil, fieldErr(f, CodeRequiredMissing, "a value is required")
		}
		return nil, nil
	}
	formatted, ok := helper.FormatUSPhone(s)
	if !ok {
		return nil, fieldErr(f, CodeInvalidPhone, "phone number must have 10 digits")
	}
	return formatted, nil
}

func validateCheckbox(f FieldSpec, raw interface{}, data map[string]interface{}) (interface{}, error) {
	if f.Options != nil && len(f.Options.Options) > 0 {
		// option-list checkbox behaves like a multi-select
		return validateMultiSelect(f, raw, data)
	}
	checked, _ := raw.(bool)
	if f.Required && !checked {
		return nil, fieldErr(f, CodeRequiredMissing, "must be checked")
	}
	return raw, nil
}

func validateSelect(f FieldSpec, raw interface{}, data map[string]interface{}) (interface{}, error) {
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		if f.Required {
			return nil, fieldErr(f, CodeRequiredMissing, "a selection is required")
		}
		return nil, nil
	}
	if s == OtherSentinel {
		if err := checkOtherText(f, data); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func validateMultiSelect(f FieldSpec, raw interface{}, data map[string]interface{}) (interface{}, error) {
	selected := asStringSlice(raw)
	if len(selected) == 0 {
		if f.Required {
			return nil, fieldErr(f, CodeRequiredMissing, "at least one selection is required")
		}
		return nil, nil
	}
	for _, s := range selected {
		if s == OtherSentinel {
			if err := checkOtherText(f, data); err != nil {
				return nil, err
			}
		}
	}
	return selected, nil
}

func checkOtherText(f FieldSpec, data map[string]interface{}) error {
	if f.Options == nil || !f.Options.AllowOther {
		return fieldErr(f, CodeInvalidValue, "this field does not accept other values")
	}
	if strings.TrimSpace(asString(data[OtherKey(f.ID)])) == "" {
		return fieldErr(f, CodeRequiredMissing, "please describe the other value")
	}
	return nil
}

func validateSignature(f FieldSpec, raw interface{}, _ map[string]interface{}) (interface{}, error) {
	sig, ok := raw.(map[string]interface{})
	if !ok || len(sig) == 0 {
		if f.Required {
			return nil, fieldErr(f, CodeRequiredMissing, "a signature is required")
		}
		return nil, nil
	}
	switch asString(sig["mode"]) {
	case "type":
		if f.Required && strings.TrimSpace(asString(sig["value"])) == "" {
			return nil, fieldErr(f, CodeRequiredMissing, "a signature is required")
		}
	case "draw":
		if f.Required && strings.TrimSpace(asString(sig["dataUrl"])) == "" {
			return nil, fieldErr(f, CodeRequiredMissing, "a signature is required")
		}
	default:
		return nil, fieldErr(f, CodeInvalidSignature, "unrecognized signature mode")
	}
	return raw, nil
}

/* =========================================================
   loose-typed helpers for decoded JSON values
========================================================= */

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", t), "0"), ".")
	case nil:
		return ""
	default:
		return ""
	}
}

func asStringSlice(v interface{}) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
