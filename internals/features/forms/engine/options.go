// file: internals/features/forms/engine/options.go
package engine

import (
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

// FieldOptions is the stored option container for choice fields.
type FieldOptions struct {
	Options    []string `json:"options"`
	AllowOther bool     `json:"allowOther"`
}

// ParseOptionInput accepts either a list of strings or one delimited
// string (newline or comma separated); entries are trimmed and blanks
// dropped.
func ParseOptionInput(raw interface{}) []string {
	var parts []string
	switch t := raw.(type) {
	case nil:
		return nil
	case []string:
		parts = t
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	case string:
		parts = strings.FieldsFunc(t, func(r rune) bool {
			return r == '\n' || r == ','
		})
	default:
		return nil
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// BuildOptionsJSON persists a container only when there is something in
// it; empty option sets without allowOther store NULL.
func BuildOptionsJSON(options []string, allowOther bool) datatypes.JSON {
	if len(options) == 0 && !allowOther {
		return nil
	}
	raw, err := sonic.Marshal(FieldOptions{Options: options, AllowOther: allowOther})
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// DecodeOptions reads the stored container back; NULL decodes to nil.
func DecodeOptions(raw datatypes.JSON) *FieldOptions {
	if len(raw) == 0 {
		return nil
	}
	var opts FieldOptions
	if err := sonic.Unmarshal(raw, &opts); err != nil {
		return nil
	}
	return &opts
}
