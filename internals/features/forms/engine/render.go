// file: internals/features/forms/engine/render.go
package engine

import "strings"

// DisplayValue renders one submitted value for a summary or print view.
// The Other sentinel is replaced by its free text, multi selections are
// comma joined, checkboxes read Yes/No.
func DisplayValue(f FieldSpec, data map[string]interface{}) string {
	raw := data[f.ID]

	switch f.Type {
	case TypeSection:
		return ""

	case TypeCheckbox:
		if f.Options != nil && len(f.Options.Options) > 0 {
			return joinSelections(f, asStringSlice(raw), data)
		}
		if checked, _ := raw.(bool); checked {
			return "Yes"
		}
		return "No"

	case TypeSelect:
		s := asString(raw)
		if s == OtherSentinel {
			return strings.TrimSpace(asString(data[OtherKey(f.ID)]))
		}
		return s

	case TypeMultiSelect:
		return joinSelections(f, asStringSlice(raw), data)

	case TypeSignature:
		sig, ok := raw.(map[string]interface{})
		if !ok {
			return ""
		}
		switch asString(sig["mode"]) {
		case "type":
			return asString(sig["value"])
		case "draw":
			if asString(sig["dataUrl"]) != "" {
				return "[signed]"
			}
		}
		return ""

	default:
		return asString(raw)
	}
}

func joinSelections(f FieldSpec, selected []string, data map[string]interface{}) string {
	out := make([]string, 0, len(selected))
	for _, s := range selected {
		if s == OtherSentinel {
			if other := strings.TrimSpace(asString(data[OtherKey(f.ID)])); other != "" {
				out = append(out, other)
			}
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, ", ")
}
