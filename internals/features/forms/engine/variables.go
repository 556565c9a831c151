// file: internals/features/forms/engine/variables.go
package engine

import (
	"regexp"
	"strings"

	eventModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/events/model"
	teenModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/model"
)

// A token is "$" followed by a letter then any run of word characters.
// A bare "$" or "$2" is not a token and passes through untouched.
var tokenPattern = regexp.MustCompile(`\$([a-zA-Z]\w*)`)

// ResolveText substitutes every token in text. Precedence per token:
// submission override, then the attribute map, then empty string.
// Pure and idempotent for a fixed pair of maps.
func ResolveText(text string, attrs map[string]string, overrides map[string]string) string {
	if !strings.ContainsRune(text, '$') {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := match[1:]
		if v, ok := overrides[key]; ok && v != "" {
			return v
		}
		return attrs[key]
	})
}

// ExtractOverrides pulls the reserved "__vars__" sub-map out of a
// submitted payload. Missing or malformed entries yield an empty map.
func ExtractOverrides(data map[string]interface{}) map[string]string {
	out := map[string]string{}
	raw, ok := data[VarsKey].(map[string]interface{})
	if !ok {
		return out
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// BuildTeenVariables flattens a teen (and optional event context) into
// the attribute map the resolver draws from. Event tokens resolve empty
// when no event is linked.
func BuildTeenVariables(teen *teenModel.TeenModel, event *eventModel.EventModel) map[string]string {
	attrs := map[string]string{}
	if teen != nil {
		attrs["studentName"] = teen.FullName()
		attrs["studentFirstName"] = teen.TeenFirstName
		attrs["studentLastName"] = teen.TeenLastName
		attrs["studentEmail"] = deref(teen.TeenEmail)
		attrs["studentPhone"] = deref(teen.TeenPhone)
		attrs["dob"] = teen.TeenDOB.Format("2006-01-02")
		attrs["addressLine1"] = deref(teen.TeenAddressLine1)
		attrs["addressLine2"] = deref(teen.TeenAddressLine2)
		attrs["city"] = deref(teen.TeenCity)
		attrs["state"] = deref(teen.TeenState)
		attrs["postalCode"] = deref(teen.TeenPostalCode)
		attrs["parish"] = deref(teen.TeenParish)
		attrs["emergencyContactName"] = deref(teen.TeenEmergencyContactName)
		attrs["emergencyContactPhone"] = deref(teen.TeenEmergencyContactPhone)
		attrs["parentName"] = deref(teen.TeenParentName)
		attrs["parentEmail"] = deref(teen.TeenParentEmail)
		attrs["parentPhone"] = deref(teen.TeenParentPhone)
		attrs["parentRelationship"] = deref(teen.TeenParentRelationship)
	}

	attrs["eventName"] = ""
	attrs["eventDate"] = ""
	attrs["eventLocation"] = ""
	if event != nil {
		attrs["eventName"] = event.EventName
		if event.EventStartAt != nil {
			attrs["eventDate"] = event.EventStartAt.Format("January 2, 2006")
		}
		attrs["eventLocation"] = deref(event.EventLocation)
	}
	return attrs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
