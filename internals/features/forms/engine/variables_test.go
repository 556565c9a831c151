// file: internals/features/forms/engine/variables_test.go
package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	eventModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/events/model"
	teenModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/model"
)

func TestResolveText_NoTokensUnchanged(t *testing.T) {
	text := "Please read and sign below."
	assert.Equal(t, text, ResolveText(text, map[string]string{"parentName": "x"}, nil))
}

func TestResolveText_UnknownTokenResolvesEmpty(t *testing.T) {
	assert.Equal(t, "Hello ", ResolveText("Hello $unknownToken", map[string]string{}, nil))
}

func TestResolveText_LiteralDollarPassesThrough(t *testing.T) {
	assert.Equal(t, "Fee: $20", ResolveText("Fee: $20", map[string]string{}, nil))
	assert.Equal(t, "$ alone", ResolveText("$ alone", map[string]string{}, nil))
}

func TestResolveText_OverrideWinsOverAttribute(t *testing.T) {
	attrs := map[string]string{"parentName": "Pat Smith"}
	overrides := map[string]string{"parentName": "Chris Jones"}

	assert.Equal(t, "Chris Jones", ResolveText("$parentName", attrs, overrides))

	// empty override falls back to the attribute
	assert.Equal(t, "Pat Smith", ResolveText("$parentName", attrs, map[string]string{"parentName": ""}))
}

func TestResolveText_Idempotent(t *testing.T) {
	attrs := map[string]string{"studentName": "Alex Doe"}
	once := ResolveText("I, $studentName, agree.", attrs, nil)
	assert.Equal(t, once, ResolveText(once, attrs, nil))
}

func TestExtractOverrides(t *testing.T) {
	data := map[string]interface{}{
		"field1": "x",
		VarsKey: map[string]interface{}{
			"parentName": "Pat",
			"badValue":   42,
		},
	}
	out := ExtractOverrides(data)
	assert.Equal(t, "Pat", out["parentName"])
	_, hasBad := out["badValue"]
	assert.False(t, hasBad)

	assert.Empty(t, ExtractOverrides(map[string]interface{}{}))
}

func TestBuildTeenVariables(t *testing.T) {
	email := "alex@example.com"
	parent := "Pat Doe"
	teen := &teenModel.TeenModel{
		TeenFirstName:  "Alex",
		TeenLastName:   "Doe",
		TeenDOB:        time.Date(2010, 3, 14, 0, 0, 0, 0, time.UTC),
		TeenEmail:      &email,
		TeenParentName: &parent,
	}

	attrs := BuildTeenVariables(teen, nil)
	assert.Equal(t, "Alex Doe", attrs["studentName"])
	assert.Equal(t, "alex@example.com", attrs["studentEmail"])
	assert.Equal(t, "Pat Doe", attrs["parentName"])
	assert.Equal(t, "2010-03-14", attrs["dob"])

	// no event context: event tokens resolve empty, not missing
	assert.Equal(t, "", attrs["eventName"])

	start := time.Date(2026, 6, 5, 18, 0, 0, 0, time.UTC)
	location := "Parish Hall"
	attrs = BuildTeenVariables(teen, &eventModel.EventModel{
		EventName:     "Summer Retreat",
		EventStartAt:  &start,
		EventLocation: &location,
	})
	assert.Equal(t, "Summer Retreat", attrs["eventName"])
	assert.Equal(t, "June 5, 2026", attrs["eventDate"])
	assert.Equal(t, "Parish Hall", attrs["eventLocation"])
}
