package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSPhone(t *testing.T) {
	got, ok := FormatUSPhone("5551234567")
	assert.True(t, ok)
	assert.Equal(t, "(555)123-4567", got)

	// separators are stripped before counting digits
	got, ok = FormatUSPhone("555-123-4567")
	assert.True(t, ok)
	assert.Equal(t, "(555)123-4567", got)

	got, ok = FormatUSPhone("(555) 123 4567")
	assert.True(t, ok)
	assert.Equal(t, "(555)123-4567", got)

	// nine digits is not a phone number
	_, ok = FormatUSPhone("555-123-456")
	assert.False(t, ok)

	_, ok = FormatUSPhone("55512345678")
	assert.False(t, ok)

	_, ok = FormatUSPhone("")
	assert.False(t, ok)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("parent@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.org"))

	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("spaces in@example.com"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestGeneratePublicID(t *testing.T) {
	id := GeneratePublicID("T", 6)
	assert.True(t, strings.HasPrefix(id, "T-"))
	assert.Len(t, id, 8)
	for _, r := range id[2:] {
		assert.Contains(t, publicIDAlphabet, string(r))
	}

	// default length kicks in for nonsense input
	assert.Len(t, GeneratePublicID("T", 0), 8)
}

func TestToOptional(t *testing.T) {
	assert.Nil(t, ToOptional("   "))
	v := ToOptional("  St. Mary  ")
	assert.NotNil(t, v)
	assert.Equal(t, "St. Mary", *v)
}
