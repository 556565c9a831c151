// file: internals/features/forms/engine/expiry_test.go
package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestResolveExpiration_NoPolicy(t *testing.T) {
	assert.Nil(t, ResolveExpiration(time.Now(), ValidityPolicy{}))
}

func TestResolveExpiration_FixedDateWins(t *testing.T) {
	until := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	submitted := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := ResolveExpiration(submitted, ValidityPolicy{
		ValidForValue: intPtr(30),
		ValidForUnit:  strPtr("DAYS"),
		ValidUntil:    &until,
	})
	require.NotNil(t, got)
	assert.Equal(t, until, *got)
}

func TestResolveExpiration_Days(t *testing.T) {
	submitted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got := ResolveExpiration(submitted, ValidityPolicy{
		ValidForValue: intPtr(30),
		ValidForUnit:  strPtr("DAYS"),
	})
	require.NotNil(t, got)
	assert.Equal(t, submitted.AddDate(0, 0, 30), *got)
}

func TestResolveExpiration_MonthRollover(t *testing.T) {
	// Jan 31 + 1 month normalizes past February's end
	submitted := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	got := ResolveExpiration(submitted, ValidityPolicy{
		ValidForValue: intPtr(1),
		ValidForUnit:  strPtr("MONTHS"),
	})
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), *got)
}

func TestResolveExpiration_Years(t *testing.T) {
	submitted := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	got := ResolveExpiration(submitted, ValidityPolicy{
		ValidForValue: intPtr(2),
		ValidForUnit:  strPtr("YEARS"),
	})
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2027, 6, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestResolveExpiration_BadInputs(t *testing.T) {
	now := time.Now()
	assert.Nil(t, ResolveExpiration(now, ValidityPolicy{ValidForValue: intPtr(0), ValidForUnit: strPtr("DAYS")}))
	assert.Nil(t, ResolveExpiration(now, ValidityPolicy{ValidForValue: intPtr(5), ValidForUnit: strPtr("WEEKS")}))
	assert.Nil(t, ResolveExpiration(now, ValidityPolicy{ValidForValue: intPtr(5)}))
}
