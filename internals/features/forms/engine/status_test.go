// file: internals/features/forms/engine/status_test.go
package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	past := now.Add(-24 * time.Hour)
	soon := now.Add(3 * 24 * time.Hour)
	far := now.Add(30 * 24 * time.Hour)

	// submitted
	assert.Equal(t, StatusCompleted, DeriveStatus(true, nil, nil, now))
	assert.Equal(t, StatusCompleted, DeriveStatus(true, &far, nil, now))
	assert.Equal(t, StatusExpired, DeriveStatus(true, &past, nil, now))

	// not submitted
	assert.Equal(t, StatusMissing, DeriveStatus(false, nil, nil, now))
	assert.Equal(t, StatusMissing, DeriveStatus(false, nil, &far, now))
	assert.Equal(t, StatusDueSoon, DeriveStatus(false, nil, &soon, now))
	assert.Equal(t, StatusOverdue, DeriveStatus(false, nil, &past, now))
}

func TestDeriveStatus_DueSoonBoundary(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	exactlySeven := now.Add(7 * 24 * time.Hour)
	assert.Equal(t, StatusDueSoon, DeriveStatus(false, nil, &exactlySeven, now))

	overSeven := now.Add(7*24*time.Hour + time.Minute)
	assert.Equal(t, StatusMissing, DeriveStatus(false, nil, &overSeven, now))
}
