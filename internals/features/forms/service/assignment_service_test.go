// file: internals/features/forms/service/assignment_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecideReassign_NoPrior(t *testing.T) {
	archive, err := DecideReassign(false, false, nil, false, time.Now())
	assert.NoError(t, err)
	assert.False(t, archive)
}

func TestDecideReassign_ExpiredAlwaysRenewable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	archive, err := DecideReassign(true, true, &past, false, now)
	assert.NoError(t, err)
	assert.True(t, archive)
}

func TestDecideReassign_LiveNeedsForce(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)

	// pending, no flag
	_, err := DecideReassign(true, false, nil, false, now)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	// completed but unexpired, no flag
	_, err = DecideReassign(true, true, &future, false, now)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	// completed, never expires, no flag
	_, err = DecideReassign(true, true, nil, false, now)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	// the flag forces a redo in every live case
	for _, exp := range []*time.Time{nil, &future} {
		archive, err := DecideReassign(true, true, exp, true, now)
		assert.NoError(t, err)
		assert.True(t, archive)
	}
	archive, err := DecideReassign(true, false, nil, true, now)
	assert.NoError(t, err)
	assert.True(t, archive)
}
