package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdultCutoff(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	cutoff := AdultCutoff(now)

	assert.Equal(t, time.Date(2008, time.March, 15, 12, 0, 0, 0, time.UTC), cutoff)

	// born exactly 18 years ago -> archived
	bornOnCutoff := cutoff
	assert.False(t, bornOnCutoff.After(cutoff))

	// born a day later -> still 17, stays active
	seventeen := cutoff.AddDate(0, 0, 1)
	assert.True(t, seventeen.After(cutoff))
}

func TestIsRegistrationStatus(t *testing.T) {
	assert.True(t, IsRegistrationStatus(RegistrationComplete))
	assert.True(t, IsRegistrationStatus(RegistrationPendingParentVerification))
	assert.False(t, IsRegistrationStatus("ARCHIVED"))
	assert.False(t, IsRegistrationStatus(""))
}

func TestFullName(t *testing.T) {
	teen := TeenModel{TeenFirstName: "Avery", TeenLastName: "Nolan"}
	assert.Equal(t, "Avery Nolan", teen.FullName())

	only := TeenModel{TeenFirstName: "Avery"}
	assert.Equal(t, "Avery", only.FullName())

	assert.Equal(t, "", (&TeenModel{}).FullName())
}
