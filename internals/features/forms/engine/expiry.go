// file: internals/features/forms/engine/expiry.go
package engine

import "time"

// ValidityPolicy mirrors the template's expiration settings. A fixed
// until-date wins over the relative window; neither means no expiry.
type ValidityPolicy struct {
	ValidForValue *int
	ValidForUnit  *string
	ValidUntil    *time.Time
}

// ResolveExpiration derives a submission's expiry timestamp.
// Month and year windows use calendar arithmetic, so Jan 31 + 1 month
// rolls into early March the way time.AddDate normalizes.
func ResolveExpiration(submittedAt time.Time, policy ValidityPolicy) *time.Time {
	if policy.ValidUntil != nil {
		until := *policy.ValidUntil
		return &until
	}
	if policy.ValidForValue == nil || policy.ValidForUnit == nil || *policy.ValidForValue <= 0 {
		return nil
	}

	var expires time.Time
	switch *policy.ValidForUnit {
	case "DAYS":
		expires = submittedAt.AddDate(0, 0, *policy.ValidForValue)
	case "MONTHS":
		expires = submittedAt.AddDate(0, *policy.ValidForValue, 0)
	case "YEARS":
		expires = submittedAt.AddDate(*policy.ValidForValue, 0, 0)
	default:
		return nil
	}
	return &expires
}
