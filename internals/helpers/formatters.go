package helper

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(value string) bool {
	return emailRe.MatchString(value)
}

// FormatUSPhone strips non-digits and renders the fixed display format
// "(AAA)PPP-LLLL". Anything other than exactly 10 digits is rejected.
func FormatUSPhone(value string) (string, bool) {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 10 {
		return "", false
	}
	return "(" + digits[0:3] + ")" + digits[3:6] + "-" + digits[6:10], true
}

// TrimPtr trims a string pointer; blank becomes nil.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// ToOptional trims and returns nil for blank values, mirroring how
// optional registration fields are stored.
func ToOptional(value string) *string {
	t := strings.TrimSpace(value)
	if t == "" {
		return nil
	}
	return &t
}
