package id

import "crypto/rand"

const (
	chars  = "abcdefghijklmnopqrstuvwxyz0123456789"
	length = 16
	// largest multiple of len(chars) that fits in a byte
	limit = 256 - 256%len(chars)
)

// GenerateID creates a unique 16-character alphanumeric ID. Random bytes
// at or above limit are discarded so each character is equally likely.
func GenerateID() string {
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, chars[int(b)%len(chars)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}
