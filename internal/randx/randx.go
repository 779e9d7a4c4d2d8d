// Package randx provides the small randomness helpers shared by the captcha
// and chat packages. None of this is cryptographic; the consumers only need
// unpredictable-looking variety.
package randx

import (
	"math/rand"
	"time"
)

// String returns n characters drawn uniformly from charset.
func String(charset string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// Pick returns a uniformly random element of items.
func Pick[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

// Jitter returns a random duration in [0, d). A non-positive d yields zero.
func Jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(d)))
}
