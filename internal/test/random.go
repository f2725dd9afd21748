package test

import (
	"math/rand/v2"
	"strings"
)

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	lowercase    = "abcdefghijklmnopqrstuvwxyz"
)

// RandomASCIIString returns a pseudo-random alphanumeric string of length
// within [minLen, maxLen]. Lengths below one are raised to one.
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(alphanumeric, minLen, maxLen)
}

// RandomEmail returns a lowercase address that passes login validation.
func RandomEmail() string {
	return randomFrom(lowercase, 5, 12) + "@" + randomFrom(lowercase, 3, 8) + ".test"
}

// RandomPhone returns a digits-only phone number.
func RandomPhone() string {
	var b strings.Builder
	b.WriteByte('+')
	for range 11 {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + rand.IntN(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
