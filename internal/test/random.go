package test

import (
	"math/rand/v2"
	"strings"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns an alphanumeric string of length n, at least one character.
func RandomString(n int) string {
	if n <= 0 {
		n = 1
	}
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(asciiLetters[rand.IntN(len(asciiLetters))])
	}
	return b.String()
}

// RandomEmail returns a unique-looking lower case client address.
func RandomEmail() string {
	return strings.ToLower(RandomString(5+rand.IntN(6))) + "@example.com"
}

// RandomPassword returns a password long enough to pass registration checks.
func RandomPassword() string {
	return RandomString(16 + rand.IntN(17))
}
