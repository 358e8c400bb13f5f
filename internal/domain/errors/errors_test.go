package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"weak password", ErrWeakPassword},
		{"invalid profile", ErrInvalidProfile},
		{"invalid rate mode", ErrInvalidRateMode},
		{"invalid event", ErrInvalidEvent},
		{"invalid email", ErrInvalidEmail},
		{"mail not configured", ErrMailNotConfigured},
		{"upstream", ErrUpstream},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match %v", tc.err)
			}
		})
	}
}
