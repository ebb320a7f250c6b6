package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrUserNotFound,
		ErrInvalidCredentials,
		ErrUserExists,
		ErrRegionNotFound,
		ErrRegionExists,
		ErrRegionRequired,
		ErrRegionForbidden,
		ErrRoleNotAllowed,
		ErrOTPInvalid,
		ErrTokenInvalid,
		ErrTokenExpired,
		ErrTokenMalformed,
		ErrTokenRevoked,
		ErrSessionNotFound,
		ErrUnauthorized,
		ErrInsufficientRole,
	}

	seen := make(map[string]bool, len(sentinels))
	for _, err := range sentinels {
		if err == nil {
			t.Fatal("sentinel error is nil")
		}
		if seen[err.Error()] {
			t.Errorf("duplicate sentinel message: %q", err.Error())
		}
		seen[err.Error()] = true
	}
}

func TestSentinelErrors_WrappingPreservesIdentity(t *testing.T) {
	wrapped := fmt.Errorf("failed to create user: %w", ErrUserExists)

	if !errors.Is(wrapped, ErrUserExists) {
		t.Error("wrapped error should match ErrUserExists via errors.Is")
	}
	if errors.Is(wrapped, ErrUserNotFound) {
		t.Error("wrapped error should not match an unrelated sentinel")
	}
}
