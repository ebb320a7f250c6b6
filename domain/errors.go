package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

// Registration errors
var (
	ErrRegionNotFound  = errors.New("region not found")
	ErrRegionExists    = errors.New("region already exists")
	ErrRegionRequired  = errors.New("region reference is required for this role")
	ErrRegionForbidden = errors.New("region reference is not allowed for this role")
	ErrRoleNotAllowed  = errors.New("role not allowed for this operation")
)

// OTP errors
var (
	ErrOTPInvalid = errors.New("invalid otp code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenRevoked   = errors.New("token has been revoked")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)
