package utils

import "errors"

// Business-rule conflicts. Distinguishable from validation failures.
var (
	ErrDuplicateInvite   = errors.New("user already has a pending invite")
	ErrAlreadyRegistered = errors.New("user is already registered")
	ErrAlreadyApproved   = errors.New("contribution already approved")
)

// ErrInvalidDate reports a date string that failed to parse at the service
// boundary. Request binding normally rejects these before a service sees them.
var ErrInvalidDate = errors.New("invalid date format")

// Token failures. Terminal; a rejected token is never retryable.
var (
	ErrInvalidToken          = errors.New("invalid invite token")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)

// Not-found and credential errors.
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrProfileNotFound      = errors.New("member profile not found")
	ErrContributionNotFound = errors.New("contribution not found")
	ErrSettingNotFound      = errors.New("share setting not found")
)

// Upstream failures. Retryable; full detail goes to the log, not the caller.
var (
	ErrDatabaseError = errors.New("database error")
	ErrUploadFailed  = errors.New("image upload failed")
)
