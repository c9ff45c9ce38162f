package application

import "errors"

var (
	// ErrUserNotFound is returned when no user is visible for the
	// requested id or email. Public lookups only see ACTIVE users, so a
	// PENDING account surfaces as not found on purpose.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound is returned when no post matches the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrCertificationSendFailed is returned when the certification mail
	// could not be handed to the notification transport. The signup
	// itself is not rolled back; the PENDING user stays committed.
	ErrCertificationSendFailed = errors.New("failed to send certification mail")
)
