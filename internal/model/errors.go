package model

import "errors"

var (
	// Credential and session errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenUnknown       = errors.New("token unknown")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserNotFound       = errors.New("user not found")

	// Registration errors
	ErrEmailTaken       = errors.New("email already registered")
	ErrRoleNotPermitted = errors.New("role not permitted")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Handshake errors
	ErrNonceInvalid = errors.New("nonce invalid or expired")

	// Resource errors
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Persistence errors
	ErrStorageIO = errors.New("storage i/o failure")
)
