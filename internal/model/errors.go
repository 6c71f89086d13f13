package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Document store errors
	ErrStoreUnavailable = errors.New("document store unavailable")
	ErrStoreWriteFailed = errors.New("document store write failed")
)
