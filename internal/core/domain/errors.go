package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrCatNotFound    = errors.New("cat not found")
	ErrBreedNotFound  = errors.New("breed not found")
	ErrBreedExists    = errors.New("breed already exists")
	ErrClientNotFound = errors.New("client not found")
)
