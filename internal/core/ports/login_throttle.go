package ports

import "context"

// LoginThrottle limits repeated failed logins per email.
type LoginThrottle interface {
	// Allow reports whether another login attempt is permitted.
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
