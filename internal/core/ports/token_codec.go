package ports

import "github.com/pawprint/cattery-api/internal/core/domain"

// TokenCodec signs and verifies the compact claim set carried by bearer
// tokens. Verify fails with domain.ErrInvalidToken on bad signature,
// malformed structure, or expiry.
type TokenCodec interface {
	Issue(p domain.Principal) (string, error)
	Verify(token string) (domain.Principal, error)
}
