package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// tokenClaims is the signed claim set: the principal's email travels in
// the registered subject, the role in a private claim.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies HS256 bearer tokens. The clock is
// injectable so expiry behaviour can be tested deterministically.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token encoding the principal with an expiry
// ttl from now. Expiry is the only cap on token lifetime; there is no
// revocation mechanism.
func (c *TokenCodec) Issue(p domain.Principal) (string, error) {
	now := c.now().UTC()
	claims := tokenClaims{
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token, returning the embedded principal.
// Any failure (bad signature, malformed structure, expiry, missing or
// unknown claims) collapses to domain.ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (domain.Principal, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil || !parsed.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	if claims.Subject == "" || !domain.ValidRole(claims.Role) {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	return domain.Principal{Email: claims.Subject, Role: claims.Role}, nil
}
