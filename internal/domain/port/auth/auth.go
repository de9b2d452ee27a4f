package auth

import (
	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
)

// TokenService issues and validates the bearer tokens that carry a caller's
// identity between requests. Sign-out is a client-side token discard; the
// server only enforces expiry.
type TokenService interface {
	// Issue creates a signed token for the identity
	Issue(identity entity.Identity) (string, error)

	// Parse validates a token and returns the identity it carries
	//
	// Possible errors:
	// - ErrInvalidToken: if the token is malformed, forged, or expired
	Parse(token string) (entity.Identity, error)
}

// PasswordHasher hides the password hashing scheme from the domain
type PasswordHasher interface {
	// Hash derives a storable hash from a raw password
	Hash(password string) (string, error)

	// Compare checks a raw password against a stored hash
	//
	// Possible errors:
	// - ErrInvalidCredentials: if the password does not match
	Compare(hash, password string) error
}
