package auth

import (
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	authport "github.com/fundr-ph/donation-ledger/internal/domain/port/auth"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements the PasswordHasher port with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher. A cost below the bcrypt minimum
// falls back to the library default.
func NewBcryptHasher(cost int) authport.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a storable hash from a raw password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare checks a raw password against a stored hash
func (h *BcryptHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errs.ErrInvalidCredentials
	}
	return nil
}
