package entity

import (
	"strings"
	"time"

	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
)

// Role grants capabilities to an account
type Role string

// Account roles
const (
	RoleDonor Role = "donor"
	RoleAdmin Role = "admin"
)

// UserAccount represents a donor or administrator.
//
// TotalDonated is a denormalized running sum kept in centavos. The donation
// ledger remains the source of truth; the counter is a cache incremented
// exactly once per successful donation event, and only the donation
// recorder may change it.
type UserAccount struct {
	ID           string    // Stable unique identifier
	Email        string    // Sign-in address, owned by the account holder
	DisplayName  string    // Profile name, owned by the account holder
	PasswordHash string    // bcrypt hash, never the raw password
	Role         Role      // donor or admin
	totalDonated int64     // Running sum of completed donations in centavos (private)
	CreatedAt    time.Time // When the account was registered
	UpdatedAt    time.Time // When the account was last updated
}

// NewUserAccount creates a donor account with a zero donation total
func NewUserAccount(id, email, displayName, passwordHash string, timeProvider coreport.TimeProvider) (*UserAccount, error) {
	if id == "" {
		return nil, errs.ErrInvalidDonorID
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidCredentials
	}

	now := timeProvider.Now()
	return &UserAccount{
		ID:           id,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         RoleDonor,
		totalDonated: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// TotalDonated returns the running total in centavos
func (u *UserAccount) TotalDonated() int64 {
	return u.totalDonated
}

// FormattedTotal returns the running total as a string with 2 decimal places
func (u *UserAccount) FormattedTotal() string {
	return FormatCentavos(u.totalDonated)
}

// SetTotalDonated overwrites the counter. For repository hydration only;
// business code must go through the donation recorder's atomic increment.
func (u *UserAccount) SetTotalDonated(centavos int64) {
	u.totalDonated = centavos
}

// ApplyDonation adds a completed donation amount to the running total
func (u *UserAccount) ApplyDonation(amountCentavos int64, timeProvider coreport.TimeProvider) {
	u.totalDonated += amountCentavos
	u.UpdatedAt = timeProvider.Now()
}

// IsAdmin reports whether the account may access aggregate reports
func (u *UserAccount) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpdateProfile applies owner-editable profile fields. Empty values leave
// the existing field untouched.
func (u *UserAccount) UpdateProfile(email, displayName string, timeProvider coreport.TimeProvider) error {
	if email != "" {
		email = strings.TrimSpace(strings.ToLower(email))
		if !strings.Contains(email, "@") {
			return errs.ErrInvalidEmail
		}
		u.Email = email
	}
	if displayName != "" {
		u.DisplayName = displayName
	}
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Identity is the authenticated caller attached to a request. It is the
// capability checked at the aggregation view's entry point.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the identity carries the admin capability
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
