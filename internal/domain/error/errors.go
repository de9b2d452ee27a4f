package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount    = 4001
	CodeInvalidCategory  = 4002
	CodeInvalidMethod    = 4003
	CodeInvalidDonorID   = 4004
	CodeDuplicateEvent   = 4005
	CodeInvalidEmail     = 4006
	CodeDuplicateEmail   = 4007
	CodeUnauthenticated  = 4010
	CodeInvalidToken     = 4011
	CodeForbidden        = 4030
	CodeUserNotFound     = 4040
	CodeEventNotFound    = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodePersistence    = 5001
	CodeTimeout        = 5040
)

// Base error types
var (
	// ErrInvalidAmount is returned when the donation amount is malformed,
	// zero, or otherwise out of range
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when the donation amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidCategory is returned when the category is not one of the
	// enumerated causes
	ErrInvalidCategory = errors.New("invalid cause category")

	// ErrInvalidMethod is returned when the payment method is not a
	// supported e-wallet channel
	ErrInvalidMethod = errors.New("invalid payment method")

	// ErrInvalidDonorID is returned when the donor identifier is empty
	ErrInvalidDonorID = errors.New("donor ID cannot be empty")

	// ErrInvalidEventID is returned when the event identifier is empty
	ErrInvalidEventID = errors.New("event ID cannot be empty")

	// ErrInvalidEmail is returned when the email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrDuplicateEvent is returned when an event with the same ID already exists
	ErrDuplicateEvent = errors.New("donation event with this ID already exists")

	// ErrDuplicateEmail is returned when registering an email that is taken
	ErrDuplicateEmail = errors.New("account with this email already exists")

	// ErrUnauthenticated is returned when no authenticated caller is present
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidCredentials is returned when sign-in credentials do not match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a bearer token is malformed or expired
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden is returned when the caller lacks the required capability
	ErrForbidden = errors.New("insufficient privileges")

	// ErrUserNotFound is returned when the requested account doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEventNotFound is returned when the requested donation event doesn't exist
	ErrEventNotFound = errors.New("donation event not found")

	// ErrDatabaseConnection is returned when the durable store cannot be
	// read or written
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrTimeout is returned when an operation exceeds its deadline. The
	// outcome of an in-flight write is uncertain when this is surfaced.
	ErrTimeout = errors.New("operation timed out")

	// ErrUncertainOutcome wraps a persistence failure that happened after a
	// partial write; callers must not report success
	ErrUncertainOutcome = errors.New("donation outcome uncertain")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrInvalidMethod):
		return CodeInvalidMethod
	case errors.Is(err, ErrInvalidDonorID), errors.Is(err, ErrInvalidEventID):
		return CodeInvalidDonorID
	case errors.Is(err, ErrDuplicateEvent):
		return CodeDuplicateEvent
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return CodeUnauthenticated
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrEventNotFound):
		return CodeEventNotFound
	case errors.Is(err, ErrTimeout):
		return CodeTimeout
	case errors.Is(err, ErrDatabaseConnection), errors.Is(err, ErrUncertainOutcome):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// IsValidationError reports whether the error is bad input shape/range
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidMethod) ||
		errors.Is(err, ErrInvalidDonorID) ||
		errors.Is(err, ErrInvalidEventID) ||
		errors.Is(err, ErrInvalidEmail)
}

// IsAuthError reports whether the error is missing or insufficient identity
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrForbidden)
}

// IsPersistenceError reports whether the error is a store read/write failure
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection) || errors.Is(err, ErrUncertainOutcome)
}

// IsNotFoundError reports whether the error is any "not found" kind
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrEventNotFound)
}

// DonationError carries the full context of a failed donation recording
type DonationError struct {
	EventID  string
	DonorID  string
	Amount   string
	Category string
	Reason   string
	Err      error
}

// Error implements the error interface for DonationError
func (e *DonationError) Error() string {
	return fmt.Sprintf("donation error for event %s (donor: %s, amount: %s, category: %s): %s - %v",
		e.EventID, e.DonorID, e.Amount, e.Category, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *DonationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DonationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "donation_error",
		"event_id":   e.EventID,
		"donor_id":   e.DonorID,
		"amount":     e.Amount,
		"category":   e.Category,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewDonationError creates a detailed donation recording error
func NewDonationError(eventID, donorID, amount, category, reason string, err error) error {
	return &DonationError{
		EventID:  eventID,
		DonorID:  donorID,
		Amount:   amount,
		Category: category,
		Reason:   reason,
		Err:      err,
	}
}

// UncertainOutcomeError reports a donation whose durable append succeeded
// but whose counter increment could not be confirmed, or the reverse. The
// caller must be told the outcome is uncertain, never shown a success.
type UncertainOutcomeError struct {
	EventID string
	DonorID string
	Err     error
}

// Error implements the error interface
func (e *UncertainOutcomeError) Error() string {
	return fmt.Sprintf("uncertain outcome for donation event %s (donor %s): %v", e.EventID, e.DonorID, e.Err)
}

// Is checks if the target error is an ErrUncertainOutcome
func (e *UncertainOutcomeError) Is(target error) bool {
	return target == ErrUncertainOutcome
}

// Unwrap returns the underlying error
func (e *UncertainOutcomeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *UncertainOutcomeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "uncertain_outcome",
		"event_id":   e.EventID,
		"donor_id":   e.DonorID,
		"error":      e.Err.Error(),
		"error_code": CodePersistence,
	}
}

// NewUncertainOutcomeError creates a new uncertain outcome error
func NewUncertainOutcomeError(eventID, donorID string, err error) error {
	return &UncertainOutcomeError{EventID: eventID, DonorID: donorID, Err: err}
}
