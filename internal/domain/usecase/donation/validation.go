package donation

import (
	"fmt"
	"strings"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
)

// Validator checks donation requests before any mutation is attempted
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRecordRequest validates every field of a record request.
// No write may be attempted when this returns an error.
func (v *Validator) ValidateRecordRequest(donorID, amount, category, method string) error {
	if donorID == "" {
		return errs.ErrUnauthenticated
	}

	if err := v.validateAmount(amount); err != nil {
		return err
	}

	if err := v.validateCategory(category); err != nil {
		return err
	}

	return v.validateMethod(method)
}

// validateAmount checks the amount is a well-formed positive decimal
func (v *Validator) validateAmount(amount string) error {
	if strings.TrimSpace(amount) == "" {
		return fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	_, err := entity.ParsePositiveAmount(amount)
	return err
}

// validateCategory checks membership in the enumerated cause set
func (v *Validator) validateCategory(category string) error {
	if category == "" {
		return errs.ErrInvalidCategory
	}
	if !entity.IsValidCategory(category) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidCategory, category)
	}
	return nil
}

// validateMethod checks membership in the supported e-wallet set
func (v *Validator) validateMethod(method string) error {
	if method == "" {
		return errs.ErrInvalidMethod
	}
	if !entity.IsValidMethod(method) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidMethod, method)
	}
	return nil
}
