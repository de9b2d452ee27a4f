package entity

import (
	"fmt"
	"time"

	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
)

// Category represents a cause category a donation is recorded under
type Category string

// Enumerated cause categories
const (
	CategoryEmergency   Category = "Emergency"
	CategoryHealth      Category = "Health"
	CategoryChildren    Category = "Children"
	CategoryEnvironment Category = "Environment"
	CategoryEducation   Category = "Education"
)

// Categories lists every enumerated cause category in a fixed order.
// Aggregation reports a total for each of these even when no donation matches.
func Categories() []Category {
	return []Category{
		CategoryEmergency,
		CategoryHealth,
		CategoryChildren,
		CategoryEnvironment,
		CategoryEducation,
	}
}

// PaymentMethod identifies the e-wallet channel used for a donation.
// Informational only; it never affects ledger semantics.
type PaymentMethod string

// Supported e-wallet channels
const (
	MethodGCash PaymentMethod = "GCash"
	MethodMaya  PaymentMethod = "Maya"
)

// DonationStatus defines possible status values for a donation event
type DonationStatus string

// DonationStatus constants
const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

// DonationEvent is one immutable entry in the donation ledger. Events are
// appended exactly once on a confirmed donation and never mutated or
// deleted afterward.
type DonationEvent struct {
	ID              uint64         // Database identifier, assigned on append
	EventID         string         // Opaque unique identifier assigned at creation
	DonorID         string         // Account that made the donation
	Amount          string         // Amount as a string with 2 decimal places
	AmountCentavos  int64          // Amount in centavos for precise arithmetic
	Category        Category       // Cause category the donation counts toward
	Method          PaymentMethod  // E-wallet channel used
	Status          DonationStatus // Lifecycle status
	CreatedAt       time.Time      // When the event was created
	ProcessedAt     *time.Time     // When payment confirmation completed (nullable)
	ErrorMessage    string         // Failure detail if the donation did not complete
	ResultTotal     string         // Donor's running total after this event
}

// NewDonationEvent creates a pending donation event with basic validation.
// The amount must be strictly positive and the category and method must be
// members of their enumerated sets.
func NewDonationEvent(
	eventID string,
	donorID string,
	amount string,
	category string,
	method string,
	timeProvider coreport.TimeProvider,
) (*DonationEvent, error) {
	if eventID == "" {
		return nil, errs.ErrInvalidEventID
	}
	if donorID == "" {
		return nil, errs.ErrInvalidDonorID
	}
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCategory, category)
	}
	if !IsValidMethod(method) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidMethod, method)
	}

	centavos, err := ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	return &DonationEvent{
		EventID:        eventID,
		DonorID:        donorID,
		Amount:         FormatCentavos(centavos),
		AmountCentavos: centavos,
		Category:       Category(category),
		Method:         PaymentMethod(method),
		Status:         DonationPending,
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// MarkCompleted marks the event as durably recorded and captures the
// donor's running total after the increment.
func (e *DonationEvent) MarkCompleted(timeProvider coreport.TimeProvider, resultTotal string) {
	now := timeProvider.Now()
	e.ProcessedAt = &now
	e.Status = DonationCompleted
	e.ResultTotal = resultTotal
}

// MarkFailed marks the event as failed with a reason
func (e *DonationEvent) MarkFailed(timeProvider coreport.TimeProvider, errorMessage string) {
	now := timeProvider.Now()
	e.ProcessedAt = &now
	e.Status = DonationFailed
	e.ErrorMessage = errorMessage
}

// IsValidCategory reports whether the value is an enumerated cause category
func IsValidCategory(category string) bool {
	for _, c := range Categories() {
		if string(c) == category {
			return true
		}
	}
	return false
}

// IsValidMethod reports whether the value is a supported e-wallet channel
func IsValidMethod(method string) bool {
	return method == string(MethodGCash) || method == string(MethodMaya)
}
