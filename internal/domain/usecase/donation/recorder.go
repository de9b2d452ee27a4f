package donation

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	paymentport "github.com/fundr-ph/donation-ledger/internal/domain/port/payment"
	"github.com/fundr-ph/donation-ledger/internal/domain/port/persistence"
)

// RecordRequest represents the input for recording a donation
type RecordRequest struct {
	DonorID  string
	Amount   string
	Category string
	Method   string
}

// Recorder is the only component allowed to append to the donation ledger
// or increment a donor's running total. Both writes happen inside one
// database transaction, so an event is never observed without its counter
// update or vice versa.
type Recorder struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	donationRepo persistence.DonationRepository
	verifier     paymentport.Verifier
	validator    *Validator
	idGen        coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	timeout      coreport.Duration
}

// NewRecorder creates a donation recorder with an explicit per-operation
// timeout covering payment confirmation and both ledger writes.
func NewRecorder(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	donationRepo persistence.DonationRepository,
	verifier paymentport.Verifier,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	timeout coreport.Duration,
) *Recorder {
	return &Recorder{
		uow:          uow,
		userRepo:     userRepo,
		donationRepo: donationRepo,
		verifier:     verifier,
		validator:    NewValidator(),
		idGen:        idGen,
		timeProvider: timeProvider,
		logger:       logger,
		timeout:      timeout,
	}
}

// Record validates and records one donation: confirms the payment, appends
// exactly one DonationEvent and increments the donor's total by the amount.
// On any error before the transaction commits, nothing is persisted. If the
// commit outcome itself cannot be determined the caller receives an
// uncertain-outcome error, never a false success.
func (r *Recorder) Record(ctx context.Context, req RecordRequest) (*entity.DonationEvent, error) {
	if err := r.validator.ValidateRecordRequest(req.DonorID, req.Amount, req.Category, req.Method); err != nil {
		return nil, err
	}

	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.timeout)
	defer cancel()

	// The donor must exist before any money is taken
	if _, err := r.userRepo.GetByID(ctx, req.DonorID); err != nil {
		return nil, err
	}

	event, err := entity.NewDonationEvent(
		r.idGen.NewID(),
		req.DonorID,
		req.Amount,
		req.Category,
		req.Method,
		r.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Awaiting payment confirmation", map[string]any{
		"event_id": event.EventID,
		"donor_id": event.DonorID,
		"amount":   event.Amount,
		"method":   string(event.Method),
	})

	if err := r.verifier.Confirm(ctx, event); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: payment confirmation", errs.ErrTimeout)
		}
		r.logger.Warn("Payment confirmation failed", map[string]any{
			"event_id": event.EventID,
			"donor_id": event.DonorID,
			"error":    err.Error(),
		})
		return nil, err
	}

	donor, err := r.persistEvent(ctx, event)
	if err != nil {
		return nil, err
	}

	event.MarkCompleted(r.timeProvider, donor.FormattedTotal())

	r.logger.Info("Donation recorded", map[string]any{
		"event_id":     event.EventID,
		"donor_id":     event.DonorID,
		"amount":       event.Amount,
		"category":     string(event.Category),
		"method":       string(event.Method),
		"result_total": event.ResultTotal,
	})

	return event, nil
}

// persistEvent runs the append and the atomic counter increment in one
// database transaction and returns the donor with the updated total.
func (r *Recorder) persistEvent(ctx context.Context, event *entity.DonationEvent) (*entity.UserAccount, error) {
	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	donationRepo := r.uow.GetDonationRepository(txCtx)
	userRepo := r.uow.GetUserRepository(txCtx)

	if err := donationRepo.Append(txCtx, event); err != nil {
		r.rollback(txCtx, event)
		return nil, errs.NewDonationError(
			event.EventID, event.DonorID, event.Amount, string(event.Category),
			"failed to append event to ledger", err,
		)
	}

	donor, err := userRepo.IncrementTotalDonated(txCtx, event.DonorID, event.AmountCentavos)
	if err != nil {
		r.rollback(txCtx, event)
		return nil, errs.NewDonationError(
			event.EventID, event.DonorID, event.Amount, string(event.Category),
			"failed to increment donor total", err,
		)
	}

	if err := r.uow.Commit(txCtx); err != nil {
		// The commit outcome is unknown: the event and the increment may or
		// may not both be durable. Surface that uncertainty to the caller.
		r.logger.Error("Commit failed after ledger writes", map[string]any{
			"event_id": event.EventID,
			"donor_id": event.DonorID,
			"error":    err.Error(),
		})
		return nil, errs.NewUncertainOutcomeError(event.EventID, event.DonorID, err)
	}

	return donor, nil
}

// rollback undoes a failed ledger transaction; a rollback failure is logged
// but the original error is what the caller sees.
func (r *Recorder) rollback(txCtx context.Context, event *entity.DonationEvent) {
	if err := r.uow.Rollback(txCtx); err != nil {
		r.logger.Error("Rollback failed", map[string]any{
			"event_id": event.EventID,
			"error":    err.Error(),
		})
	}
}

// History returns the caller's own donation events in insertion order
func (r *Recorder) History(ctx context.Context, donorID string) ([]entity.DonationEvent, error) {
	if donorID == "" {
		return nil, errs.ErrUnauthenticated
	}
	return r.donationRepo.GetByDonor(ctx, donorID)
}
