package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// DonationRepository implements the DonationRepository port using GORM.
// The ledger table is append-only; this type exposes no update or delete.
type DonationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDonationRepository creates a new DonationRepository instance
func NewDonationRepository(db *gorm.DB, logger coreport.Logger) *DonationRepository {
	return &DonationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEvent converts a ledger model to a domain entity
func modelToEvent(m *model.DonationEvent) entity.DonationEvent {
	return entity.DonationEvent{
		ID:             m.ID,
		EventID:        m.EventID,
		DonorID:        m.DonorID,
		Amount:         m.Amount,
		AmountCentavos: m.AmountCentavos,
		Category:       entity.Category(m.Category),
		Method:         entity.PaymentMethod(m.Method),
		Status:         entity.DonationStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		ProcessedAt:    m.ProcessedAt,
		ResultTotal:    m.ResultTotal,
		ErrorMessage:   m.ErrorMessage,
	}
}

// handleDatabaseError standardizes database error handling for the ledger
func (r *DonationRepository) handleDatabaseError(operation string, err error, eventID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrEventNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"event_id": eventID,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEvent
	}
	if r.errorClassifier.IsTimeoutError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTimeout, operation)
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Append durably stores a new donation event. Events are recorded as
// completed: a pending event only exists in memory during confirmation.
func (r *DonationRepository) Append(ctx context.Context, event *entity.DonationEvent) error {
	m := model.DonationEvent{
		EventID:        event.EventID,
		DonorID:        event.DonorID,
		Amount:         event.Amount,
		AmountCentavos: event.AmountCentavos,
		Category:       string(event.Category),
		Method:         string(event.Method),
		Status:         string(entity.DonationCompleted),
		CreatedAt:      event.CreatedAt,
		ProcessedAt:    event.ProcessedAt,
		ResultTotal:    event.ResultTotal,
	}

	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		return r.handleDatabaseError("appending donation event", result.Error, event.EventID)
	}

	event.ID = m.ID
	return nil
}

// GetByEventID retrieves one event by its opaque identifier
func (r *DonationRepository) GetByEventID(ctx context.Context, eventID string) (*entity.DonationEvent, error) {
	var m model.DonationEvent
	result := r.db.WithContext(ctx).First(&m, "event_id = ?", eventID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting donation event", result.Error, eventID)
	}

	event := modelToEvent(&m)
	return &event, nil
}

// GetAll reads back the full ledger in insertion order
func (r *DonationRepository) GetAll(ctx context.Context) ([]entity.DonationEvent, error) {
	var models []model.DonationEvent
	result := r.db.WithContext(ctx).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("reading ledger", result.Error, "")
	}

	events := make([]entity.DonationEvent, 0, len(models))
	for i := range models {
		events = append(events, modelToEvent(&models[i]))
	}
	return events, nil
}

// GetByDonor reads a single donor's events in insertion order
func (r *DonationRepository) GetByDonor(ctx context.Context, donorID string) ([]entity.DonationEvent, error) {
	var models []model.DonationEvent
	result := r.db.WithContext(ctx).Where("donor_id = ?", donorID).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("reading donor history", result.Error, "")
	}

	events := make([]entity.DonationEvent, 0, len(models))
	for i := range models {
		events = append(events, modelToEvent(&models[i]))
	}
	return events, nil
}
