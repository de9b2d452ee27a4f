package report

import (
	"context"
	"fmt"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/domain/port/persistence"
)

// Service is the admin-gated entry point to the aggregation view. The
// capability check lives here, not in the presentation layer.
type Service struct {
	donationRepo persistence.DonationRepository
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	timeout      coreport.Duration
}

// NewService creates a report service
func NewService(
	donationRepo persistence.DonationRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	timeout coreport.Duration,
) *Service {
	return &Service{
		donationRepo: donationRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
		timeout:      timeout,
	}
}

// Summarize reads the full ledger and derives aggregate totals and the
// donor ranking. Non-admin callers are rejected before any read. A read
// failure fails the whole summary; no partial or stale result is returned.
func (s *Service) Summarize(ctx context.Context, caller entity.Identity, filterCategory string) (*Summary, error) {
	if caller.UserID == "" {
		return nil, errs.ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		s.logger.Warn("Aggregation view denied", map[string]any{
			"user_id": caller.UserID,
			"role":    string(caller.Role),
		})
		return nil, errs.ErrForbidden
	}

	var filter *entity.Category
	if filterCategory != "" && filterCategory != entity.CategoryAll {
		if !entity.IsValidCategory(filterCategory) {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCategory, filterCategory)
		}
		c := entity.Category(filterCategory)
		filter = &c
	}

	ctx, cancel := s.timeProvider.WithTimeout(ctx, s.timeout)
	defer cancel()

	events, err := s.donationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.userRepo.ListByTotalDonated(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(events, accounts, filter)

	s.logger.Info("Aggregation summary produced", map[string]any{
		"admin_id":    caller.UserID,
		"events":      len(events),
		"donors":      summary.DonorCount,
		"grand_total": entity.FormatCentavos(summary.GrandTotal),
		"filter":      filterCategory,
	})

	return &summary, nil
}
