package handler

import (
	"net/http"
	"time"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	domainerr "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	donationUseCase "github.com/fundr-ph/donation-ledger/internal/domain/usecase/donation"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// DonationHandler handles donation-related HTTP requests
type DonationHandler struct {
	recorder *donationUseCase.Recorder
	logger   coreport.Logger
}

// NewDonationHandler creates a new donation handler instance
func NewDonationHandler(recorder *donationUseCase.Recorder, logger coreport.Logger) *DonationHandler {
	return &DonationHandler{
		recorder: recorder,
		logger:   logger,
	}
}

// RecordDonation handles the POST /donations endpoint
func (h *DonationHandler) RecordDonation(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
			Message: "Authentication required",
		})
		return
	}

	var req dto.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid donation request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	event, err := h.recorder.Record(c.Request.Context(), donationUseCase.RecordRequest{
		DonorID:  caller.UserID,
		Amount:   req.Amount,
		Category: req.Category,
		Method:   req.Method,
	})
	if err != nil {
		h.logger.Error("Donation failed", map[string]any{
			"donorId": caller.UserID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, toDonationResponse(event))
}

// GetHistory handles the GET /donations endpoint
func (h *DonationHandler) GetHistory(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
			Message: "Authentication required",
		})
		return
	}

	events, err := h.recorder.History(c.Request.Context(), caller.UserID)
	if err != nil {
		h.logger.Error("Error getting donation history", map[string]any{
			"donorId": caller.UserID,
			"error":   err.Error(),
		})
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	donations := make([]dto.DonationResponse, 0, len(events))
	for i := range events {
		donations = append(donations, toDonationResponse(&events[i]))
	}

	c.JSON(http.StatusOK, dto.DonationHistoryResponse{
		DonorID:   caller.UserID,
		Donations: donations,
	})
}

// toDonationResponse maps a donation event to its API representation
func toDonationResponse(event *entity.DonationEvent) dto.DonationResponse {
	return dto.DonationResponse{
		EventID:      event.EventID,
		DonorID:      event.DonorID,
		Amount:       event.Amount,
		Category:     string(event.Category),
		Method:       string(event.Method),
		Status:       string(event.Status),
		ResultTotal:  event.ResultTotal,
		ErrorMessage: event.ErrorMessage,
		CreatedAt:    event.CreatedAt.UTC().Format(time.RFC3339),
	}
}
