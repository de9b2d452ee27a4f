package handler

import (
	"net/http"
	"time"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	domainerr "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	userUseCase "github.com/fundr-ph/donation-ledger/internal/domain/usecase/user"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles profile-related HTTP requests
type UserHandler struct {
	userService *userUseCase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile handles the GET /users/me endpoint
func (h *UserHandler) GetProfile(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
			Message: "Authentication required",
		})
		return
	}

	account, err := h.userService.GetProfile(c.Request.Context(), caller)
	if err != nil {
		h.logger.Error("Error getting profile", map[string]any{
			"userId": caller.UserID,
			"error":  err.Error(),
		})
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

// UpdateProfile handles the PATCH /users/me endpoint
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
			Message: "Authentication required",
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidEmail),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	account, err := h.userService.UpdateProfile(c.Request.Context(), caller, userUseCase.UpdateProfileRequest{
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.logger.Error("Error updating profile", map[string]any{
			"userId": caller.UserID,
			"error":  err.Error(),
		})
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

// toUserResponse maps a user account to its API representation
func toUserResponse(account *entity.UserAccount) dto.UserResponse {
	return dto.UserResponse{
		ID:           account.ID,
		Email:        account.Email,
		DisplayName:  account.DisplayName,
		Role:         string(account.Role),
		TotalDonated: account.FormattedTotal(),
		CreatedAt:    account.CreatedAt.UTC().Format(time.RFC3339),
	}
}
