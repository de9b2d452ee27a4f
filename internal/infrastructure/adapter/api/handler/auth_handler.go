package handler

import (
	"net/http"

	domainerr "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	authUseCase "github.com/fundr-ph/donation-ledger/internal/domain/usecase/auth"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and signin HTTP requests
type AuthHandler struct {
	authService *authUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// SignUp handles the POST /auth/signup endpoint
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidEmail),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	account, token, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		h.logger.Error("Signup failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  toUserResponse(account),
	})
}

// SignIn handles the POST /auth/signin endpoint
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	account, token, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Never distinguish unknown email from wrong password in the response
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Invalid email or password",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  toUserResponse(account),
	})
}
