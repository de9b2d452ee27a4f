package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/fundr-ph/donation-ledger/internal/domain/error"
)

// httpStatus maps domain errors to HTTP status codes
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrUnauthenticated),
		errors.Is(err, domainerr.ErrInvalidToken),
		errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrUserNotFound),
		errors.Is(err, domainerr.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateEvent),
		errors.Is(err, domainerr.ErrDuplicateEmail):
		return http.StatusConflict
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domainerr.ErrUncertainOutcome):
		// The write may or may not have landed; the client must not retry blindly
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
