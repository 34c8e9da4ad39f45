package v1

import (
	"errors"
	"net/http"

	"github.com/budget-rule/backend/internal/authz"
	"github.com/budget-rule/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, authz.ErrUnauthenticated) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, authz.ErrForbidden) {
		return http.StatusForbidden
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrBudgetMonthNotUnique) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errYearParameter       = errors.New("the year parameter must be set to a valid year")
)
