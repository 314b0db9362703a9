package api

import (
	"errors"
	"net/http"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps business errors onto HTTP statuses. Anything outside the
// known taxonomy is a 500.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrRouteNotFound),
		errors.Is(err, domain.ErrAircraftNotFound),
		errors.Is(err, domain.ErrAirportNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSeatTaken),
		errors.Is(err, domain.ErrFlightFull),
		errors.Is(err, domain.ErrFlightNotBookable),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotReservationOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidSeatConfig),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
