// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadready/internal/geo"
	"roadready/internal/modules/addon"
	"roadready/internal/modules/booking"
	"roadready/internal/modules/coupon"
	"roadready/internal/modules/pricing"
	"roadready/internal/modules/testcenter"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError maps module sentinel errors onto HTTP statuses. Unknown
// errors never leak internals to the admin UI.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest),
		errors.Is(err, testcenter.ErrBadRequest),
		errors.Is(err, addon.ErrBadRequest),
		errors.Is(err, coupon.ErrBadRequest),
		errors.Is(err, pricing.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, testcenter.ErrNotFound),
		errors.Is(err, addon.ErrNotFound),
		errors.Is(err, coupon.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, coupon.ErrInactive):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, booking.ErrInvalidState), errors.Is(err, booking.ErrConflict):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, geo.ErrNotConfigured):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
