package handler

import (
	"errors"
	"net/http"

	"natal-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error" example:"place not found"`
}

var errorStatus = []struct {
	err    error
	status int
}{
	{models.ErrInvalidCalendarDate, http.StatusBadRequest},
	{models.ErrInvalidHour, http.StatusBadRequest},
	{models.ErrUnknownPackage, http.StatusBadRequest},
	{models.ErrUnknownPayload, http.StatusBadRequest},
	{models.ErrPlaceNotFound, http.StatusNotFound},
	{models.ErrSessionNotFound, http.StatusNotFound},
	{models.ErrTimezoneResolution, http.StatusNotFound},
	{models.ErrInsufficientBalance, http.StatusPaymentRequired},
	{models.ErrPayloadMismatch, http.StatusConflict},
	{models.ErrAdminUnlimited, http.StatusConflict},
	{models.ErrPaymentsDisabled, http.StatusServiceUnavailable},
}

// statusOf maps a service error to its HTTP status and public message.
func statusOf(err error) (int, string) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}

func abortWithError(c *gin.Context, err error) {
	status, msg := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
