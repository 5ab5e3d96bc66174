package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"natal-api/internal/models"

	"github.com/gin-gonic/gin"
)

// TimezoneHandler handles historical UTC offset lookups
type TimezoneHandler struct {
	resolver OffsetResolver
}

// OffsetResolver interface for dependency injection
type OffsetResolver interface {
	ResolveOffset(latitude, longitude float64, countryCode string, date time.Time) (float64, bool)
}

// OffsetResponse is the result of an offset lookup
type OffsetResponse struct {
	Offset float64 `json:"offset" example:"4"`
}

// NewTimezoneHandler creates a new timezone handler
func NewTimezoneHandler(r OffsetResolver) *TimezoneHandler {
	return &TimezoneHandler{resolver: r}
}

// Offset handles GET /timezone/offset requests
//
//	@Summary		Historical UTC offset
//	@Description	Returns the UTC offset in force at local noon on the given date, DST included.
//	@Tags			timezone
//	@Produce		json
//	@Param			lat		query		number	true	"Latitude"
//	@Param			lon		query		number	true	"Longitude"
//	@Param			iso		query		string	false	"ISO 3166 alpha-2 country code"
//	@Param			date	query		string	true	"Date as DD.MM.YYYY"
//	@Success		200		{object}	OffsetResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/timezone/offset [get]
func (h *TimezoneHandler) Offset(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		badRequest(c, "missing required query parameters 'lat' and 'lon'")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		badRequest(c, "invalid latitude format")
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		badRequest(c, "invalid longitude format")
		return
	}

	day, month, year, err := models.ParseDate(c.Query("date"))
	if err != nil || !models.ValidDate(day, month, year) {
		abortWithError(c, models.ErrInvalidCalendarDate)
		return
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	offset, ok := h.resolver.ResolveOffset(lat, lon, strings.ToUpper(c.Query("iso")), date)
	if !ok {
		abortWithError(c, models.ErrTimezoneResolution)
		return
	}
	c.JSON(http.StatusOK, OffsetResponse{Offset: offset})
}
