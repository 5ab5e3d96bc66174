package handler

import (
	"context"
	"net/http"
	"strconv"

	"natal-api/internal/models"
	"natal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ChartHandler handles chart computations
type ChartHandler struct {
	service ChartService
}

// ChartService interface for dependency injection
type ChartService interface {
	Lilith(ctx context.Context, req service.ChartRequest) (*models.LilithReport, error)
	Nodes(ctx context.Context, req service.ChartRequest) (*models.NodesReport, error)
}

// NewChartHandler creates a new chart handler
func NewChartHandler(svc ChartService) *ChartHandler {
	return &ChartHandler{service: svc}
}

// chartRequest reads city, date, hour and the optional baseline from the query.
func chartRequest(c *gin.Context) (service.ChartRequest, bool) {
	city := c.Query("city")
	if city == "" {
		badRequest(c, "missing required query parameter 'city'")
		return service.ChartRequest{}, false
	}

	day, month, year, err := models.ParseDate(c.Query("date"))
	if err != nil {
		abortWithError(c, err)
		return service.ChartRequest{}, false
	}

	hour, err := strconv.Atoi(c.Query("hour"))
	if err != nil {
		abortWithError(c, models.ErrInvalidHour)
		return service.ChartRequest{}, false
	}

	req := service.ChartRequest{
		City:   city,
		Moment: models.BirthMoment{Day: day, Month: month, Year: year, Hour: hour},
	}
	if s := c.Query("baseline"); s != "" {
		baseline, err := strconv.ParseFloat(s, 64)
		if err != nil {
			badRequest(c, "invalid baseline format")
			return service.ChartRequest{}, false
		}
		req.Baseline = &baseline
	}
	return req, true
}

// Lilith handles GET /charts/lilith requests
//
//	@Summary		Lilith chart
//	@Description	Mean lunar apogee with natal moon phase and lunar nodes, DST corrected.
//	@Tags			charts
//	@Produce		json
//	@Param			city		query		string	true	"Birth place"
//	@Param			date		query		string	true	"Birth date as DD.MM.YYYY"
//	@Param			hour		query		int		true	"Local clock hour 0-23"
//	@Param			baseline	query		number	false	"Offset shown before DST correction"
//	@Success		200			{object}	models.LilithReport
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/charts/lilith [get]
func (h *ChartHandler) Lilith(c *gin.Context) {
	req, ok := chartRequest(c)
	if !ok {
		return
	}

	report, err := h.service.Lilith(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Nodes handles GET /charts/nodes requests
//
//	@Summary		Lunar nodes chart
//	@Description	Mean north node and the opposite south node, DST corrected.
//	@Tags			charts
//	@Produce		json
//	@Param			city		query		string	true	"Birth place"
//	@Param			date		query		string	true	"Birth date as DD.MM.YYYY"
//	@Param			hour		query		int		true	"Local clock hour 0-23"
//	@Param			baseline	query		number	false	"Offset shown before DST correction"
//	@Success		200			{object}	models.NodesReport
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/charts/nodes [get]
func (h *ChartHandler) Nodes(c *gin.Context) {
	req, ok := chartRequest(c)
	if !ok {
		return
	}

	report, err := h.service.Nodes(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
