package handler

import (
	"context"
	"net/http"

	"natal-api/internal/models"

	"github.com/gin-gonic/gin"
)

// PlaceHandler handles place resolution requests
type PlaceHandler struct {
	service PlaceService
}

// PlaceService interface for dependency injection
type PlaceService interface {
	Resolve(ctx context.Context, name string) (models.GeoPlace, error)
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(svc PlaceService) *PlaceHandler {
	return &PlaceHandler{service: svc}
}

// Resolve handles GET /places/resolve requests
//
//	@Summary		Resolve a place name
//	@Description	Resolves free-text place input to coordinates and country code, learning unknown names.
//	@Tags			places
//	@Produce		json
//	@Param			q	query		string	true	"Place name"
//	@Success		200	{object}	models.GeoPlace
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/places/resolve [get]
func (h *PlaceHandler) Resolve(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "missing required query parameter 'q'")
		return
	}

	place, err := h.service.Resolve(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, place)
}
