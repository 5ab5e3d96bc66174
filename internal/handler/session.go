package handler

import (
	"context"
	"net/http"

	"natal-api/internal/models"
	"natal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the data collection conversation
type SessionHandler struct {
	service ConversationService
}

// ConversationService interface for dependency injection
type ConversationService interface {
	Start(ctx context.Context, id string, flow models.Flow) (service.Reply, error)
	Handle(ctx context.Context, id, text string) (service.Reply, error)
}

// StartSessionRequest opens a conversation
type StartSessionRequest struct {
	Flow models.Flow `json:"flow" binding:"required,oneof=lilith nodes" example:"lilith"`
}

// MessageRequest is one user message
type MessageRequest struct {
	Text string `json:"text" binding:"required" example:"Москва"`
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc ConversationService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// Start handles POST /sessions requests
//
//	@Summary	Start a conversation
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		StartSessionRequest	true	"Flow"
//	@Success	201		{object}	service.Reply
//	@Failure	400		{object}	ErrorResponse
//	@Router		/sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "flow must be one of 'lilith', 'nodes'")
		return
	}

	reply, err := h.service.Start(c.Request.Context(), "", req.Flow)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

// Message handles POST /sessions/:id/messages requests
//
//	@Summary	Send a message to a conversation
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Session id"
//	@Param		request	body		MessageRequest	true	"Message"
//	@Success	200		{object}	service.Reply
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/sessions/{id}/messages [post]
func (h *SessionHandler) Message(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing required field 'text'")
		return
	}

	reply, err := h.service.Handle(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
