package handler

import (
	"context"
	"net/http"
	"testing"

	"natal-api/internal/models"
	"natal-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockConversationService is a mock implementation of the ConversationService interface
type MockConversationService struct {
	mock.Mock
}

func (m *MockConversationService) Start(ctx context.Context, id string, flow models.Flow) (service.Reply, error) {
	args := m.Called(ctx, id, flow)
	return args.Get(0).(service.Reply), args.Error(1)
}

func (m *MockConversationService) Handle(ctx context.Context, id, text string) (service.Reply, error) {
	args := m.Called(ctx, id, text)
	return args.Get(0).(service.Reply), args.Error(1)
}

func TestSessionHandler_Start(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := new(MockConversationService)
	svc.On("Start", mock.Anything, "", models.FlowLilith).
		Return(service.Reply{SessionID: "abc", State: models.StateCity, Prompt: service.PromptAskCity}, nil)
	h := NewSessionHandler(svc)

	w := serve(h.Start, http.MethodPost, "/sessions", `{"flow":"lilith"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "abc", body["session_id"])
	assert.Equal(t, "ask_city", body["prompt"])

	w = serve(h.Start, http.MethodPost, "/sessions", `{"flow":"tarot"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestSessionHandler_Message(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := gin.Param{Key: "id", Value: "abc"}

	svc := new(MockConversationService)
	svc.On("Handle", mock.Anything, "abc", "Москва").
		Return(service.Reply{SessionID: "abc", State: models.StateDay, Prompt: service.PromptAskDay, Place: &moscow}, nil)
	svc.On("Handle", mock.Anything, "gone", "15").Return(service.Reply{}, models.ErrSessionNotFound)
	h := NewSessionHandler(svc)

	w := serve(h.Message, http.MethodPost, "/sessions/abc/messages", `{"text":"Москва"}`, id)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "day", decode(t, w)["state"])

	w = serve(h.Message, http.MethodPost, "/sessions/gone/messages", `{"text":"15"}`, gin.Param{Key: "id", Value: "gone"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(h.Message, http.MethodPost, "/sessions/abc/messages", `{}`, id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}
