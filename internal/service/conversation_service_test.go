package service

import (
	"context"
	"testing"

	"natal-api/internal/models"
	"natal-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConversation(t *testing.T) (*ConversationService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	places := staticPlaces{"moscow": moscow}
	charts := NewChartService(places, &staticOffsets{offset: 4, ok: true}, staticGuesser{offset: 3, ok: true}, newFakeEphemeris(), 3)
	return NewConversationService(store, places, charts), store
}

func step(t *testing.T, svc *ConversationService, id, text string) Reply {
	t.Helper()
	r, err := svc.Handle(context.Background(), id, text)
	require.NoError(t, err)
	return r
}

func TestConversationService_LilithFlow(t *testing.T) {
	svc, store := newConversation(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "", models.FlowLilith)
	require.NoError(t, err)
	require.NotEmpty(t, start.SessionID)
	assert.Equal(t, models.StateCity, start.State)
	assert.Equal(t, PromptAskCity, start.Prompt)
	id := start.SessionID

	r := step(t, svc, id, "Atlantis")
	assert.Equal(t, models.StateCity, r.State)
	assert.Equal(t, PromptCityNotFound, r.Prompt)

	r = step(t, svc, id, "Moscow")
	assert.Equal(t, models.StateDay, r.State)
	assert.Equal(t, &moscow, r.Place)
	assert.Equal(t, 3.0, r.BaselineOffset)

	r = step(t, svc, id, "fifteen")
	assert.Equal(t, models.StateDay, r.State)
	assert.Equal(t, PromptDigitsOnly, r.Prompt)

	assert.Equal(t, models.StateMonth, step(t, svc, id, "15").State)
	assert.Equal(t, models.StateYear, step(t, svc, id, "7").State)
	r = step(t, svc, id, "1990")
	assert.Equal(t, models.StateHour, r.State)
	assert.Equal(t, PromptAskHour, r.Prompt)

	r = step(t, svc, id, "25")
	assert.Equal(t, models.StateHour, r.State)
	assert.Equal(t, PromptInvalidHour, r.Prompt)

	r = step(t, svc, id, "14")
	assert.Equal(t, models.StateEnded, r.State)
	assert.Equal(t, PromptResult, r.Prompt)
	require.NotNil(t, r.Lilith)
	assert.Nil(t, r.Nodes)
	assert.True(t, r.Lilith.DSTApplied)
	assert.Equal(t, 4.0, r.Lilith.Offset)
	assert.NotEmpty(t, r.Summary)

	_, err = store.GetSession(ctx, id)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestConversationService_NodesFlow(t *testing.T) {
	svc, _ := newConversation(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "chat-1", models.FlowNodes)
	require.NoError(t, err)
	assert.Equal(t, "chat-1", start.SessionID)

	for _, in := range []string{"moscow", "1", "1", "2000"} {
		step(t, svc, "chat-1", in)
	}
	r := step(t, svc, "chat-1", "0")
	assert.Equal(t, models.StateEnded, r.State)
	require.NotNil(t, r.Nodes)
	assert.Nil(t, r.Lilith)
}

func TestConversationService_InvalidDateRestartsAtDay(t *testing.T) {
	svc, _ := newConversation(t)
	start, err := svc.Start(context.Background(), "", models.FlowLilith)
	require.NoError(t, err)
	id := start.SessionID

	for _, in := range []string{"Moscow", "31", "2"} {
		step(t, svc, id, in)
	}
	r := step(t, svc, id, "1990")
	assert.Equal(t, models.StateDay, r.State)
	assert.Equal(t, PromptInvalidDate, r.Prompt)
}

func TestConversationService_Cancel(t *testing.T) {
	for _, in := range []string{"cancel", "❌ Отмена", "🏠 Главное меню"} {
		t.Run(in, func(t *testing.T) {
			svc, store := newConversation(t)
			start, err := svc.Start(context.Background(), "", models.FlowLilith)
			require.NoError(t, err)

			r := step(t, svc, start.SessionID, in)
			assert.Equal(t, models.StateEnded, r.State)
			assert.Equal(t, PromptCancelled, r.Prompt)

			_, err = store.GetSession(context.Background(), start.SessionID)
			assert.ErrorIs(t, err, models.ErrSessionNotFound)
		})
	}
}

func TestConversationService_Errors(t *testing.T) {
	svc, _ := newConversation(t)

	_, err := svc.Start(context.Background(), "", models.Flow("tarot"))
	assert.Error(t, err)

	_, err = svc.Handle(context.Background(), "missing", "Moscow")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestDigits(t *testing.T) {
	tests := []struct {
		in string
		n  int
		ok bool
	}{
		{"0", 0, true},
		{"23", 23, true},
		{"", 0, false},
		{"-1", 0, false},
		{"1.5", 0, false},
		{"١٢", 0, false},
	}
	for _, tt := range tests {
		n, ok := digits(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.n, n, tt.in)
	}
}
