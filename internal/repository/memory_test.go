package repository

import (
	"context"
	"testing"
	"time"

	"natal-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Accounts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	acc, err := m.GetAccount(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, acc)

	want := models.Account{UserID: 7, Balance: 2, Used: 1, UpdatedAt: time.Unix(1700000000, 0)}
	require.NoError(t, m.SaveAccount(ctx, want))

	acc, err = m.GetAccount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, *acc)
}

func TestMemoryStore_Sessions(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.GetSession(ctx, "abc")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	sess := models.Session{ID: "abc", Flow: models.FlowNodes, State: models.StateMonth, Day: 3}
	require.NoError(t, m.SaveSession(ctx, sess))

	got, err := m.GetSession(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sess, *got)

	require.NoError(t, m.DeleteSession(ctx, "abc"))
	_, err = m.GetSession(ctx, "abc")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestMemoryStore_PaymentsAndPlaces(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.AppendPayment(ctx, models.PaymentEvent{UserID: 7, Payload: "deep1_7_1", Status: models.PaymentSuccess}))
	events := m.Payments()
	require.Len(t, events, 1)
	events[0].Status = "mutated"
	assert.Equal(t, models.PaymentSuccess, m.Payments()[0].Status)

	require.NoError(t, m.AppendPlace(ctx, models.GeoPlace{Name: "Moscow"}))
	places, err := m.LoadPlaces(ctx)
	require.NoError(t, err)
	assert.Len(t, places, 1)
}
