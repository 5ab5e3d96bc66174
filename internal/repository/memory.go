package repository

import (
	"context"
	"sync"

	"natal-api/internal/models"
)

// MemoryStore keeps accounts, payments and sessions in process memory. It
// backs deployments without PostgreSQL or Redis, and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[int64]models.Account
	payments []models.PaymentEvent
	sessions map[string]models.Session
	places   []models.GeoPlace
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[int64]models.Account),
		sessions: make(map[string]models.Session),
	}
}

func (m *MemoryStore) GetAccount(_ context.Context, uid int64) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[uid]
	if !ok {
		return nil, nil
	}
	return &acc, nil
}

func (m *MemoryStore) SaveAccount(_ context.Context, acc models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[acc.UserID] = acc
	return nil
}

func (m *MemoryStore) AppendPayment(_ context.Context, ev models.PaymentEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, ev)
	return nil
}

// Payments returns a copy of the payment log.
func (m *MemoryStore) Payments() []models.PaymentEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.PaymentEvent(nil), m.payments...)
}

func (m *MemoryStore) LoadPlaces(_ context.Context) ([]models.GeoPlace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.GeoPlace(nil), m.places...), nil
}

func (m *MemoryStore) AppendPlace(_ context.Context, p models.GeoPlace) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.places = append(m.places, p)
	return nil
}

func (m *MemoryStore) GetSession(_ context.Context, id string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return &sess, nil
}

func (m *MemoryStore) SaveSession(_ context.Context, sess models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
