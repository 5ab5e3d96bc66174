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

// MockLedgerService is a mock implementation of the LedgerService interface
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Summary(ctx context.Context, uid int64) (service.AccountSummary, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).(service.AccountSummary), args.Error(1)
}

func (m *MockLedgerService) CreateInvoice(ctx context.Context, uid int64, code string) (service.Invoice, error) {
	args := m.Called(ctx, uid, code)
	return args.Get(0).(service.Invoice), args.Error(1)
}

func (m *MockLedgerService) PreCheckout(uid int64, payload string) error {
	return m.Called(uid, payload).Error(0)
}

func (m *MockLedgerService) ConfirmPayment(ctx context.Context, uid int64, payload string, amount int) (int, error) {
	args := m.Called(ctx, uid, payload, amount)
	return args.Int(0), args.Error(1)
}

// MockReadingService is a mock implementation of the ReadingService interface
type MockReadingService struct {
	mock.Mock
}

func (m *MockReadingService) Deep(ctx context.Context, uid int64, baseText string) (service.Reading, error) {
	args := m.Called(ctx, uid, baseText)
	return args.Get(0).(service.Reading), args.Error(1)
}

func TestAccountHandler_Account(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ledger := new(MockLedgerService)
	ledger.On("Summary", mock.Anything, int64(7)).Return(service.AccountSummary{UserID: 7, Balance: 2, Used: 1, NextPrice: 300}, nil)
	h := NewAccountHandler(ledger, new(MockReadingService))

	w := serve(h.Account, http.MethodGet, "/accounts/7", "", gin.Param{Key: "uid", Value: "7"})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 2.0, body["balance"])
	assert.Equal(t, 300.0, body["next_price"])

	w = serve(h.Account, http.MethodGet, "/accounts/me", "", gin.Param{Key: "uid", Value: "me"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	ledger.AssertExpectations(t)
}

func TestAccountHandler_Reading(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uid := gin.Param{Key: "uid", Value: "7"}

	tests := []struct {
		name           string
		body           string
		reading        service.Reading
		err            error
		mockCall       bool
		expectedStatus int
		check          func(t *testing.T, body map[string]interface{})
	}{
		{
			name:           "missing base text",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "delivered",
			body:           `{"base_text":"chart"}`,
			reading:        service.Reading{Text: "deep", Charge: service.Charge{Kind: service.ChargeFreeFirst}},
			mockCall:       true,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "deep", body["text"])
				assert.Equal(t, false, body["pending"])
			},
		},
		{
			name:           "insufficient balance",
			body:           `{"base_text":"chart"}`,
			reading:        service.Reading{Charge: service.Charge{NextPrice: 600}},
			err:            models.ErrInsufficientBalance,
			mockCall:       true,
			expectedStatus: http.StatusPaymentRequired,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "insufficient balance", body["error"])
				assert.Equal(t, 600.0, body["next_price"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readings := new(MockReadingService)
			if tt.mockCall {
				readings.On("Deep", mock.Anything, int64(7), "chart").Return(tt.reading, tt.err)
			}
			h := NewAccountHandler(new(MockLedgerService), readings)

			w := serve(h.Reading, http.MethodPost, "/accounts/7/readings", tt.body, uid)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, decode(t, w))
			}
			readings.AssertExpectations(t)
		})
	}
}

func TestAccountHandler_Payments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invoice", func(t *testing.T) {
		ledger := new(MockLedgerService)
		ledger.On("CreateInvoice", mock.Anything, int64(7), "deep1").
			Return(service.Invoice{Package: service.Packages["deep1"], Payload: "deep1_7_1"}, nil)

		w := serve(NewAccountHandler(ledger, nil).Invoice, http.MethodPost, "/payments/invoices", `{"uid":7,"package":"deep1"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "deep1_7_1", decode(t, w)["payload"])
		ledger.AssertExpectations(t)
	})

	t.Run("invoice disabled", func(t *testing.T) {
		ledger := new(MockLedgerService)
		ledger.On("CreateInvoice", mock.Anything, int64(7), "deep1").Return(service.Invoice{}, models.ErrPaymentsDisabled)

		w := serve(NewAccountHandler(ledger, nil).Invoice, http.MethodPost, "/payments/invoices", `{"uid":7,"package":"deep1"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("precheckout", func(t *testing.T) {
		ledger := new(MockLedgerService)
		ledger.On("PreCheckout", int64(7), "deep1_7_1").Return(nil)
		ledger.On("PreCheckout", int64(8), "deep1_7_1").Return(models.ErrPayloadMismatch)
		h := NewAccountHandler(ledger, nil)

		w := serve(h.PreCheckout, http.MethodPost, "/payments/precheckout", `{"uid":7,"payload":"deep1_7_1"}`)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = serve(h.PreCheckout, http.MethodPost, "/payments/precheckout", `{"uid":8,"payload":"deep1_7_1"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		ledger.AssertExpectations(t)
	})

	t.Run("confirm", func(t *testing.T) {
		ledger := new(MockLedgerService)
		ledger.On("ConfirmPayment", mock.Anything, int64(7), "deep3_7_1", 60000).Return(3, nil)

		w := serve(NewAccountHandler(ledger, nil).Confirm, http.MethodPost, "/payments/confirm", `{"uid":7,"payload":"deep3_7_1","amount":60000}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3.0, decode(t, w)["balance"])
		ledger.AssertExpectations(t)
	})

	t.Run("confirm malformed body", func(t *testing.T) {
		w := serve(NewAccountHandler(new(MockLedgerService), nil).Confirm, http.MethodPost, "/payments/confirm", `{"payload":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
