package models

import "time"

// Account is a user's metered-access ledger record.
type Account struct {
	UserID    int64     `json:"uid"`
	Balance   int       `json:"balance"`
	Used      int       `json:"used"`
	UpdatedAt time.Time `json:"last_updated"`
}

// PaymentEvent is an append-only payment log entry.
type PaymentEvent struct {
	At      time.Time `json:"timestamp"`
	UserID  int64     `json:"uid"`
	Amount  int       `json:"amount"`
	Payload string    `json:"payload"`
	Status  string    `json:"status"`
}

const (
	PaymentInvoiceCreated = "invoice_created"
	PaymentSuccess        = "success"
)
