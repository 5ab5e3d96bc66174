package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"natal-api/internal/metrics"
	"natal-api/internal/models"

	"github.com/rs/zerolog/log"
)

// UnlimitedBalance is reported for admin accounts.
const UnlimitedBalance = 999999

// AccountStore persists ledger accounts. GetAccount returns nil, nil for unknown users.
type AccountStore interface {
	GetAccount(ctx context.Context, uid int64) (*models.Account, error)
	SaveAccount(ctx context.Context, acc models.Account) error
}

// PaymentLog is the append-only payment history.
type PaymentLog interface {
	AppendPayment(ctx context.Context, ev models.PaymentEvent) error
}

// AccessPolicy carries admin identities and the payments switch.
type AccessPolicy struct {
	AdminIDs        map[int64]string
	PaymentsEnabled bool
}

// NewAccessPolicy builds a policy from a list of admin ids and the payment
// provider token. Payments are enabled for test and live provider tokens.
func NewAccessPolicy(adminIDs []int64, providerToken string) AccessPolicy {
	admins := make(map[int64]string, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = "admin"
	}
	return AccessPolicy{
		AdminIDs:        admins,
		PaymentsEnabled: strings.Contains(providerToken, "TEST") || strings.Contains(providerToken, "LIVE"),
	}
}

// IsAdmin reports whether uid has unlimited access
func (p AccessPolicy) IsAdmin(uid int64) bool {
	_, ok := p.AdminIDs[uid]
	return ok
}

// Package is a purchasable bundle of extended readings
type Package struct {
	Code     string `json:"code"`
	Readings int    `json:"readings"`
	Amount   int    `json:"amount"`
	Label    string `json:"label"`
}

// Packages lists the purchasable bundles keyed by code. Amounts are in kopecks.
var Packages = map[string]Package{
	"deep1": {Code: "deep1", Readings: 1, Amount: 30000, Label: "1 глубокий разбор"},
	"deep3": {Code: "deep3", Readings: 3, Amount: 60000, Label: "3 глубоких разбора"},
}

// Charge kinds
const (
	ChargeFreeFirst = "free_first"
	ChargeAdmin     = "admin"
	ChargePaid      = "paid"
)

// Charge describes how a reading was paid for
type Charge struct {
	Kind      string `json:"kind"`
	Balance   int    `json:"balance"`
	NextPrice int    `json:"next_price"`
}

// AccountSummary is the caller-facing view of an account
type AccountSummary struct {
	UserID    int64 `json:"uid"`
	Balance   int   `json:"balance"`
	Used      int   `json:"used"`
	NextPrice int   `json:"next_price"`
	Admin     bool  `json:"admin"`
}

// Invoice is a payment request ready to be handed to the payment provider
type Invoice struct {
	Package Package `json:"package"`
	Payload string  `json:"payload"`
}

// LedgerService meters access to extended readings
type LedgerService struct {
	accounts AccountStore
	payments PaymentLog
	policy   AccessPolicy
	now      func() time.Time

	mu sync.Mutex
}

// NewLedgerService creates a ledger over the given stores
func NewLedgerService(accounts AccountStore, payments PaymentLog, policy AccessPolicy) *LedgerService {
	return &LedgerService{
		accounts: accounts,
		payments: payments,
		policy:   policy,
		now:      time.Now,
	}
}

// Policy returns the access policy the ledger was built with
func (s *LedgerService) Policy() AccessPolicy {
	return s.policy
}

func (s *LedgerService) load(ctx context.Context, uid int64) (models.Account, error) {
	acc, err := s.accounts.GetAccount(ctx, uid)
	if err != nil {
		return models.Account{}, fmt.Errorf("service: failed to load account %d: %w", uid, err)
	}
	if acc == nil {
		return models.Account{UserID: uid}, nil
	}
	return *acc, nil
}

func (s *LedgerService) save(ctx context.Context, acc models.Account) error {
	if s.policy.IsAdmin(acc.UserID) {
		return nil
	}
	acc.UpdatedAt = s.now().UTC()
	if err := s.accounts.SaveAccount(ctx, acc); err != nil {
		return fmt.Errorf("service: failed to save account %d: %w", acc.UserID, err)
	}
	return nil
}

func nextPrice(used int) int {
	switch {
	case used == 0:
		return 0
	case used == 1:
		return 300
	case used <= 3:
		return 600
	default:
		return 200
	}
}

// Summary returns balance, usage and the price of the next reading
func (s *LedgerService) Summary(ctx context.Context, uid int64) (AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy.IsAdmin(uid) {
		return AccountSummary{UserID: uid, Balance: UnlimitedBalance, Admin: true}, nil
	}
	acc, err := s.load(ctx, uid)
	if err != nil {
		return AccountSummary{}, err
	}
	return AccountSummary{
		UserID:    uid,
		Balance:   acc.Balance,
		Used:      acc.Used,
		NextPrice: nextPrice(acc.Used),
	}, nil
}

// Balance returns the number of prepaid readings left
func (s *LedgerService) Balance(ctx context.Context, uid int64) (int, error) {
	sum, err := s.Summary(ctx, uid)
	return sum.Balance, err
}

// NextPrice returns the price in roubles of the next reading
func (s *LedgerService) NextPrice(ctx context.Context, uid int64) (int, error) {
	sum, err := s.Summary(ctx, uid)
	return sum.NextPrice, err
}

// ConsumeReading charges one extended reading. The first reading is free.
// Paid readings spend balance without counting towards usage.
func (s *LedgerService) ConsumeReading(ctx context.Context, uid int64) (Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy.IsAdmin(uid) {
		metrics.ReadingsTotal.WithLabelValues(ChargeAdmin).Inc()
		return Charge{Kind: ChargeAdmin, Balance: UnlimitedBalance}, nil
	}

	acc, err := s.load(ctx, uid)
	if err != nil {
		return Charge{}, err
	}

	if acc.Used == 0 {
		acc.Used++
		if err := s.save(ctx, acc); err != nil {
			return Charge{}, err
		}
		metrics.ReadingsTotal.WithLabelValues(ChargeFreeFirst).Inc()
		return Charge{Kind: ChargeFreeFirst, Balance: acc.Balance, NextPrice: nextPrice(acc.Used)}, nil
	}

	if acc.Balance <= 0 {
		metrics.ReadingsTotal.WithLabelValues("rejected").Inc()
		price := nextPrice(acc.Used)
		return Charge{Balance: acc.Balance, NextPrice: price},
			fmt.Errorf("service: user %d next reading costs %d: %w", uid, price, models.ErrInsufficientBalance)
	}

	acc.Balance--
	if err := s.save(ctx, acc); err != nil {
		return Charge{}, err
	}
	metrics.ReadingsTotal.WithLabelValues(ChargePaid).Inc()
	return Charge{Kind: ChargePaid, Balance: acc.Balance, NextPrice: nextPrice(acc.Used)}, nil
}

// Credit adds prepaid readings. No-op for admins.
func (s *LedgerService) Credit(ctx context.Context, uid int64, readings int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credit(ctx, uid, readings)
}

func (s *LedgerService) credit(ctx context.Context, uid int64, readings int) (int, error) {
	if s.policy.IsAdmin(uid) {
		return UnlimitedBalance, nil
	}
	acc, err := s.load(ctx, uid)
	if err != nil {
		return 0, err
	}
	acc.Balance += readings
	if err := s.save(ctx, acc); err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// IncrementUsed counts a delivered reading. No-op for admins.
func (s *LedgerService) IncrementUsed(ctx context.Context, uid int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy.IsAdmin(uid) {
		return nil
	}
	acc, err := s.load(ctx, uid)
	if err != nil {
		return err
	}
	acc.Used++
	return s.save(ctx, acc)
}

// CreateInvoice prepares a payment for package code
func (s *LedgerService) CreateInvoice(ctx context.Context, uid int64, code string) (Invoice, error) {
	if s.policy.IsAdmin(uid) {
		return Invoice{}, fmt.Errorf("service: user %d: %w", uid, models.ErrAdminUnlimited)
	}
	if !s.policy.PaymentsEnabled {
		return Invoice{}, fmt.Errorf("service: %w", models.ErrPaymentsDisabled)
	}
	pkg, ok := Packages[code]
	if !ok {
		return Invoice{}, fmt.Errorf("service: %q: %w", code, models.ErrUnknownPackage)
	}

	now := s.now()
	payload := fmt.Sprintf("%s_%d_%d", pkg.Code, uid, now.Unix())
	s.logPayment(ctx, models.PaymentEvent{
		At:      now.UTC(),
		UserID:  uid,
		Amount:  pkg.Amount,
		Payload: payload,
		Status:  models.PaymentInvoiceCreated,
	})
	return Invoice{Package: pkg, Payload: payload}, nil
}

// parsePayload splits "<code>_<uid>_<unix>" and returns the package and uid.
func parsePayload(payload string) (Package, int64, bool) {
	parts := strings.Split(payload, "_")
	if len(parts) != 3 {
		return Package{}, 0, false
	}
	pkg, ok := Packages[parts[0]]
	if !ok {
		return Package{}, 0, false
	}
	uid, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Package{}, 0, false
	}
	return pkg, uid, true
}

// PreCheckout validates a payload before the provider charges the user
func (s *LedgerService) PreCheckout(uid int64, payload string) error {
	_, owner, ok := parsePayload(payload)
	if !ok {
		return fmt.Errorf("service: %q: %w", payload, models.ErrUnknownPayload)
	}
	if owner != uid {
		return fmt.Errorf("service: %q for user %d: %w", payload, uid, models.ErrPayloadMismatch)
	}
	return nil
}

// ConfirmPayment credits the package a successful payment was made for and
// returns the new balance
func (s *LedgerService) ConfirmPayment(ctx context.Context, uid int64, payload string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, _, ok := parsePayload(payload)
	if !ok {
		metrics.PaymentsTotal.WithLabelValues("error").Inc()
		s.logPayment(ctx, models.PaymentEvent{At: s.now().UTC(), UserID: uid, Amount: amount, Payload: payload, Status: "error"})
		return 0, fmt.Errorf("service: %q: %w", payload, models.ErrUnknownPayload)
	}

	balance, err := s.credit(ctx, uid, pkg.Readings)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		amount = pkg.Amount
	}
	metrics.PaymentsTotal.WithLabelValues(models.PaymentSuccess).Inc()
	s.logPayment(ctx, models.PaymentEvent{At: s.now().UTC(), UserID: uid, Amount: amount, Payload: payload, Status: models.PaymentSuccess})
	log.Info().Int64("uid", uid).Str("package", pkg.Code).Int("balance", balance).Msg("service: payment confirmed")
	return balance, nil
}

func (s *LedgerService) logPayment(ctx context.Context, ev models.PaymentEvent) {
	if err := s.payments.AppendPayment(ctx, ev); err != nil {
		log.Error().Err(err).Int64("uid", ev.UserID).Str("payload", ev.Payload).Msg("service: failed to log payment")
	}
}
