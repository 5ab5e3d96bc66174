package repository

import (
	"context"
	"errors"
	"fmt"

	"natal-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the place, account and payment stores on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates missing tables
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to ensure schema: %w", err)
	}
	return nil
}

// LoadPlaces reads the whole place table in insertion order
func (r *Repository) LoadPlaces(ctx context.Context) ([]models.GeoPlace, error) {
	rows, err := r.db.Query(ctx, `SELECT name, latitude, longitude, country_iso FROM places ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query places: %w", err)
	}
	defer rows.Close()

	var places []models.GeoPlace
	for rows.Next() {
		var p models.GeoPlace
		if err := rows.Scan(&p.Name, &p.Latitude, &p.Longitude, &p.CountryCode); err != nil {
			return nil, fmt.Errorf("repository: failed to scan place: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating places: %w", err)
	}
	return places, nil
}

// AppendPlace adds a row to the place table. Existing rows are never touched.
func (r *Repository) AppendPlace(ctx context.Context, p models.GeoPlace) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO places (name, latitude, longitude, country_iso) VALUES ($1, $2, $3, $4)`,
		p.Name, p.Latitude, p.Longitude, p.CountryCode)
	if err != nil {
		return fmt.Errorf("repository: failed to insert place: %w", err)
	}
	return nil
}

// GetAccount returns nil without error when the user has no record yet
func (r *Repository) GetAccount(ctx context.Context, uid int64) (*models.Account, error) {
	var acc models.Account
	err := r.db.QueryRow(ctx,
		`SELECT uid, balance, used, last_updated FROM accounts WHERE uid = $1`, uid,
	).Scan(&acc.UserID, &acc.Balance, &acc.Used, &acc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to get account: %w", err)
	}
	return &acc, nil
}

// SaveAccount upserts the account record
func (r *Repository) SaveAccount(ctx context.Context, acc models.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (uid, balance, used, last_updated) VALUES ($1, $2, $3, $4)
		ON CONFLICT (uid) DO UPDATE SET balance = EXCLUDED.balance, used = EXCLUDED.used, last_updated = EXCLUDED.last_updated`,
		acc.UserID, acc.Balance, acc.Used, acc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to save account: %w", err)
	}
	return nil
}

// AppendPayment writes a payment log entry
func (r *Repository) AppendPayment(ctx context.Context, ev models.PaymentEvent) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payment_logs (ts, uid, amount, payload, status) VALUES ($1, $2, $3, $4, $5)`,
		ev.At, ev.UserID, ev.Amount, ev.Payload, ev.Status)
	if err != nil {
		return fmt.Errorf("repository: failed to insert payment log: %w", err)
	}
	return nil
}

// CopyPlaces bulk-loads places, used by the importer
func CopyPlaces(ctx context.Context, conn *pgx.Conn, places []models.GeoPlace) (int64, error) {
	n, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{"places"},
		[]string{"name", "latitude", "longitude", "country_iso"},
		pgx.CopyFromSlice(len(places), func(i int) ([]interface{}, error) {
			p := places[i]
			return []interface{}{p.Name, p.Latitude, p.Longitude, p.CountryCode}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy places: %w", err)
	}
	return n, nil
}
