//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"natal-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) string {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"
}

func setupRepository(t *testing.T) (*Repository, string) {
	connString := setupTestDatabase(t)
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := NewRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx), "schema creation is idempotent")
	return repo, connString
}

func TestPostgresRepository_Places(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo, connString := setupRepository(t)
	ctx := context.Background()

	moscow := models.GeoPlace{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173, CountryCode: "RU"}
	require.NoError(t, repo.AppendPlace(ctx, moscow))

	conn, err := pgx.Connect(ctx, connString)
	require.NoError(t, err)
	defer conn.Close(ctx)

	n, err := CopyPlaces(ctx, conn, []models.GeoPlace{
		{Name: "Kyiv", Latitude: 50.4501, Longitude: 30.5234, CountryCode: "UA"},
		{Name: "Minsk", Latitude: 53.9006, Longitude: 27.559, CountryCode: "BY"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	places, err := repo.LoadPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, places, 3)
	assert.Equal(t, moscow, places[0])
	assert.Equal(t, "Minsk", places[2].Name)
}

func TestPostgresRepository_Accounts(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo, _ := setupRepository(t)
	ctx := context.Background()

	acc, err := repo.GetAccount(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, acc)

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveAccount(ctx, models.Account{UserID: 7, Balance: 3, Used: 1, UpdatedAt: at}))
	require.NoError(t, repo.SaveAccount(ctx, models.Account{UserID: 7, Balance: 2, Used: 1, UpdatedAt: at.Add(time.Hour)}))

	acc, err = repo.GetAccount(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, 2, acc.Balance)
	assert.Equal(t, 1, acc.Used)
	assert.True(t, acc.UpdatedAt.Equal(at.Add(time.Hour)))
}

func TestPostgresRepository_AppendPayment(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo, _ := setupRepository(t)
	ctx := context.Background()

	err := repo.AppendPayment(ctx, models.PaymentEvent{
		At:      time.Now().UTC(),
		UserID:  7,
		Amount:  30000,
		Payload: "deep1_7_1700000000",
		Status:  models.PaymentSuccess,
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, repo.db.QueryRow(ctx, `SELECT COUNT(*) FROM payment_logs WHERE uid = 7`).Scan(&count))
	assert.Equal(t, 1, count)
}
