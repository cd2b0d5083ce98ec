// Package storetest provides the postgres database the store-backed tests
// run against.
package storetest

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feral-file/ff-catalog-indexer/internal/config"
)

const image = "postgres:18-alpine"

// Postgres is a test database. It is an external server when TEST_DB_HOST
// is set and a throwaway container otherwise.
type Postgres struct {
	DB        *gorm.DB
	container *postgres.PostgresContainer
}

// Start connects to the test database, starting a container if needed
func Start(ctx context.Context) (*Postgres, error) {
	p := &Postgres{}

	dsn, ok := externalDSN()
	if !ok {
		container, err := postgres.Run(ctx, image,
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start postgres container: %w", err)
		}
		p.container = container

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			_ = p.Terminate(ctx)
			return nil, fmt.Errorf("failed to get connection string: %w", err)
		}
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = p.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	p.DB = db
	return p, nil
}

// StartForTest starts a database owned by t. Without TEST_DB_HOST the test
// is skipped when no container runtime is reachable.
func StartForTest(t *testing.T) *Postgres {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
	}

	p, err := Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = p.Terminate(context.Background())
	})
	return p
}

// Terminate closes the connection and removes the container, if any
func (p *Postgres) Terminate(ctx context.Context) error {
	if p.DB != nil {
		if sqlDB, err := p.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if p.container == nil {
		return nil
	}
	return p.container.Terminate(ctx)
}

// Begin opens a transaction that is rolled back when t finishes
func (p *Postgres) Begin(t testing.TB) *gorm.DB {
	tx := p.DB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}

func externalDSN() (string, bool) {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		return "", false
	}

	cfg := config.DatabaseConfig{
		Host:     host,
		Port:     5432,
		User:     envOr("TEST_DB_USER", "postgres"),
		Password: envOr("TEST_DB_PASSWORD", "postgres"),
		DBName:   envOr("TEST_DB_NAME", "test_db"),
		SSLMode:  "disable",
	}
	if port, err := strconv.Atoi(os.Getenv("TEST_DB_PORT")); err == nil {
		cfg.Port = port
	}
	return cfg.DSN(), true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
