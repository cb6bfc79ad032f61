package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/feral-file/ff-hotwallet/internal/config"
)

var testDB *gorm.DB

// TestMain opens the ledger database through Open, either on TEST_DB_HOST or on a
// throwaway postgres container, and loads the schema and seed rows
func TestMain(m *testing.M) {
	os.Exit(runWithDatabase(m))
}

func runWithDatabase(m *testing.M) int {
	ctx := context.Background()

	cfg, terminate, err := testDatabaseConfig(ctx)
	if err != nil {
		fmt.Printf("Failed to prepare test database: %v\n", err)
		return 1
	}
	defer terminate()

	testDB, err = Open(cfg, false)
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		return 1
	}

	for _, file := range []string{"init_pg_db.sql", "pg_test_data.sql"} {
		if err := execSQLFile(testDB, filepath.Join("..", "..", "db", file)); err != nil {
			fmt.Printf("Failed to initialize database: %v\n", err)
			return 1
		}
	}

	return m.Run()
}

// testDatabaseConfig returns the connection settings and a cleanup func for the container, if any
func testDatabaseConfig(ctx context.Context) (config.DatabaseConfig, func(), error) {
	cfg := config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		User:         envOr("TEST_DB_USER", "postgres"),
		Password:     envOr("TEST_DB_PASSWORD", "postgres"),
		DBName:       envOr("TEST_DB_NAME", "hotwallet_test"),
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}

	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		port, err := strconv.Atoi(envOr("TEST_DB_PORT", "5432"))
		if err != nil {
			return cfg, nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
		}
		cfg.Host = host
		cfg.Port = port
		fmt.Printf("Using external database: %s:%d/%s\n", cfg.Host, cfg.Port, cfg.DBName)
		return cfg, func() {}, nil
	}

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(cfg.DBName),
		postgres.WithUsername(cfg.User),
		postgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}
	terminate := func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		return cfg, nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		terminate()
		return cfg, nil, fmt.Errorf("failed to get container port: %w", err)
	}
	cfg.Host = host
	cfg.Port = port.Int()

	return cfg, terminate, nil
}

func execSQLFile(db *gorm.DB, path string) error {
	content, err := os.ReadFile(path) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if _, err := sqlDB.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute %s: %w", path, err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// initPGTestDB wraps each test in a transaction that is rolled back on cleanup
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// TestPostgreSQLStore runs the ledger suite against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	require.NotNil(t, testDB, "test database not initialized")

	RunStoreTests(t, initPGTestDB, func(t *testing.T) {})
}
