package database

import (
	"context"
	"fmt"
	"time"

	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
)

// PostgresClient represents a PostgreSQL database client. The pgx pool handles
// health-checked pooling; the sqlx handle is what repositories consume.
type PostgresClient struct {
	pool *pgxpool.Pool
	db   *sqlx.DB
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	// Build connection string
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	// Configure connection pool
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	// Set max connections
	if config.MaxConns > 0 {
		poolConfig.MaxConns = int32(config.MaxConns)
	}

	// Set idle connections
	if config.IdleConns > 0 {
		poolConfig.MinConns = int32(config.IdleConns)
	}

	// Set connection lifetime, health check, etc.
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// Create connection pool
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	// Open the sqlx handle for repositories over the pgx stdlib driver
	db, err := sqlx.Connect("pgx", connString)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to open sqlx connection: %w", err)
	}
	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}

	return &PostgresClient{pool: pool, db: db}, nil
}

// GetPool returns the underlying connection pool
func (p *PostgresClient) GetPool() *pgxpool.Pool {
	return p.pool
}

// GetDB returns the sqlx handle for repositories
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Close closes the database connections
func (p *PostgresClient) Close() {
	if p.db != nil {
		_ = p.db.Close()
	}
	p.pool.Close()
}
