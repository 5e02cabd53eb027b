package storage

import (
	"context"
	"fmt"

	"river-watch/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DatabaseProvider struct {
	pool *pgxpool.Pool
}

func NewDatabaseProvider(ctx context.Context, cfg *config.Config) (*DatabaseProvider, error) {
	poolCfg, err := pgxpool.ParseConfig(GetConnectionStringFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.Storage.MaxConns)

	dbPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseProvider{pool: dbPool}, nil
}

func GetConnectionStringFromConfig(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Storage.Username,
		cfg.Storage.Password,
		cfg.Storage.Host,
		cfg.Storage.Port,
		cfg.Storage.Database,
		cfg.Storage.SSLMode,
	)
}

func (p *DatabaseProvider) GetPool() *pgxpool.Pool {
	return p.pool
}

func (p *DatabaseProvider) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *DatabaseProvider) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
