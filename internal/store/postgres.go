package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oyaguma3/macauth-radius-server/db"
	"github.com/oyaguma3/macauth-radius-server/internal/config"
	"github.com/sony/gobreaker"
)

// PostgresClient はPostgreSQLコネクションプールをラップする。
// VLANルール参照はCircuit Breaker経由で実行され、
// DB障害時の問い合わせ連打を抑止する。
type PostgresClient struct {
	pool *pgxpool.Pool
	cb   *gobreaker.CircuitBreaker
}

// NewPostgresClient は新しいPostgresClientを生成し、接続確認を行う。
func NewPostgresClient(cfg *config.Config) (*PostgresClient, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	poolCfg.MaxConns = config.DBPoolMaxConns
	poolCfg.ConnConfig.ConnectTimeout = config.DBConnectTimeout

	ctx, cancel := context.WithTimeout(context.Background(), config.DBConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	// 接続確認
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &PostgresClient{
		pool: pool,
		cb:   gobreaker.NewCircuitBreaker(cbSettings),
	}, nil
}

// Migrate は埋め込みマイグレーションを適用する。
func (p *PostgresClient) Migrate(dsn string) error {
	src, err := iofs.New(db.MigrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	// golang-migrateのpgx/v5ドライバはpgx5スキームを要求する
	m, err := migrate.NewWithSourceInstance("iofs", src, strings.Replace(dsn, "postgres://", "pgx5://", 1))
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Close は接続プールを閉じる。
func (p *PostgresClient) Close() {
	p.pool.Close()
}

// Pool は内部のpgxpool.Poolを返す。
func (p *PostgresClient) Pool() *pgxpool.Pool {
	return p.pool
}

// execute はCircuit Breaker経由でDB操作を実行する。
// Open状態のエラーもErrPostgresUnavailableに丸める。
func (p *PostgresClient) execute(fn func() (any, error)) (any, error) {
	result, err := p.cb.Execute(fn)
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("%w: circuit breaker open", ErrPostgresUnavailable)
		}
		return nil, err
	}
	return result, nil
}
