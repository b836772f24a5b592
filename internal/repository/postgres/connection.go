// Package postgres implements the repository against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskboard/config"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

var errNotStarted = errors.New("postgres: pool not started")

// Postgres stores users, projects and tasks in PostgreSQL through a pgx pool.
type Postgres struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *pgxpool.Pool
	cfg     config.PostgresConfig
}

// New creates a Postgres repository instance. The pool is opened by OnStart.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Postgres {
	return &Postgres{
		baseCtx: ctx,
		log:     log.Named("repo.postgres"),
		cfg:     cfg.Postgres,
	}
}

// OnStart applies pending migrations and opens the pool.
func (p *Postgres) OnStart(_ context.Context) error {
	if err := p.migrate(); err != nil {
		return err
	}
	pool, err := p.openPool()
	if err != nil {
		return err
	}
	p.db = pool
	p.log.Infow("postgres ready", "host", p.cfg.Host, "db", p.cfg.DBName)
	return nil
}

func (p *Postgres) openPool() (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = p.cfg.MaxConns
	poolCfg.MinConns = p.cfg.MinConns

	ctx, cancel := context.WithTimeout(p.baseCtx, p.cfg.QueryTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pool: %w", err)
	}
	return pool, nil
}

// migrate runs goose over a short-lived database/sql handle; goose does not speak pgx pools.
func (p *Postgres) migrate() error {
	sqlDB, err := sql.Open("postgres", p.cfg.DSN())
	if err != nil {
		return fmt.Errorf("open sql: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	ctx, cancel := context.WithTimeout(p.baseCtx, p.cfg.MigrateTimeout)
	defer cancel()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, p.cfg.MigrationsDir); err != nil {
		return fmt.Errorf("migrate %s: %w", p.cfg.MigrationsDir, err)
	}
	return nil
}

// queryCtx bounds a single repository call by postgres.query_timeout.
func (p *Postgres) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.QueryTimeout)
}

// OnStop closes the pool.
func (p *Postgres) OnStop(_ context.Context) error {
	if p.db != nil {
		p.db.Close()
		p.db = nil
	}
	return nil
}

// Ping checks the pool can reach the database.
func (p *Postgres) Ping(ctx context.Context) error {
	if p.db == nil {
		return errNotStarted
	}
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()
	return p.db.Ping(ctx)
}
