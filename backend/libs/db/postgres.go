package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const schemaTimeout = 30 * time.Second

// Pool holds database/sql pool limits. Zero fields fall back to DefaultPool.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	Lifetime    time.Duration
	IdleTime    time.Duration
	PingTimeout time.Duration
}

// DefaultPool suits a single consumer service instance.
var DefaultPool = Pool{
	MaxOpen:     25,
	MaxIdle:     5,
	Lifetime:    time.Hour,
	IdleTime:    30 * time.Minute,
	PingTimeout: 5 * time.Second,
}

func (p Pool) withDefaults() Pool {
	if p.MaxOpen <= 0 {
		p.MaxOpen = DefaultPool.MaxOpen
	}
	if p.MaxIdle <= 0 {
		p.MaxIdle = DefaultPool.MaxIdle
	}
	if p.MaxIdle > p.MaxOpen {
		p.MaxIdle = p.MaxOpen
	}
	if p.Lifetime <= 0 {
		p.Lifetime = DefaultPool.Lifetime
	}
	if p.IdleTime <= 0 {
		p.IdleTime = DefaultPool.IdleTime
	}
	if p.PingTimeout <= 0 {
		p.PingTimeout = DefaultPool.PingTimeout
	}
	return p
}

// Open returns a pgx/stdlib backed *sql.DB with pool limits applied and
// pings it before returning.
func Open(ctx context.Context, dsn string, pool Pool) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("db: empty DSN")
	}
	pool = pool.withDefaults()

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db: open: %w", err)
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetMaxIdleConns(pool.MaxIdle)
	sqlDB.SetConnMaxLifetime(pool.Lifetime)
	sqlDB.SetConnMaxIdleTime(pool.IdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, pool.PingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("db: ping: %w", err)
	}
	return sqlDB, nil
}

// Execer is the subset of *sql.DB used to apply schema statements.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ApplySchema runs idempotent DDL statements separated by semicolons.
func ApplySchema(ctx context.Context, db Execer, schema string) error {
	ctx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()

	for i, stmt := range SplitStatements(schema) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("db: schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// SplitStatements splits a schema file on semicolons, dropping empty
// statements and full-line "--" comments.
func SplitStatements(schema string) []string {
	var lines []string
	for _, line := range strings.Split(schema, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
