// Package postgres persists document records and serves the history,
// analytics and insights aggregations.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connector owns the database handle with lazy, retry-on-failure
// initialization. The first caller dials; concurrent callers wait on the
// mutex for the in-flight attempt. A failed attempt leaves the connector
// uninitialized so the next call retries, which lets read endpoints
// degrade to empty responses while the database is down.
type Connector struct {
	dsn string
	log *slog.Logger

	mu sync.Mutex
	db *sql.DB
}

func NewConnector(dsn string, log *slog.Logger) *Connector {
	return &Connector{dsn: dsn, log: log}
}

func (c *Connector) DB(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}
	if c.dsn == "" {
		return nil, fmt.Errorf("database dsn not configured")
	}

	db, err := sql.Open("pgx", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		c.log.Warn("database connection failed, will retry on next use", "error", err)
		return nil, fmt.Errorf("db ping: %w", err)
	}

	c.log.Info("database connection established")
	c.db = db
	return c.db, nil
}

// Reset drops the cached handle after an operational failure so the
// next call dials fresh.
func (c *Connector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		_ = c.db.Close()
		c.db = nil
	}
}

func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
