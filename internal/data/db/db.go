// Package db owns the SQLite connection, schema migrations, and queries.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// FileName is the database file created inside the data directory.
const FileName = "campusmart.db"

const (
	maxRetries  = 5
	initialWait = 100 * time.Millisecond
)

// OpenOptions tunes the connection pool.
type OpenOptions struct {
	MaxOpenConns int
	MaxIdleConns int
	BusyTimeout  int // milliseconds
}

// DefaultOpenOptions returns the pool settings used when config is silent.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		BusyTimeout:  5000,
	}
}

// DB wraps a SQL database connection with retry logic and typed queries.
type DB struct {
	conn    *sql.DB
	queries *Queries
}

// Open connects to <dataDir>/campusmart.db and applies pending migrations.
func Open(dataDir string, opts OpenOptions) (*DB, error) {
	dbPath := filepath.Join(dataDir, FileName)

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", dbPath, opts.BusyTimeout)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(opts.MaxOpenConns)
	conn.SetMaxIdleConns(opts.MaxIdleConns)
	conn.SetConnMaxLifetime(0)

	db := &DB{
		conn:    conn,
		queries: New(conn),
	}

	ctx := context.Background()
	if err := db.pingWithRetry(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := migrateUp(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn exposes the raw connection for migrations and tests.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Queries returns the query set bound to the connection.
func (db *DB) Queries() *Queries {
	return db.queries
}

// WithTx executes fn within a transaction, rolling back when fn fails.
func (db *DB) WithTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(db.queries.WithTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// pingWithRetry pings the database with exponential backoff.
func (db *DB) pingWithRetry(ctx context.Context) error {
	wait := initialWait
	var err error
	for i := range maxRetries {
		if err = db.conn.PingContext(ctx); err == nil {
			return nil
		}

		if i < maxRetries-1 {
			time.Sleep(wait)
			wait *= 2
		}
	}

	return fmt.Errorf("ping database after %d attempts: %w", maxRetries, err)
}
