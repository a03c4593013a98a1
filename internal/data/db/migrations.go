package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migration is a single versioned schema change with up and down SQL.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// migrationFile matches "NNNN_name.up.sql" and "NNNN_name.down.sql".
var migrationFile = regexp.MustCompile(`^(\d{4})_([a-z0-9_]+)\.(up|down)\.sql$`)

// loadMigrations reads the embedded SQL files and pairs them by version.
// Every version needs exactly one up and one down file.
func loadMigrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	byVersion := make(map[int]*Migration)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		version, name, direction, err := parseFilename(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("migration file %q: %w", entry.Name(), err)
		}

		body, err := fs.ReadFile(migrationsFS, path.Join("migrations", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version, Name: name}
			byVersion[version] = m
		}
		if m.Name != name {
			return nil, fmt.Errorf("migration %04d is named both %q and %q", version, m.Name, name)
		}

		slot := &m.UpSQL
		if direction == "down" {
			slot = &m.DownSQL
		}
		if *slot != "" {
			return nil, fmt.Errorf("duplicate %s file for migration %04d", direction, version)
		}
		*slot = string(body)
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, version := range slices.Sorted(maps.Keys(byVersion)) {
		m := byVersion[version]
		if m.UpSQL == "" || m.DownSQL == "" {
			return nil, fmt.Errorf("migration %04d needs both an up and a down file", version)
		}
		migrations = append(migrations, *m)
	}
	return migrations, nil
}

// parseFilename returns the version, name and direction encoded in a
// migration file name.
func parseFilename(filename string) (int, string, string, error) {
	match := migrationFile.FindStringSubmatch(filename)
	if match == nil {
		return 0, "", "", errors.New("want NNNN_name.up.sql or NNNN_name.down.sql")
	}

	version, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, "", "", fmt.Errorf("version %q: %w", match[1], err)
	}
	if version == 0 {
		return 0, "", "", errors.New("version must start at 0001")
	}
	return version, match[2], match[3], nil
}

// migrateUp applies every pending migration in version order.
func migrateUp(ctx context.Context, conn *sql.DB) error {
	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if err := ensureMigrationsTable(ctx, conn); err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		log.Debug().Int("version", m.Version).Str("name", m.Name).Msg("applying migration")
		if err := applyMigration(ctx, conn, m); err != nil {
			return fmt.Errorf("migration %04d (%s): %w", m.Version, m.Name, err)
		}
	}

	return nil
}

// MigrateDown reverts the last n applied migrations, newest first.
func MigrateDown(ctx context.Context, conn *sql.DB, n int) error {
	if n <= 0 {
		return fmt.Errorf("n must be positive, got %d", n)
	}

	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if err := ensureMigrationsTable(ctx, conn); err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return err
	}

	var toRevert []Migration
	for i := len(migrations) - 1; i >= 0; i-- {
		if applied[migrations[i].Version] {
			toRevert = append(toRevert, migrations[i])
		}
	}

	if n > len(toRevert) {
		return fmt.Errorf("requested %d down migrations but only %d are applied", n, len(toRevert))
	}

	for _, m := range toRevert[:n] {
		log.Debug().Int("version", m.Version).Str("name", m.Name).Msg("reverting migration")
		if err := revertMigration(ctx, conn, m); err != nil {
			return fmt.Errorf("revert migration %04d (%s): %w", m.Version, m.Name, err)
		}
	}

	return nil
}

func ensureMigrationsTable(ctx context.Context, conn *sql.DB) error {
	_, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}
	return nil
}

func appliedVersions(ctx context.Context, conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("query applied versions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// applyMigration runs the up SQL and records the version in one transaction.
func applyMigration(ctx context.Context, conn *sql.DB, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.UpSQL); err != nil {
		return fmt.Errorf("execute SQL: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
		m.Version, m.Name, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit()
}

// revertMigration runs the down SQL and drops the version record in one
// transaction.
func revertMigration(ctx context.Context, conn *sql.DB, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.DownSQL); err != nil {
		return fmt.Errorf("execute SQL: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = ?", m.Version); err != nil {
		return fmt.Errorf("remove migration record: %w", err)
	}

	return tx.Commit()
}
