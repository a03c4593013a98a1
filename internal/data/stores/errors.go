package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/campusmart/campusmart/internal/data/db"
)

var corruptionCodes = []int{
	sqlite3.SQLITE_CORRUPT,
	sqlite3.SQLITE_NOTADB,
	sqlite3.SQLITE_CANTOPEN,
}

var corruptionMessages = []string{
	"database disk image is malformed",
	"file is not a database",
	"database corruption",
}

// sqliteCode extracts the primary result code from a driver error.
func sqliteCode(err error) (int, bool) {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0, false
	}
	return sqliteErr.Code() & 0xff, true
}

// IsBusyError reports whether err is SQLITE_BUSY.
func IsBusyError(err error) bool {
	code, ok := sqliteCode(err)
	return ok && code == sqlite3.SQLITE_BUSY
}

// IsCorruptionError reports whether err means the database file is unusable.
func IsCorruptionError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := sqliteCode(err); ok {
		return slices.Contains(corruptionCodes, code)
	}
	msg := err.Error()
	return slices.ContainsFunc(corruptionMessages, func(m string) bool {
		return strings.Contains(msg, m)
	})
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on
// column, given as "table.column".
func isUniqueViolation(err error, column string) bool {
	code, ok := sqliteCode(err)
	return ok && code == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

// IsNotFoundError reports whether err is sql.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// retryBusy runs fn again while it fails with SQLITE_BUSY, up to attempts
// times in total.
func retryBusy(ctx context.Context, attempts int, fn func() error) error {
	backoff := 20 * time.Millisecond
	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsBusyError(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return err
}

// RecoverFromCorruption moves the database file and its WAL and SHM
// companions aside under a timestamped name so the next Open starts fresh.
// It returns the path of the backed up database file; missing files are
// skipped.
func RecoverFromCorruption(dataDir string) (string, error) {
	dbPath := filepath.Join(dataDir, db.FileName)
	backupPath := fmt.Sprintf("%s.corrupt.%s", dbPath, time.Now().Format("20060102-150405"))

	// Stale WAL/SHM files left next to a fresh database make SQLite refuse it.
	for _, suffix := range []string{"", "-wal", "-shm"} {
		src := dbPath + suffix
		err := os.Rename(src, backupPath+suffix)
		switch {
		case err == nil, errors.Is(err, os.ErrNotExist):
			continue
		case suffix == "":
			return "", fmt.Errorf("back up corrupted database: %w", err)
		}
		if rmErr := os.Remove(src); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			return "", fmt.Errorf("back up or remove %s: %w", filepath.Base(src), err)
		}
	}

	return backupPath, nil
}
