package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB and *sql.Tx used by Queries.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries runs the application's statements against a DBTX.
type Queries struct {
	db DBTX
}

// New binds queries to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns queries bound to tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Submission is a row of the submissions table.
type Submission struct {
	ID        string
	Kind      string
	Reference string
	Payload   string
	CreatedAt int64
}

const insertSubmission = `INSERT INTO submissions (id, kind, reference, payload, created_at)
VALUES (?, ?, ?, ?, ?)`

func (q *Queries) InsertSubmission(ctx context.Context, arg Submission) error {
	_, err := q.db.ExecContext(ctx, insertSubmission,
		arg.ID,
		arg.Kind,
		arg.Reference,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

const getSubmission = `SELECT id, kind, reference, payload, created_at
FROM submissions WHERE id = ? OR reference = ?`

// GetSubmission matches key against both the id and the reference.
func (q *Queries) GetSubmission(ctx context.Context, key string) (Submission, error) {
	row := q.db.QueryRowContext(ctx, getSubmission, key, key)
	var s Submission
	err := row.Scan(&s.ID, &s.Kind, &s.Reference, &s.Payload, &s.CreatedAt)
	return s, err
}

const listSubmissions = `SELECT id, kind, reference, payload, created_at
FROM submissions ORDER BY created_at DESC, rowid DESC`

func (q *Queries) ListSubmissions(ctx context.Context) ([]Submission, error) {
	rows, err := q.db.QueryContext(ctx, listSubmissions)
	if err != nil {
		return nil, err
	}
	return scanSubmissions(rows)
}

const listSubmissionsByKind = `SELECT id, kind, reference, payload, created_at
FROM submissions WHERE kind = ? ORDER BY created_at DESC, rowid DESC`

func (q *Queries) ListSubmissionsByKind(ctx context.Context, kind string) ([]Submission, error) {
	rows, err := q.db.QueryContext(ctx, listSubmissionsByKind, kind)
	if err != nil {
		return nil, err
	}
	return scanSubmissions(rows)
}

func scanSubmissions(rows *sql.Rows) ([]Submission, error) {
	defer func() { _ = rows.Close() }()

	var items []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.Kind, &s.Reference, &s.Payload, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countSubmissions = `SELECT COUNT(*) FROM submissions`

func (q *Queries) CountSubmissions(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countSubmissions).Scan(&n)
	return n, err
}

const deleteAllSubmissions = `DELETE FROM submissions`

func (q *Queries) DeleteAllSubmissions(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllSubmissions)
	return err
}
