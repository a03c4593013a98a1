package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/data/db"
)

// saveAttempts bounds retries when another process holds the write lock.
const saveAttempts = 3

// SubmissionStore implements submission.Store using SQLite.
type SubmissionStore struct {
	db *db.DB
}

var _ submission.Store = (*SubmissionStore)(nil)

// NewSubmissionStore creates a new SQLite-backed submission store.
func NewSubmissionStore(db *db.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// Save inserts a submission. References are unique; saving a duplicate fails.
func (s *SubmissionStore) Save(ctx context.Context, sub submission.Submission) error {
	payload := string(sub.Payload)
	if payload == "" {
		payload = "null"
	}

	row := db.Submission{
		ID:        sub.ID,
		Kind:      string(sub.Kind),
		Reference: sub.Reference,
		Payload:   payload,
		CreatedAt: sub.CreatedAt.UnixNano(),
	}
	err := retryBusy(ctx, saveAttempts, func() error {
		return s.db.Queries().InsertSubmission(ctx, row)
	})
	if isUniqueViolation(err, "submissions.reference") {
		return fmt.Errorf("insert submission %s: %w", sub.Reference, submission.ErrDuplicateReference)
	}
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// Get returns the submission whose id or reference is key. References match
// case-insensitively. Returns submission.ErrNotFound if missing.
func (s *SubmissionStore) Get(ctx context.Context, key string) (submission.Submission, error) {
	key = strings.TrimSpace(key)
	row, err := s.db.Queries().GetSubmission(ctx, key)
	if IsNotFoundError(err) && strings.ToUpper(key) != key {
		row, err = s.db.Queries().GetSubmission(ctx, strings.ToUpper(key))
	}
	if IsNotFoundError(err) {
		return submission.Submission{}, submission.ErrNotFound
	}
	if err != nil {
		return submission.Submission{}, fmt.Errorf("get submission: %w", err)
	}
	return rowToSubmission(row), nil
}

// List returns all submissions ordered by newest first.
func (s *SubmissionStore) List(ctx context.Context) ([]submission.Submission, error) {
	rows, err := s.db.Queries().ListSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return rowsToSubmissions(rows), nil
}

// ListByKind returns the submissions of one kind ordered by newest first.
func (s *SubmissionStore) ListByKind(ctx context.Context, kind submission.Kind) ([]submission.Submission, error) {
	rows, err := s.db.Queries().ListSubmissionsByKind(ctx, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s submissions: %w", kind, err)
	}
	return rowsToSubmissions(rows), nil
}

// Count returns the total number of submissions.
func (s *SubmissionStore) Count(ctx context.Context) (int64, error) {
	count, err := s.db.Queries().CountSubmissions(ctx)
	if err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return count, nil
}

// Clear deletes all submissions in one transaction and returns how many
// were removed.
func (s *SubmissionStore) Clear(ctx context.Context) (int64, error) {
	var deleted int64
	err := retryBusy(ctx, saveAttempts, func() error {
		return s.db.WithTx(ctx, func(q *db.Queries) error {
			n, err := q.CountSubmissions(ctx)
			if err != nil {
				return err
			}
			if err := q.DeleteAllSubmissions(ctx); err != nil {
				return err
			}
			deleted = n
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("clear submissions: %w", err)
	}
	return deleted, nil
}

func rowsToSubmissions(rows []db.Submission) []submission.Submission {
	result := make([]submission.Submission, 0, len(rows))
	for _, row := range rows {
		result = append(result, rowToSubmission(row))
	}
	return result
}

func rowToSubmission(row db.Submission) submission.Submission {
	return submission.Submission{
		ID:        row.ID,
		Kind:      submission.Kind(row.Kind),
		Reference: row.Reference,
		Payload:   json.RawMessage(row.Payload),
		CreatedAt: time.Unix(0, row.CreatedAt),
	}
}
