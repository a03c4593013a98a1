// Package submission defines the audit trail of accepted form submissions.
package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/randid"
)

// Kind identifies the form a submission came from.
type Kind string

const (
	KindContact Kind = "contact"
	KindSeller  Kind = "seller"
)

// ReferenceLength is the number of characters in a submission reference.
const ReferenceLength = 8

// ErrNotFound is returned when a submission does not exist.
var ErrNotFound = errors.New("submission not found")

// ErrDuplicateReference is returned by Store.Save when the reference is
// already taken.
var ErrDuplicateReference = errors.New("submission reference already in use")

// referenceAttempts bounds how many fresh references Record tries.
const referenceAttempts = 3

// Submission is one accepted form payload.
type Submission struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Reference string          `json:"reference"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store persists submissions.
type Store interface {
	Save(ctx context.Context, s Submission) error
	// Get looks a submission up by id or reference.
	Get(ctx context.Context, key string) (Submission, error)
	List(ctx context.Context) ([]Submission, error)
	ListByKind(ctx context.Context, kind Kind) ([]Submission, error)
	Count(ctx context.Context) (int64, error)
	// Clear deletes every submission and reports how many were removed.
	Clear(ctx context.Context) (int64, error)
}

// Recorder turns a form payload into a stored submission.
type Recorder interface {
	Record(ctx context.Context, kind Kind, payload any) (Submission, error)
}

// StoreRecorder records submissions into a Store.
type StoreRecorder struct {
	store  Store
	now    func() time.Time
	newRef func() string
}

var _ Recorder = (*StoreRecorder)(nil)

// NewRecorder creates a recorder backed by store.
func NewRecorder(store Store) *StoreRecorder {
	return &StoreRecorder{
		store:  store,
		now:    time.Now,
		newRef: func() string { return randid.Reference(ReferenceLength) },
	}
}

// Record marshals payload and saves it with a fresh id and reference. A
// reference collision is retried with a new reference.
func (r *StoreRecorder) Record(ctx context.Context, kind Kind, payload any) (Submission, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Submission{}, fmt.Errorf("marshal %s payload: %w", kind, err)
	}

	s := Submission{
		ID:        uuid.NewString(),
		Kind:      kind,
		Payload:   data,
		CreatedAt: r.now(),
	}

	for range referenceAttempts {
		s.Reference = r.newRef()
		err = r.store.Save(ctx, s)
		if !errors.Is(err, ErrDuplicateReference) {
			break
		}
	}
	if err != nil {
		return Submission{}, fmt.Errorf("save %s submission: %w", kind, err)
	}

	return s, nil
}
