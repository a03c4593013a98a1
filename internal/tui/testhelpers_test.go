package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/core/toast"
	"github.com/campusmart/campusmart/internal/core/toast/toasttest"
	"github.com/campusmart/campusmart/pkg/tuitest"
)

type fakeRecorder struct {
	kinds []submission.Kind
	err   error
}

func (f *fakeRecorder) Record(_ context.Context, kind submission.Kind, _ any) (submission.Submission, error) {
	if f.err != nil {
		return submission.Submission{}, f.err
	}
	f.kinds = append(f.kinds, kind)
	return submission.Submission{Kind: kind, Reference: "ABCD1234"}, nil
}

func newTestModel(t *testing.T, rec submission.Recorder) (Model, *toast.Store, *toasttest.Scheduler) {
	t.Helper()
	store, sched := toasttest.NewStore()
	m := New(context.Background(), Options{
		Toasts:   store,
		Recorder: rec,
		Logger:   zerolog.Nop(),
	})
	return m, store, sched
}

// send feeds msgs through Update in order and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return send(t, m, tuitest.Keys(s)...)
}
