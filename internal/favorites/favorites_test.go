package favorites

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type recordingStore struct {
	writes [][]string
	err    error
}

func (r *recordingStore) SetFavorites(_ context.Context, ids []string) error {
	r.writes = append(r.writes, ids)
	return r.err
}

func TestNewManagerDedupes(t *testing.T) {
	m := NewManager([]string{"a", "", "b", "a", "stale"}, nil, zerolog.Nop())
	if want := []string{"a", "b", "stale"}; !reflect.DeepEqual(m.IDs(), want) {
		t.Fatalf("IDs() = %v, want %v", m.IDs(), want)
	}
	if !m.IsFavorite("stale") {
		t.Fatalf("stale ids should be kept")
	}
}

func TestToggleTwiceRestoresMembershipAndPersistsTwice(t *testing.T) {
	ctx := context.Background()
	store := &recordingStore{}
	m := NewManager([]string{"x"}, store, zerolog.Nop())
	before := m.IDs()

	if added := m.Toggle(ctx, "y"); !added {
		t.Fatalf("first Toggle() should add")
	}
	if !m.IsFavorite("y") || !m.Has("y") {
		t.Fatalf("expected y to be a favorite")
	}
	if added := m.Toggle(ctx, "y"); added {
		t.Fatalf("second Toggle() should remove")
	}

	if !reflect.DeepEqual(m.IDs(), before) {
		t.Fatalf("IDs() = %v, want %v", m.IDs(), before)
	}
	if len(store.writes) != 2 {
		t.Fatalf("writes = %d, want 2", len(store.writes))
	}
	if want := []string{"x", "y"}; !reflect.DeepEqual(store.writes[0], want) {
		t.Fatalf("first write = %v, want %v", store.writes[0], want)
	}
	if want := []string{"x"}; !reflect.DeepEqual(store.writes[1], want) {
		t.Fatalf("second write = %v, want %v", store.writes[1], want)
	}
}

func TestToggleSwallowsPersistenceFailure(t *testing.T) {
	var logs bytes.Buffer
	store := &recordingStore{err: errors.New("quota exceeded")}
	m := NewManager(nil, store, zerolog.New(&logs))

	if !m.Toggle(context.Background(), "42") {
		t.Fatalf("Toggle() should report the job as added")
	}
	if !m.IsFavorite("42") || m.Len() != 1 {
		t.Fatalf("in-memory state should survive a failed write")
	}
	if !strings.Contains(logs.String(), "favorites not saved") {
		t.Fatalf("expected a warning log, got %q", logs.String())
	}
}
