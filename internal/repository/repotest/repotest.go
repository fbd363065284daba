// Package repotest holds behaviour suites every repository implementation must pass.
// Backends call them from their own tests with a constructor for an empty store.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tick separates timestamps of consecutive writes; stores keep microseconds.
const tick = 2 * time.Millisecond

func ptr[V any](v V) *V {
	return &v
}

func requireIDs[T any](t *testing.T, want []uuid.UUID, items []T, id func(T) uuid.UUID) {
	t.Helper()
	got := make([]uuid.UUID, len(items))
	for i := range items {
		got[i] = id(items[i])
	}
	require.Equal(t, want, got, "unexpected listing:\n%s", spew.Sdump(items))
}

func assertTimestamps(t *testing.T, createdAt, updatedAt time.Time) {
	t.Helper()
	assert.False(t, createdAt.IsZero(), "created_at not set")
	assert.True(t, createdAt.Equal(updatedAt), "created_at %s != updated_at %s", createdAt, updatedAt)
}

func assertBumped(t *testing.T, before, after time.Time) {
	t.Helper()
	assert.True(t, after.After(before), "updated_at did not advance: %s -> %s", before, after)
}

func ctx() context.Context {
	return context.Background()
}
