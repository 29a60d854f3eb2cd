package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/terminus/internal/blob"
	"github.com/roach88/terminus/internal/testutil"
)

var epoch = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

// createTestStore opens a store over a fresh in-memory backend with a frozen clock.
func createTestStore(t *testing.T, opts ...Option) (*Store, *blob.Memory, *testutil.Clock) {
	t.Helper()
	mem := blob.NewMemory()
	clock := testutil.NewClock(epoch)
	s := reopen(t, mem, append([]Option{WithClock(clock.Now)}, opts...)...)
	return s, mem, clock
}

// reopen opens a new store over an existing backend, as a restart would.
func reopen(t *testing.T, backend blob.Backend, opts ...Option) *Store {
	t.Helper()
	s, err := Open(context.Background(), backend, opts...)
	require.NoError(t, err)
	return s
}
