//go:build integration

package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/store"
)

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("PAGESMITH_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	ctx := context.Background()
	b, err := New(ctx, Config{Addr: addr, Prefix: "pagesmith-test:"})
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	s := store.New(b, nil)
	defer s.Close()
	t.Cleanup(func() { _ = s.ResetState(ctx) })

	require.NoError(t, s.SaveState(ctx, store.State{Layout: layout.Default()}))
	st, err := s.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, layout.Default(), st.Layout)

	require.NoError(t, s.ResetState(ctx))
	_, err = s.LoadState(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
