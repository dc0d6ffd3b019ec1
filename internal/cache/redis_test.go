package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// With no redis behind the address every operation must degrade to a
// miss/no-op, never an error or panic.
func TestRedisCache_FailsOpen(t *testing.T) {
	t.Parallel()
	c := NewRedisCache(Config{Addr: "127.0.0.1:1"}, zap.NewExample())
	require.False(t, c.Available())

	ctx := context.Background()
	var dest map[string]any
	require.False(t, c.Get(ctx, "book:1", &dest))
	require.False(t, c.Set(ctx, "book:1", map[string]any{"id": 1}))
	require.False(t, c.Delete(ctx, "book:1"))
	require.False(t, c.DeletePattern(ctx, "books:*"))
	require.NoError(t, c.Close())
}
