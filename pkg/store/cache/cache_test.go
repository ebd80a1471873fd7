package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	val, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestKey_Deterministic(t *testing.T) {
	a := Key("loan", map[string]any{"principal": 100000, "term_years": 10})
	b := Key("loan", map[string]any{"term_years": 10, "principal": 100000})
	assert.Equal(t, a, b, "field order must not matter")

	c := Key("loan", map[string]any{"principal": 200000, "term_years": 10})
	assert.NotEqual(t, a, c)

	d := Key("mortgage", map[string]any{"principal": 100000, "term_years": 10})
	assert.NotEqual(t, a, d, "calculator name is part of the key")
}
