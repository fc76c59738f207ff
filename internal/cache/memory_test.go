package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClient(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		c := NewMemory("t")
		require.NoError(t, c.Set(ctx, "k", "v", 0))

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("missing key", func(t *testing.T) {
		c := NewMemory("t")
		_, err := c.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)

		ok, err := c.Exists(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ttl expiry", func(t *testing.T) {
		c := NewMemory("t")
		require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))

		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		c := NewMemory("t")
		require.NoError(t, c.Set(ctx, "k", "v", 0))

		time.Sleep(5 * time.Millisecond)

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("delete", func(t *testing.T) {
		c := NewMemory("t")
		require.NoError(t, c.Set(ctx, "k", "v", 0))
		require.NoError(t, c.Delete(ctx, "k"))

		ok, err := c.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("overwrite replaces value and ttl", func(t *testing.T) {
		c := NewMemory("t")
		require.NoError(t, c.Set(ctx, "k", "old", time.Millisecond))
		require.NoError(t, c.Set(ctx, "k", "new", time.Minute))

		time.Sleep(5 * time.Millisecond)

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "new", got)
	})

	t.Run("prefixes keep instances apart", func(t *testing.T) {
		a := NewMemory("a")
		b := NewMemory("b")
		require.NoError(t, a.Set(ctx, "k", "va", 0))
		require.NoError(t, b.Set(ctx, "k", "vb", 0))

		got, err := a.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "va", got)
	})
}

func TestNewDefaultsToMemory(t *testing.T) {
	c, err := New(Config{Driver: "memory", Prefix: "p"})
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()

	require.NoError(t, c.Set(context.Background(), "k", "v", 0))
	got, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
