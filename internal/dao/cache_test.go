package dao

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache_TTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewPageCache(time.Minute)
	c.now = func() time.Time { return now }

	c.Set("people:", Page{Cursor: "c1"})
	p, ok := c.Get("people:")
	require.True(t, ok)
	assert.Equal(t, "c1", p.Cursor)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("people:")
	assert.False(t, ok)

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestPageCache_InvalidatePrefix(t *testing.T) {
	c := NewPageCache(time.Minute)
	c.Set("people:", Page{})
	c.Set("people:c1", Page{})
	c.Set("posts:", Page{})

	c.InvalidatePrefix("people:")

	_, ok := c.Get("people:c1")
	assert.False(t, ok)
	_, ok = c.Get("posts:")
	assert.True(t, ok)

	c.Clear()
	_, ok = c.Get("posts:")
	assert.False(t, ok)
}

func TestCachedSource_Load(t *testing.T) {
	var calls atomic.Int32
	src := SourceFunc(func(_ context.Context, cursor string) (Page, error) {
		calls.Add(1)
		return Page{Items: people(1), Cursor: cursor + "+"}, nil
	})
	c := NewCachedSource("people", src, NewPageCache(time.Minute))

	p, err := c.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "+", p.Cursor)

	_, err = c.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	_, err = c.Load(context.Background(), "+")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())

	var inv Invalidator = c
	inv.Invalidate()
	_, err = c.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCachedSource_LoadErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	src := SourceFunc(func(context.Context, string) (Page, error) {
		if calls.Add(1) == 1 {
			return Page{}, ErrBadStatus
		}
		return Page{}, nil
	})
	c := NewCachedSource("people", src, NewPageCache(time.Minute))

	_, err := c.Load(context.Background(), "")
	require.ErrorIs(t, err, ErrBadStatus)

	_, err = c.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
