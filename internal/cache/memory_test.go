package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory(time.Minute, 10)
	ctx := context.Background()

	_, ok := m.Get(ctx, "missing")
	assert.Equal(t, false, ok)

	m.Set(ctx, "a", []byte("payload"))

	got, ok := m.Get(ctx, "a")
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte("payload"), got)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory(time.Minute, 10)
	ctx := context.Background()

	m.Set(ctx, "a", []byte("one"))
	m.Set(ctx, "a", []byte("two"))

	got, ok := m.Get(ctx, "a")
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte("two"), got)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(180*time.Second, 10)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	m.Set(ctx, "a", []byte("payload"))

	m.now = func() time.Time { return base.Add(179 * time.Second) }
	_, ok := m.Get(ctx, "a")
	assert.Equal(t, true, ok)

	m.now = func() time.Time { return base.Add(181 * time.Second) }
	_, ok = m.Get(ctx, "a")
	assert.Equal(t, false, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryEvictsLeastRecentlyUsed(t *testing.T) {
	m := NewMemory(time.Minute, 2)
	ctx := context.Background()

	m.Set(ctx, "a", []byte("1"))
	m.Set(ctx, "b", []byte("2"))

	// Touch a so b becomes the eviction candidate.
	_, ok := m.Get(ctx, "a")
	assert.Equal(t, true, ok)

	m.Set(ctx, "c", []byte("3"))

	assert.Equal(t, 2, m.Len())

	_, ok = m.Get(ctx, "b")
	assert.Equal(t, false, ok)

	_, ok = m.Get(ctx, "a")
	assert.Equal(t, true, ok)

	_, ok = m.Get(ctx, "c")
	assert.Equal(t, true, ok)
}

func TestMemorySweep(t *testing.T) {
	m := NewMemory(180*time.Second, 10)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	m.Set(ctx, "a", []byte("1"))
	m.Set(ctx, "b", []byte("2"))

	m.now = func() time.Time { return base.Add(90 * time.Second) }
	m.Set(ctx, "c", []byte("3"))

	m.now = func() time.Time { return base.Add(200 * time.Second) }
	removed := m.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, m.Len())

	_, ok := m.Get(ctx, "c")
	assert.Equal(t, true, ok)
}
