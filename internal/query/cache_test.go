package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Fetch_CachesWithinTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cache := New[int](time.Minute)
	calls := 0
	load := func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	}

	// Act
	first, err := cache.Fetch(ctx, "total", load)
	require.NoError(t, err)
	second, err := cache.Fetch(ctx, "total", load)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 42, first)
	assert.Equal(t, 42, second)
	assert.Equal(t, 1, calls)
}

func TestCache_Fetch_ReloadsAfterExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cache := New[int](10 * time.Millisecond)
	calls := 0
	load := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	// Act
	first, err := cache.Fetch(ctx, "total", load)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	second, err := cache.Fetch(ctx, "total", load)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestCache_Fetch_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cache := New[string](time.Minute)
	calls := 0
	load := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("db down")
		}
		return "ok", nil
	}

	// Act
	_, err := cache.Fetch(ctx, "list", load)
	require.Error(t, err)
	value, err := cache.Fetch(ctx, "list", load)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
	assert.Equal(t, 2, calls)
}

func TestCache_Fetch_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cache := New[int](time.Minute)
	var calls atomic.Int64
	load := func(ctx context.Context) (int, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return 7, nil
	}

	// Act - many goroutines fetch the same key at once
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := cache.Fetch(ctx, "snapshot", load)
			assert.NoError(t, err)
			assert.Equal(t, 7, value)
		}()
	}
	wg.Wait()

	// Assert - one flight served them all
	assert.Equal(t, int64(1), calls.Load())
}

func TestCache_Invalidate_DropsKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cache := New[int](time.Minute)
	calls := 0
	load := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, err := cache.Fetch(ctx, "a", load)
	require.NoError(t, err)
	_, err = cache.Fetch(ctx, "b", load)
	require.NoError(t, err)

	// Act
	cache.Invalidate("a")

	// Assert - "a" reloads, "b" stays cached
	a, err := cache.Fetch(ctx, "a", load)
	require.NoError(t, err)
	assert.Equal(t, 3, a)
	b, err := cache.Fetch(ctx, "b", load)
	require.NoError(t, err)
	assert.Equal(t, 2, b)
}

func TestCache_Invalidate_NoArgsDropsEverything(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cache := New[int](time.Minute)
	calls := 0
	load := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, err := cache.Fetch(ctx, "a", load)
	require.NoError(t, err)
	_, err = cache.Fetch(ctx, "b", load)
	require.NoError(t, err)

	// Act
	cache.Invalidate()

	// Assert
	_, err = cache.Fetch(ctx, "a", load)
	require.NoError(t, err)
	_, err = cache.Fetch(ctx, "b", load)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
}

func TestStore_Flush_EmptiesAllCaches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewStore(time.Minute)
	statsCalls := 0
	loadSnapshot := func(ctx context.Context) (*stats.Snapshot, error) {
		statsCalls++
		return &stats.Snapshot{TotalOrders: 42}, nil
	}

	snapshot, err := store.Stats.Fetch(ctx, "6", loadSnapshot)
	require.NoError(t, err)
	assert.Equal(t, int64(42), snapshot.TotalOrders)

	// Act
	store.Flush()

	// Assert - a fresh fetch hits the loader again
	_, err = store.Stats.Fetch(ctx, "6", loadSnapshot)
	assert.NoError(t, err)
	assert.Equal(t, 2, statsCalls)
}
