package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleSetGet(t *testing.T) {
	c, err := NewSimple[string]()
	require.NoError(t, err)

	created, err := c.Set("key", "value")
	require.NoError(t, err)
	assert.True(t, created)

	value, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	// Updating an existing key reports created=false.
	created, err = c.Set("key", "other")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSimpleGetMiss(t *testing.T) {
	c, err := NewSimple[int]()
	require.NoError(t, err)

	_, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Equal(t, int64(1), c.Stats().Misses())
}

func TestSimpleDelete(t *testing.T) {
	c, err := NewSimple[string]()
	require.NoError(t, err)

	_, err = c.Set("key", "value")
	require.NoError(t, err)

	existed, err := c.Delete("key")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = c.Delete("key")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestSimpleInvalidKey(t *testing.T) {
	c, err := NewSimple[string]()
	require.NoError(t, err)

	_, err = c.Set("", "value")
	assert.Error(t, err)

	_, err = c.Set("bad\x00key", "value")
	assert.Error(t, err)
}

func TestSimpleClearAndKeys(t *testing.T) {
	c, err := NewSimple[int]()
	require.NoError(t, err)

	_, _ = c.Set("a", 1)
	_, _ = c.Set("b", 2)
	assert.Equal(t, 2, c.Size())
	assert.ElementsMatch(t, []string{"a", "b"}, c.Keys())

	require.NoError(t, c.Clear())
	assert.Equal(t, 0, c.Size())
}

func TestStatistics(t *testing.T) {
	c, err := NewSimple[string]()
	require.NoError(t, err)

	_, _ = c.Set("key", "value")
	c.Get("key")
	c.Get("key")
	c.Get("absent")

	stats := c.Stats()
	assert.Equal(t, int64(2), stats.Hits())
	assert.Equal(t, int64(1), stats.Misses())
	assert.Equal(t, int64(1), stats.Sets())
	assert.InDelta(t, 2.0/3.0, stats.HitRate(), 1e-9)
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewSimple[string](WithMetrics(reg, "builder"))
	require.NoError(t, err)

	_, _ = c.Set("key", "value")
	c.Get("key")

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestConcurrentAccess(t *testing.T) {
	c, err := NewSimple[int]()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			_, _ = c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Size())
}
