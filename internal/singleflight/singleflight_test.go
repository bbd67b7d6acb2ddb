package singleflight

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinator(t *testing.T) {
	t.Run("second start is rejected while first is in flight", func(t *testing.T) {
		c := NewCoordinator()

		require.True(t, c.TryStart())
		assert.True(t, c.IsRunning())
		assert.False(t, c.TryStart())

		c.Done()
		assert.False(t, c.IsRunning())
		assert.True(t, c.TryStart())
	})

	t.Run("deferred release survives a panic", func(t *testing.T) {
		c := NewCoordinator()

		func() {
			defer func() { _ = recover() }()
			require.True(t, c.TryStart())
			defer c.Done()
			panic("sync run blew up")
		}()

		assert.False(t, c.IsRunning())
		assert.True(t, c.TryStart())
	})

	t.Run("exactly one concurrent claimant wins", func(t *testing.T) {
		c := NewCoordinator()

		const claimants = 32
		var wg sync.WaitGroup
		var mu sync.Mutex
		won := 0

		for i := 0; i < claimants; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if c.TryStart() {
					mu.Lock()
					won++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, won)
		assert.True(t, c.IsRunning())
	})
}
