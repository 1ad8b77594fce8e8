package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLocks(t *testing.T) {
	t.Run("entries are dropped once released", func(t *testing.T) {
		var locks gameLocks
		for _, id := range []string{"game-1", "game-2", "game-1"} {
			unlock := locks.lock(id)
			assert.Equal(t, 1, locks.tracked())
			unlock()
		}
		assert.Zero(t, locks.tracked())
	})

	t.Run("a waiting caller keeps the entry alive", func(t *testing.T) {
		var locks gameLocks
		unlock := locks.lock("game-1")

		acquired := make(chan func())
		go func() { acquired <- locks.lock("game-1") }()

		assert.Eventually(t, func() bool {
			locks.mu.Lock()
			defer locks.mu.Unlock()
			return locks.games["game-1"] != nil && locks.games["game-1"].refs == 2
		}, time.Second, time.Millisecond)

		unlock()
		second := <-acquired
		assert.Equal(t, 1, locks.tracked())
		second()
		assert.Zero(t, locks.tracked())
	})

	t.Run("one game at a time", func(t *testing.T) {
		var (
			locks   gameLocks
			wg      sync.WaitGroup
			inside  int
			overlap bool
			mu      sync.Mutex
		)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locks.lock("game-1")
				defer unlock()

				mu.Lock()
				inside++
				if inside > 1 {
					overlap = true
				}
				mu.Unlock()

				mu.Lock()
				inside--
				mu.Unlock()
			}()
		}
		wg.Wait()
		require.False(t, overlap)
		assert.Zero(t, locks.tracked())
	})
}
