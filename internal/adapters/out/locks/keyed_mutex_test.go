package locks_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodies/internal/adapters/out/locks"
	"foodies/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerialisesSameKey(t *testing.T) {
	m := locks.NewKeyedMutex()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := m.Lock(context.Background(), "order:1")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, m.Len(), "entries are released once unused")
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	m := locks.NewKeyedMutex()

	unlockA, err := m.Lock(t.Context(), ports.OrderLockKey("a"))
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()
	unlockB, err := m.Lock(ctx, ports.OrderLockKey("b"))
	require.NoError(t, err)
	unlockB()

	assert.Equal(t, 1, m.Len())
}

func TestKeyedMutex_ContextCancelled(t *testing.T) {
	m := locks.NewKeyedMutex()

	unlock, err := m.Lock(t.Context(), "order:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err = m.Lock(ctx, "order:1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	assert.Equal(t, 0, m.Len())

	again, err := m.Lock(t.Context(), "order:1")
	require.NoError(t, err)
	again()
}
