package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_BoundsConcurrency(t *testing.T) {
	const capacity = 3
	const jobs = 24

	p := New(capacity)

	var inFlight, maxInFlight, completed int64
	var wg sync.WaitGroup

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := p.Acquire(context.Background())
			require.NoError(t, err)
			defer release()

			current := atomic.AddInt64(&inFlight, 1)
			for {
				observed := atomic.LoadInt64(&maxInFlight)
				if current <= observed || atomic.CompareAndSwapInt64(&maxInFlight, observed, current) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
			atomic.AddInt64(&completed, 1)
		}()
	}

	wg.Wait()
	assert.Equal(t, int64(jobs), atomic.LoadInt64(&completed))
	assert.LessOrEqual(t, atomic.LoadInt64(&maxInFlight), int64(capacity))
}

func TestPool_AcquireHonorsContextWhileWaiting(t *testing.T) {
	p := New(1)

	release, err := p.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = p.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPool_ReleaseFreesSlot(t *testing.T) {
	p := New(1)

	release, err := p.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, p.InFlight())

	release()
	assert.Equal(t, 0, p.InFlight())

	release2, err := p.Acquire(context.Background())
	require.NoError(t, err)
	release2()
}

func TestPool_InvalidSizeDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, New(0).Cap())
	assert.Equal(t, 1, New(-5).Cap())
	assert.Equal(t, 20, New(20).Cap())
}
