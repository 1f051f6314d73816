package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEveryRunsUntilCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(nil)
	var runs atomic.Int32
	s.Every(ctx, "tick", 5*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return errors.New("ignored")
	})

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	s.Wait()
}

func TestEveryAllowsOverlap(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(nil)
	var active, peak atomic.Int32
	s.Every(ctx, "slow", 2*time.Millisecond, func(ctx context.Context) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		select {
		case <-ctx.Done():
		case <-time.After(20 * time.Millisecond):
		}
		active.Add(-1)
		return nil
	})

	assert.Eventually(t, func() bool { return peak.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	s.Wait()
}

func TestEveryIgnoresNonPositiveInterval(t *testing.T) {
	s := New(nil)
	s.Every(context.Background(), "off", 0, func(context.Context) error {
		t.Fatal("should not run")
		return nil
	})
	s.Wait()
}
