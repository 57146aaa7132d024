package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestBreakerTransitions(t *testing.T) {
	clock := time.Unix(1_700_000_000, 0)
	breaker := NewBreaker(2, 0.5, time.Minute).WithTarget("test-transitions")
	breaker.now = func() time.Time { return clock }
	ctx := context.Background()

	require.True(t, breaker.Allow(ctx))
	breaker.Report(ctx, false)
	require.True(t, breaker.Allow(ctx))
	breaker.Report(ctx, false)

	require.False(t, breaker.Allow(ctx), "breaker should open after threshold exceeded")
	require.Equal(t, Open, breaker.State())
	require.Equal(t, float64(1), testutil.ToFloat64(BreakerState.WithLabelValues("test-transitions")))

	clock = clock.Add(2 * time.Minute)
	require.True(t, breaker.Allow(ctx), "breaker should move to half-open after cool off")
	require.Equal(t, HalfOpen, breaker.State())
	breaker.Report(ctx, true)
	require.Equal(t, Closed, breaker.State())
	require.Equal(t, float64(1), testutil.ToFloat64(BreakerOpenedTotal.WithLabelValues("test-transitions")))
}

func TestBreakerDo(t *testing.T) {
	breaker := NewBreaker(1, 1, time.Hour).WithTarget("test-do")
	ctx := context.Background()
	boom := errors.New("boom")

	calls := 0
	err := breaker.Do(ctx, func(context.Context) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = breaker.Do(ctx, func(context.Context) error {
		calls++
		return nil
	})
	require.ErrorIs(t, err, ErrOpenCircuit)
	require.Equal(t, 1, calls)
}

func TestNilBreakerDo(t *testing.T) {
	var breaker *Breaker
	called := false
	require.NoError(t, breaker.Do(context.Background(), func(context.Context) error {
		called = true
		return nil
	}))
	require.True(t, called)
}

func TestBreakerHalfOpenAdmitsSingleTrial(t *testing.T) {
	clock := time.Unix(1_700_000_000, 0)
	breaker := NewBreaker(1, 0.5, time.Second).WithTarget("test-trial")
	breaker.now = func() time.Time { return clock }
	ctx := context.Background()

	require.True(t, breaker.Allow(ctx))
	breaker.Report(ctx, false)
	require.Equal(t, Open, breaker.State())

	clock = clock.Add(2 * time.Second)
	require.True(t, breaker.Allow(ctx))
	require.False(t, breaker.Allow(ctx), "only one trial while half-open")

	breaker.Report(ctx, false)
	require.Equal(t, Open, breaker.State())
	require.Equal(t, float64(2), testutil.ToFloat64(BreakerOpenedTotal.WithLabelValues("test-trial")))
	require.Equal(t, float64(1), testutil.ToFloat64(BreakerTransitions.WithLabelValues("test-trial", "half_open", "open")))
}

func TestCountsHalve(t *testing.T) {
	c := counts{ok: 5, failed: 3}
	c.halve()
	require.Equal(t, counts{ok: 3, failed: 2}, c)
	require.InDelta(t, 0.4, c.failureRatio(), 1e-9)
}
