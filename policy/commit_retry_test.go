package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpinAlwaysRetries(t *testing.T) {
	p := NewSpin()

	for _, attempt := range []int{1, 2, 100, 1 << 20} {
		delay, retry := p.Next(attempt)
		require.True(t, retry)
		require.Zero(t, delay)
	}
}

func TestBackoffDefaults(t *testing.T) {
	p := NewBackoff()

	delay, retry := p.Next(1)
	require.True(t, retry)
	require.Equal(t, time.Millisecond, delay)

	// Unbounded by default
	_, retry = p.Next(10000)
	require.True(t, retry)
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	p := NewBackoff(
		WithBaseDelay(time.Millisecond),
		WithMaxDelay(8*time.Millisecond),
	)

	expected := []time.Duration{
		1 * time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		8 * time.Millisecond,
		8 * time.Millisecond, // capped
		8 * time.Millisecond,
	}
	for i, want := range expected {
		delay, retry := p.Next(i + 1)
		require.True(t, retry)
		require.Equal(t, want, delay, "attempt %d", i+1)
	}
}

func TestBackoffMaxDelayBelowBaseIsRaised(t *testing.T) {
	// A zero cap must not collapse every delay to zero
	p := NewBackoff(
		WithBaseDelay(2*time.Millisecond),
		WithMaxDelay(0),
	)

	for _, attempt := range []int{1, 2, 5} {
		delay, retry := p.Next(attempt)
		require.True(t, retry)
		require.Equal(t, 2*time.Millisecond, delay, "attempt %d", attempt)
	}
}

func TestBackoffMaxAttempts(t *testing.T) {
	p := NewBackoff(WithMaxAttempts(3))

	_, retry := p.Next(1)
	require.True(t, retry)
	_, retry = p.Next(2)
	require.True(t, retry)

	// Attempt 3 reaches the bound
	_, retry = p.Next(3)
	require.False(t, retry)
	_, retry = p.Next(4)
	require.False(t, retry)
}
