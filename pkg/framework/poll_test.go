package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPollSatisfied(t *testing.T) {
	var calls int
	err := Poll(context.Background(), time.Millisecond, func() (bool, error) {
		calls++
		return calls == 3, nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestPollError(t *testing.T) {
	expected := errors.New("boom")
	err := Poll(context.Background(), time.Millisecond, func() (bool, error) {
		return false, expected
	})
	require.Equal(t, expected, err)
}

func TestPollDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	var calls int
	err := Poll(ctx, 10*time.Millisecond, func() (bool, error) {
		calls++
		return false, nil
	})
	elapsed := time.Since(start)
	require.Equal(t, ErrTimeout, err)
	require.True(t, elapsed >= 50*time.Millisecond, "returned before deadline: %v", elapsed)
	require.True(t, elapsed < 500*time.Millisecond, "returned long after deadline: %v", elapsed)
	require.True(t, calls < 10, "polled too often: %d", calls)
}

func TestPollCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Poll(ctx, time.Millisecond, func() (bool, error) { return true, nil })
	require.Equal(t, context.Canceled, err)
}

func TestPollPolicy(t *testing.T) {
	policy := PollPolicy{Interval: time.Millisecond, Timeout: 20 * time.Millisecond}
	err := policy.Poll(context.Background(), func() (bool, error) { return false, nil })
	require.Equal(t, ErrTimeout, err)
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil, nil).Aggregate())
	errs.Add(ErrTimeout, nil, errors.New("other"))
	err := errs.Aggregate()
	require.Error(t, err)
	require.Len(t, errs.Errors, 2)
	require.True(t, errors.Is(err, ErrTimeout))
	require.Equal(t, "Multiple errors:\ntimeout\nother", err.Error())
}
