package framework

import (
	"context"
	"time"
)

// Condition is evaluated on every poll.
// Polling stops when it returns true or an error.
type Condition func() (bool, error)

// Poll evaluates cond immediately and then every interval until it's satisfied.
// Between polls the caller is suspended on a timer, never spinning.
// When ctx reaches its deadline ErrTimeout is returned, other cancellations
// return ctx.Err().
func Poll(ctx context.Context, interval time.Duration, cond Condition) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	for {
		if err := ctx.Err(); err != nil {
			return ctxErr(err)
		}
		ok, err := cond()
		if err != nil || ok {
			return err
		}
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctxErr(ctx.Err())
		case <-timer.C:
		}
	}
}

// DefaultPollInterval is used when Poll is given a non-positive interval.
const DefaultPollInterval = 10 * time.Millisecond

func ctxErr(err error) error {
	if err == context.DeadlineExceeded {
		return ErrTimeout
	}
	return err
}

// PollPolicy bounds a polling wait.
type PollPolicy struct {
	Interval time.Duration
	Timeout  time.Duration
}

// Poll polls cond within the policy. Timeout adds a deadline on top of ctx,
// 0 means ctx alone bounds the wait.
func (p PollPolicy) Poll(ctx context.Context, cond Condition) error {
	if p.Timeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	return Poll(ctx, p.Interval, cond)
}
