package framework

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testMsg struct{ n int }

func (m *testMsg) NewMessage() Message { return &testMsg{} }

func TestLoopDispatchesMessages(t *testing.T) {
	loop := NewLoop()
	loop.Interval = time.Hour
	gotCh := make(chan int, 4)
	var order []int
	loop.AddController(PrLvPostProc, ControlFunc(func(cc ControlContext) error {
		order = append(order, PrLvPostProc)
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
			gotCh <- mctx.CurrentMessage().(*testMsg).n
		}))
		return nil
	}))
	loop.AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
		order = append(order, PrLvControl)
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
			if m := mctx.CurrentMessage().(*testMsg); m.n == 1 {
				mctx.MessageTaken()
			}
		}))
		return nil
	}))
	loop.AddRunnable(RunFunc(func(ctx context.Context) error {
		ctl := LoopCtlFrom(ctx)
		ctl.PostMessage(&testMsg{n: 1})
		ctl.PostMessage(&testMsg{n: 2})
		ctl.TriggerNext()
		<-ctx.Done()
		return ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	doneCh := make(chan error, 1)
	go func() { doneCh <- loop.Run(ctx) }()
	select {
	case n := <-gotCh:
		require.Equal(t, 2, n)
	case <-time.After(time.Second):
		t.Fatal("message not dispatched")
	}
	cancel()
	require.Equal(t, context.Canceled, <-doneCh)
	require.Equal(t, []int{PrLvControl, PrLvPostProc}, order[:2])
}

func TestRunnerAggregatesErrors(t *testing.T) {
	runner := NewRunner()
	runner.Go(
		NamedRun("ok", RunFunc(func(context.Context) error { return nil })),
		NamedRun("canceled", RunFunc(func(context.Context) error { return context.Canceled })),
		RunFunc(func(context.Context) error { return ErrTimeout }),
	)
	err := runner.Wait()
	require.Error(t, err)
	require.Equal(t, []error{ErrTimeout}, err.(*AggregatedError).Errors)
}

func TestRunnerStop(t *testing.T) {
	runner := NewRunner()
	started := make(chan struct{})
	runner.Go(RunFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))
	<-started
	runner.Stop()
	require.NoError(t, runner.Wait())
	require.Error(t, runner.Context().Err())
}
