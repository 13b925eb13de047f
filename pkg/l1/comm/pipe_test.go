package comm_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1/comm"
	"github.com/robotalks/motion.go/pkg/l1/comm/stream"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
	pb "github.com/robotalks/motion.go/pkg/proto/motion/l1/v1"
)

type received struct {
	msg   fx.Message
	typed *msgs.Typed
}

func runPipe(t *testing.T, rw comm.PacketReadWriter) (*comm.Pipe, <-chan received, <-chan error) {
	recvCh := make(chan received, 4)
	errCh := make(chan error, 1)
	p := comm.NewPipe(rw)
	p.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		recvCh <- received{msg: msg, typed: typed}
		return nil
	})
	go func() { errCh <- p.Run(context.Background()) }()
	return p, recvCh, errCh
}

func TestPipeCommandAndReply(t *testing.T) {
	a, b := stream.Pair()
	pa, recvA, _ := runPipe(t, a)
	pipeB, recvB, _ := runPipe(t, b)
	defer pa.Close()

	msg := &msgs.AxisEnable{AxisEnable: pb.AxisEnable{Nodes: []uint32{1, 2}}}
	require.NoError(t, pa.SendCommandMsg(msg, 7))
	r := <-recvB
	require.EqualValues(t, 7, r.typed.Sequence)
	require.Equal(t, []uint32{1, 2}, r.msg.(*msgs.AxisEnable).Nodes)

	require.NoError(t, pipeB.SendCommandMsg(msgs.NewCommandOK(), r.typed.Sequence))
	r = <-recvA
	require.True(t, r.typed.IsReply())
	require.IsType(t, &msgs.CommandOK{}, r.msg)
}

func TestPipeRejectsWrongKind(t *testing.T) {
	a, _ := stream.Pair()
	p := comm.NewPipe(a)
	require.Equal(t, msgs.ErrNotEvent, p.SendEventMsg(&msgs.AxisEnable{}))
	require.Equal(t, msgs.ErrNotCommand, p.SendCommandMsg(&msgs.AxisStatusEvent{}, 1))
}

func TestPipeUnknownCommand(t *testing.T) {
	a, b := stream.Pair()
	_, _, _ = runPipe(t, b)
	pa, recvA, _ := runPipe(t, a)
	defer pa.Close()

	typed := &msgs.Typed{Typed: pb.Typed{TypeId: msgs.GroupCustom | 1, Sequence: 3}}
	require.NoError(t, pa.SendTyped(typed))
	select {
	case r := <-recvA:
		require.EqualValues(t, 3, r.typed.Sequence)
		reply, ok := r.msg.(*msgs.CommandErr)
		require.True(t, ok)
		require.Contains(t, reply.Message, "unknown type")
	case <-time.After(time.Second):
		t.Fatal("no reply")
	}
}

func TestPipeEndsOnPeerClose(t *testing.T) {
	a, b := stream.Pair()
	_, _, errCh := runPipe(t, b)
	// garbage is dropped, the pipe keeps reading.
	require.NoError(t, a.WritePacket([]byte{0xff, 0xff}))
	require.NoError(t, a.Close())
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pipe not stopped")
	}
}
