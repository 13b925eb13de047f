package websocket_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/comm/websocket"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
	pb "github.com/robotalks/motion.go/pkg/proto/motion/l1/v1"
)

// echoNodes replies AxisEnable with a RegisterValue carrying the node count.
func echoNodes(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		mctx.MessageTaken()
		enable, ok := cmdMsg.Command.Msg().(*msgs.AxisEnable)
		if !ok {
			cmdMsg.Command.Done(msgs.NewCommandErr(msgs.ErrUnsupportedCommand))
			return
		}
		cmdMsg.Command.Done(&msgs.RegisterValue{RegisterValue: pb.RegisterValue{Value: int64(len(enable.Nodes))}})
	}))
	return nil
}

func TestServerRoundTrip(t *testing.T) {
	info := l1.ControllerInfo{
		Ref:  l1.ControllerRef{Type: "motion", ID: "ws"},
		Meta: l1.ControllerMeta{Description: "test", Nodes: []byte{1, 2}},
	}
	server := websocket.NewServer("127.0.0.1:0", info)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := fx.NewLoop().Add(server)
	loop.Interval = 5 * time.Millisecond
	loop.AddController(fx.PrLvControl, fx.ControlFunc(echoNodes))
	go loop.Run(ctx)

	addr, err := server.ListenAddr(ctx)
	require.NoError(t, err)
	connector, err := websocket.NewConnector("ws://" + addr.String())
	require.NoError(t, err)

	infos, err := connector.Discover(ctx)
	require.NoError(t, err)
	require.Equal(t, []l1.ControllerInfo{info}, infos)

	conn, err := connector.Connect(ctx, info.Ref)
	require.NoError(t, err)
	clientLoop := fx.NewLoop()
	clientLoop.Interval = 5 * time.Millisecond
	clientLoop.Add(conn.(fx.LoopAdder))
	go clientLoop.Run(ctx)

	waitCtx, waitCancel := context.WithTimeout(ctx, 2*time.Second)
	defer waitCancel()
	reply, err := l1.Wait(waitCtx, conn.DoCommandWithin(&msgs.AxisEnable{AxisEnable: pb.AxisEnable{Nodes: []uint32{1, 2, 3}}}, time.Second))
	require.NoError(t, err)
	require.EqualValues(t, 3, reply.(*msgs.RegisterValue).Value)

	_, err = l1.Wait(waitCtx, conn.DoCommandWithin(&msgs.AxisStatusQuery{}, time.Second))
	require.Error(t, err)
}

func TestNewConnectorScheme(t *testing.T) {
	_, err := websocket.NewConnector("http://localhost:8070")
	require.Error(t, err)
	c, err := websocket.NewConnector("wss://host:8070")
	require.NoError(t, err)
	require.Equal(t, "host:8070", c.URL.Host)
}
