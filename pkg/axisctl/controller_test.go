package axisctl

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
	"github.com/robotalks/motion.go/pkg/motion"
	pb "github.com/robotalks/motion.go/pkg/proto/motion/l1/v1"
	"github.com/robotalks/motion.go/pkg/sim"
)

type testEnv struct {
	ctl    *sim.Controller
	coord  *motion.Coordinator
	conn   l1.ControllerConn
	events chan *msgs.AxisStatusEvent
	cancel func()
}

func newTestEnv(t *testing.T, confs map[byte]sim.DriveConfig) *testEnv {
	conf := &Config{
		StatusInterval: 20 * time.Millisecond,
		MoveTolerance:  0,
		MoveTimeout:    time.Second,
		PollInterval:   time.Millisecond,
	}
	e := &testEnv{ctl: sim.NewController(), events: make(chan *msgs.AxisStatusEvent, 16)}
	for node, dc := range confs {
		e.ctl.AddDrive(node, dc)
		conf.Nodes = append(conf.Nodes, node)
	}
	e.coord = conf.NewCoordinator(e.ctl)
	for _, node := range conf.Nodes {
		e.coord.Device(node).Policy = fx.PollPolicy{Interval: time.Millisecond, Timeout: 200 * time.Millisecond}
	}
	local := NewLocal(l1.ControllerInfo{Ref: l1.ControllerRef{Type: "motion", ID: "test"}}, conf.NewController(e.coord))

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	conn, err := local.Connect(ctx, local.Info.Ref)
	require.NoError(t, err)
	e.conn = conn

	loop := fx.NewLoop()
	loop.Interval = 5 * time.Millisecond
	loop.Add(conn.(fx.LoopAdder))
	loop.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
			if ev, ok := mctx.CurrentMessage().(*msgs.AxisStatusEvent); ok {
				mctx.MessageTaken()
				select {
				case e.events <- ev:
				default:
				}
			}
		}))
		return nil
	}))
	go loop.Run(ctx)
	return e
}

func (e *testEnv) do(t *testing.T, msg fx.Message) (fx.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return l1.Wait(ctx, e.conn.DoCommandWithin(msg, 2*time.Second))
}

func TestEnableMoveStatus(t *testing.T) {
	e := newTestEnv(t, map[byte]sim.DriveConfig{
		1: {Initial: sim.SwitchOnDisabled, Speed: 100000},
		2: {Initial: sim.QuickStopActive, Speed: 100000},
	})
	defer e.cancel()

	reply, err := e.do(t, &msgs.AxisEnable{})
	require.NoError(t, err)
	require.IsType(t, &msgs.CommandOK{}, reply)

	move := &msgs.AxisMove{}
	move.AddTarget(1, 2000).AddTarget(2, -3000)
	reply, err = e.do(t, move)
	require.NoError(t, err)
	require.IsType(t, &msgs.CommandOK{}, reply)
	now := e.ctl.Now()
	require.EqualValues(t, 2000, e.ctl.Drive(1).Position(now))
	require.EqualValues(t, -3000, e.ctl.Drive(2).Position(now))

	reply, err = e.do(t, &msgs.AxisStatusQuery{AxisStatusQuery: pb.AxisStatusQuery{Nodes: []uint32{2}}})
	require.NoError(t, err)
	status, ok := reply.(*msgs.AxisStatus)
	require.True(t, ok)
	require.Len(t, status.Axes, 1)
	require.EqualValues(t, 2, status.Axes[0].Node)
	require.Equal(t, pb.DriveState_OPERATION_ENABLED, status.Axes[0].State)
	require.EqualValues(t, -3000, status.Axes[0].Position)
	require.True(t, status.Axes[0].Reached)

	reply, err = e.do(t, &msgs.AxisDisable{AxisDisable: pb.AxisDisable{Nodes: []uint32{1}}})
	require.NoError(t, err)
	require.IsType(t, &msgs.CommandOK{}, reply)
	require.Equal(t, sim.SwitchOnDisabled, e.ctl.Drive(1).State(e.ctl.Now()))
}

func TestMoveRelative(t *testing.T) {
	e := newTestEnv(t, map[byte]sim.DriveConfig{1: {Initial: sim.OperationEnabled, Position: 100}})
	defer e.cancel()
	move := &msgs.AxisMove{}
	move.AddTarget(1, 50).Relative = true
	_, err := e.do(t, move)
	require.NoError(t, err)
	require.EqualValues(t, 150, e.ctl.Drive(1).Position(e.ctl.Now()))
}

func TestMoveTimeout(t *testing.T) {
	e := newTestEnv(t, map[byte]sim.DriveConfig{1: {Initial: sim.OperationEnabled, Stalled: true}})
	defer e.cancel()
	move := &msgs.AxisMove{}
	move.AddTarget(1, 1000).TimeoutMs = 50
	_, err := e.do(t, move)
	var cmdErr *msgs.CommandErr
	require.True(t, errors.As(err, &cmdErr), "unexpected error %v", err)
	require.Contains(t, cmdErr.Message, fx.ErrTimeout.Error())
}

func TestMoveToleranceOutOfRange(t *testing.T) {
	e := newTestEnv(t, map[byte]sim.DriveConfig{1: {Initial: sim.OperationEnabled}})
	defer e.cancel()
	move := &msgs.AxisMove{}
	move.AddTarget(1, 1000).Tolerance = math.MaxInt32 + 1
	_, err := e.do(t, move)
	var cmdErr *msgs.CommandErr
	require.True(t, errors.As(err, &cmdErr), "unexpected error %v", err)
	require.Contains(t, cmdErr.Message, ErrInvalidTolerance.Error())
	require.Zero(t, e.ctl.Drive(1).Position(e.ctl.Now()))

	move = &msgs.AxisMove{}
	move.AddTarget(1, 1000).Tolerance = math.MaxInt32
	_, err = e.do(t, move)
	require.NoError(t, err)
}

func TestUnknownNode(t *testing.T) {
	e := newTestEnv(t, map[byte]sim.DriveConfig{1: {}})
	defer e.cancel()
	_, err := e.do(t, &msgs.AxisEnable{AxisEnable: pb.AxisEnable{Nodes: []uint32{9}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), motion.ErrUnknownNode.Error())
}

func TestRegisterReadWrite(t *testing.T) {
	e := newTestEnv(t, map[byte]sim.DriveConfig{1: {}})
	defer e.cancel()
	reply, err := e.do(t, &msgs.RegisterWrite{RegisterWrite: pb.RegisterWrite{Node: 1, Register: "digital-outputs", Value: 3}})
	require.NoError(t, err)
	require.IsType(t, &msgs.CommandOK{}, reply)

	reply, err = e.do(t, &msgs.RegisterRead{RegisterRead: pb.RegisterRead{Node: 1, Register: "digital-outputs"}})
	require.NoError(t, err)
	value, ok := reply.(*msgs.RegisterValue)
	require.True(t, ok)
	require.EqualValues(t, 3, value.Value)

	_, err = e.do(t, &msgs.RegisterRead{RegisterRead: pb.RegisterRead{Node: 1, Register: "nope"}})
	require.Error(t, err)
}

func TestStatusEvents(t *testing.T) {
	e := newTestEnv(t, map[byte]sim.DriveConfig{1: {Position: 7}})
	defer e.cancel()
	select {
	case ev := <-e.events:
		require.Len(t, ev.Axes, 1)
		require.EqualValues(t, 7, ev.Axes[0].Position)
		require.Equal(t, pb.DriveState_SWITCH_ON_DISABLED, ev.Axes[0].State)
	case <-time.After(2 * time.Second):
		t.Fatal("no status event")
	}
}

type customCmd struct {
	pb.CommandOK
}

func (m *customCmd) NewMessage() fx.Message     { return &customCmd{} }
func (m *customCmd) TypeID() uint32             { return msgs.GroupCustom | 1 }
func (m *customCmd) Serializable() proto.Message { return &m.CommandOK }

func TestUnknownCommand(t *testing.T) {
	e := newTestEnv(t, map[byte]sim.DriveConfig{1: {}})
	defer e.cancel()
	_, err := e.do(t, &customCmd{})
	var cmdErr *msgs.CommandErr
	require.True(t, errors.As(err, &cmdErr), "unexpected error %v", err)
	require.Contains(t, cmdErr.Message, "unknown type")
}

func TestNodesFlag(t *testing.T) {
	var nodes Nodes
	require.NoError(t, nodes.Set("1, 2,0x10"))
	require.Equal(t, Nodes{1, 2, 16}, nodes)
	require.Equal(t, "1,2,16", nodes.String())
	require.Error(t, nodes.Set("256"))
}
