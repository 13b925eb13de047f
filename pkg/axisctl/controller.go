// Package axisctl serves the axes of a Coordinator as an L1 controller.
package axisctl

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/motion.go/pkg/drive"
	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l0/comm"
	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
	"github.com/robotalks/motion.go/pkg/motion"
	pb "github.com/robotalks/motion.go/pkg/proto/motion/l1/v1"
)

// ErrInvalidTolerance rejects a move tolerance out of the position range.
var ErrInvalidTolerance = errors.New("invalid tolerance")

// Controller executes axis commands and publishes axis status.
// Commands run in their own goroutines so a long move doesn't block the
// loop, transactions are still serialized by the coordinator.
type Controller struct {
	Coord          *motion.Coordinator
	Registrar      l1.Registrar
	StatusInterval time.Duration
	MoveTolerance  int32
	MoveTimeout    time.Duration
	PollInterval   time.Duration

	lastStatus time.Time
	tasks      sync.WaitGroup
}

// NewController creates a Controller.
func NewController(coord *motion.Coordinator) *Controller {
	return &Controller{
		Coord:          coord,
		StatusInterval: defaultConfig.StatusInterval,
		MoveTolerance:  defaultConfig.MoveTolerance,
		MoveTimeout:    defaultConfig.MoveTimeout,
		PollInterval:   defaultConfig.PollInterval,
	}
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.publishStatus))
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	ctx := cc.Context()
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok || !c.Accepts(cmdMsg.Command.Msg()) {
			return
		}
		mctx.MessageTaken()
		c.tasks.Add(1)
		go func(cmd l1.Command) {
			defer c.tasks.Done()
			if err := cmd.Done(c.Execute(ctx, cmd.Msg())); err != nil {
				glog.Warningf("reply %T: %v", cmd.Msg(), err)
			}
		}(cmdMsg.Command)
	}))
	return nil
}

// Wait waits for running commands.
func (c *Controller) Wait() {
	c.tasks.Wait()
}

// Accepts tells if the message is an axis command.
func (c *Controller) Accepts(msg fx.Message) bool {
	switch msg.(type) {
	case *msgs.AxisEnable, *msgs.AxisDisable, *msgs.AxisMove, *msgs.AxisStatusQuery,
		*msgs.RegisterRead, *msgs.RegisterWrite:
		return true
	}
	return false
}

// Execute runs a command and returns the reply.
func (c *Controller) Execute(ctx context.Context, msg fx.Message) fx.Message {
	reply, err := c.execute(ctx, msg)
	if err != nil {
		glog.Warningf("%T failed: %v", msg, err)
		return msgs.NewCommandErr(err)
	}
	return reply
}

func (c *Controller) execute(ctx context.Context, msg fx.Message) (fx.Message, error) {
	switch m := msg.(type) {
	case *msgs.AxisEnable:
		nodes, err := nodesOf(m.Nodes)
		if err != nil {
			return nil, err
		}
		return okOrErr(c.Coord.EnableAll(ctx, nodes...))
	case *msgs.AxisDisable:
		nodes, err := nodesOf(m.Nodes)
		if err != nil {
			return nil, err
		}
		return okOrErr(c.Coord.DisableAll(ctx, nodes...))
	case *msgs.AxisMove:
		return okOrErr(c.move(ctx, m))
	case *msgs.AxisStatusQuery:
		nodes, err := nodesOf(m.Nodes)
		if err != nil {
			return nil, err
		}
		snapshots, err := c.Coord.Snapshot(nodes...)
		if err != nil {
			return nil, err
		}
		return &msgs.AxisStatus{AxisStatus: pb.AxisStatus{Axes: AxisStatesOf(snapshots)}}, nil
	case *msgs.RegisterRead:
		dev, reg, err := c.register(m.Node, m.Register)
		if err != nil {
			return nil, err
		}
		v, err := dev.Read(reg)
		if err != nil {
			return nil, err
		}
		return &msgs.RegisterValue{RegisterValue: pb.RegisterValue{Node: m.Node, Register: reg.Name, Value: v}}, nil
	case *msgs.RegisterWrite:
		dev, reg, err := c.register(m.Node, m.Register)
		if err != nil {
			return nil, err
		}
		return okOrErr(dev.Write(reg, m.Value))
	}
	return nil, msgs.ErrUnsupportedCommand
}

func (c *Controller) move(ctx context.Context, m *msgs.AxisMove) error {
	if len(m.Targets) == 0 {
		return nil
	}
	targets := make(map[byte]int32, len(m.Targets))
	for _, target := range m.Targets {
		node, err := nodeOf(target.Node)
		if err != nil {
			return err
		}
		targets[node] = target.Position
	}
	timeout := c.MoveTimeout
	if m.TimeoutMs > 0 {
		timeout = time.Duration(m.TimeoutMs) * time.Millisecond
	}
	tolerance := c.MoveTolerance
	if m.Tolerance > math.MaxInt32 {
		return fmt.Errorf("%w: %d", ErrInvalidTolerance, m.Tolerance)
	}
	if m.Tolerance > 0 {
		tolerance = int32(m.Tolerance)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if m.Relative {
		return c.Coord.MoveAllRelative(ctx, targets, tolerance, c.PollInterval)
	}
	return c.Coord.MoveAllAbsolute(ctx, targets, tolerance, c.PollInterval)
}

func (c *Controller) register(node uint32, name string) (*drive.Device, comm.Register, error) {
	reg, ok := comm.LookupRegister(name)
	if !ok {
		return nil, reg, fmt.Errorf("unknown register %q", name)
	}
	n, err := nodeOf(node)
	if err != nil {
		return nil, reg, err
	}
	dev := c.Coord.Device(n)
	if dev == nil {
		return nil, reg, fmt.Errorf("%w: %d", motion.ErrUnknownNode, n)
	}
	return dev, reg, nil
}

func (c *Controller) publishStatus(cc fx.ControlContext) error {
	if c.Registrar == nil || c.StatusInterval <= 0 {
		return nil
	}
	now := cc.Time()
	if now.Sub(c.lastStatus) < c.StatusInterval {
		return nil
	}
	c.lastStatus = now
	snapshots, err := c.Coord.Snapshot()
	if err != nil {
		return fmt.Errorf("axis status: %w", err)
	}
	event := &msgs.AxisStatusEvent{AxisStatus: pb.AxisStatus{Axes: AxisStatesOf(snapshots)}}
	return c.Registrar.SendEvent(cc.Context(), event)
}

// AxisStatesOf converts snapshots into messages.
func AxisStatesOf(snapshots []motion.AxisSnapshot) []*pb.AxisState {
	states := make([]*pb.AxisState, len(snapshots))
	for i, s := range snapshots {
		states[i] = &pb.AxisState{
			Node:     uint32(s.Node),
			Status:   uint32(s.Status),
			State:    DriveStateOf(s.State),
			Position: s.Position,
			Reached:  s.Reached,
		}
	}
	return states
}

// DriveStateOf converts drive.State into message enum.
func DriveStateOf(state drive.State) pb.DriveState {
	switch state {
	case drive.StateSwitchOnDisabled:
		return pb.DriveState_SWITCH_ON_DISABLED
	case drive.StateQuickStop:
		return pb.DriveState_QUICK_STOP
	case drive.StateOperationEnabled:
		return pb.DriveState_OPERATION_ENABLED
	}
	return pb.DriveState_OTHER
}

func nodeOf(v uint32) (byte, error) {
	if v > 0xff {
		return 0, fmt.Errorf("invalid node %d", v)
	}
	return byte(v), nil
}

func nodesOf(vals []uint32) ([]byte, error) {
	nodes := make([]byte, 0, len(vals))
	for _, v := range vals {
		node, err := nodeOf(v)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func okOrErr(err error) (fx.Message, error) {
	if err != nil {
		return nil, err
	}
	return msgs.NewCommandOK(), nil
}
