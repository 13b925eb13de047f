package drive

import (
	"context"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l0/comm"
)

// Mode is the modes of operation value.
type Mode int8

// Modes
const (
	ModeProfilePosition Mode = 1
	ModeProfileVelocity Mode = 3
	ModeHoming          Mode = 6
)

// DefaultPollPolicy is used by New.
var DefaultPollPolicy = fx.PollPolicy{
	Interval: 10 * time.Millisecond,
	Timeout:  5 * time.Second,
}

// Device is one drive on the shared link.
// The client is borrowed, the status is re-read on every query.
type Device struct {
	Node   byte
	Policy fx.PollPolicy

	client *comm.Client
}

// New creates a Device.
func New(client *comm.Client, node byte) *Device {
	return &Device{Node: node, Policy: DefaultPollPolicy, client: client}
}

// Client returns the underlying client.
func (d *Device) Client() *comm.Client {
	return d.client
}

// Status reads the status word.
func (d *Device) Status() (uint16, error) {
	return d.client.GetStatusWord(d.Node)
}

// State reads the status word and derives the state.
func (d *Device) State() (State, error) {
	status, err := d.Status()
	if err != nil {
		return StateOther, err
	}
	return StateOf(status), nil
}

// Position reads the actual position.
func (d *Device) Position() (int32, error) {
	return d.client.GetPosition(d.Node)
}

// SetControlWord writes the control word.
func (d *Device) SetControlWord(cw uint16) error {
	return d.client.SetControlWord(d.Node, cw)
}

// Enable drives the device into OperationEnabled.
// It returns without writing when the device is already enabled.
func (d *Device) Enable(ctx context.Context) error {
	return d.sequence(ctx, TargetEnabled)
}

// Disable drives the device into SwitchOnDisabled.
func (d *Device) Disable(ctx context.Context) error {
	return d.sequence(ctx, TargetDisabled)
}

func (d *Device) sequence(ctx context.Context, target Target) error {
	status, err := d.Status()
	if err != nil {
		return err
	}
	steps := Transition(status, target)
	if len(steps) > 0 && glog.V(2) {
		glog.Infof("node %d: %s (status %04x) -> %v", d.Node, StateOf(status), status, steps)
	}
	for _, step := range steps {
		if step.Write {
			if err := d.SetControlWord(step.Control); err != nil {
				return err
			}
			continue
		}
		if err := d.await(ctx, step.Await); err != nil {
			return err
		}
	}
	return nil
}

func (d *Device) await(ctx context.Context, cond Condition) error {
	var last uint16
	err := d.Policy.Poll(ctx, func() (bool, error) {
		status, err := d.Status()
		if err != nil {
			return false, err
		}
		last = status
		return cond.Match(status), nil
	})
	if err == fx.ErrTimeout {
		glog.Warningf("node %d: timeout waiting %s, last status %04x", d.Node, cond, last)
	} else if err == nil && glog.V(2) {
		glog.Infof("node %d: %s (status %04x)", d.Node, StateOf(last), last)
	}
	return err
}

// MoveAbsolute starts a move to an absolute target.
// It doesn't wait for the target to be reached.
func (d *Device) MoveAbsolute(target int32) error {
	return d.move(target, CwStartAbsolute)
}

// MoveRelative starts a move relative to the last target.
func (d *Device) MoveRelative(offset int32) error {
	return d.move(offset, CwStartRelative)
}

func (d *Device) move(target int32, start uint16) error {
	if err := d.client.SetTargetPosition(d.Node, target); err != nil {
		return err
	}
	if err := d.SetControlWord(CwEnableOperation); err != nil {
		return err
	}
	return d.SetControlWord(start)
}

// PositionReached checks the target reached bit with a single status read.
func (d *Device) PositionReached() (bool, error) {
	status, err := d.Status()
	if err != nil {
		return false, err
	}
	return status&StatusTargetReached != 0, nil
}

// SetOperationMode writes modes of operation.
func (d *Device) SetOperationMode(mode Mode) error {
	return d.client.WriteInt(d.Node, comm.ModesOfOperation, int64(mode))
}

// OperationMode reads the effective mode from modes of operation display.
func (d *Device) OperationMode() (Mode, error) {
	v, err := d.client.ReadInt(d.Node, comm.ModesOfOperationDisplay)
	return Mode(v), err
}

// TargetPositionSource reads where the target position comes from.
func (d *Device) TargetPositionSource() (uint16, error) {
	v, err := d.client.ReadInt(d.Node, comm.TargetPositionSource)
	return uint16(v), err
}

// SetDigitalOutputs writes the digital outputs mask.
func (d *Device) SetDigitalOutputs(mask uint16) error {
	return d.client.WriteInt(d.Node, comm.DigitalOutputs, int64(mask))
}

// Read reads a register.
func (d *Device) Read(reg comm.Register) (int64, error) {
	return d.client.ReadInt(d.Node, reg)
}

// Write writes a register.
func (d *Device) Write(reg comm.Register, v int64) error {
	return d.client.WriteInt(d.Node, reg, v)
}
