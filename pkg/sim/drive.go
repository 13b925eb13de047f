package sim

import (
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/motion.go/pkg/l0/comm"
)

// DriveState is the internal CiA 402 state of a simulated drive.
type DriveState int

// Drive states.
const (
	SwitchOnDisabled DriveState = iota
	ReadyToSwitchOn
	SwitchedOn
	OperationEnabled
	QuickStopActive
	Fault
)

var statusWords = map[DriveState]uint16{
	SwitchOnDisabled: 0x0240,
	ReadyToSwitchOn:  0x0221,
	SwitchedOn:       0x0233,
	OperationEnabled: 0x0237,
	QuickStopActive:  0x0217,
	Fault:            0x0208,
}

const statusTargetReached uint16 = 0x0400

// DriveConfig configures a simulated drive.
type DriveConfig struct {
	// Speed is the profile velocity in ticks per second, 0 moves instantly.
	Speed float64
	// SettleTime delays each state change after a control word is written.
	SettleTime time.Duration
	// Stalled keeps the axis from moving at all.
	Stalled bool
	// Initial is the state after power up.
	Initial DriveState
	// Position is the initial position.
	Position int32
}

// Drive simulates one actuator on the bus.
type Drive struct {
	Node   byte
	Config DriveConfig

	state      DriveState
	pending    *DriveState
	pendingAt  time.Time
	mode       int8
	target     int32
	motion     motion
	registers  map[regKey][]byte
	controlLog []uint16
	lock       sync.Mutex
}

type regKey struct {
	address  uint16
	subindex byte
}

func keyOf(reg comm.Register) regKey {
	return regKey{address: reg.Address, subindex: reg.Subindex}
}

// NewDrive creates a simulated drive.
func NewDrive(node byte, conf DriveConfig, now time.Time) *Drive {
	d := &Drive{
		Node:   node,
		Config: conf,
		state:  conf.Initial,
		target: conf.Position,
		motion: motion{startPos: conf.Position, startTime: now, target: conf.Position},
		registers: map[regKey][]byte{
			keyOf(comm.DeviceType):           comm.DeviceType.Encode(0x00420192),
			keyOf(comm.SerialNumber):         comm.SerialNumber.Encode(int64(0x10000 + int(node))),
			keyOf(comm.ProducerHeartbeat):    comm.ProducerHeartbeat.Encode(0),
			keyOf(comm.ErrorState):           comm.ErrorState.Encode(0),
			keyOf(comm.ErrorCode):            comm.ErrorCode.Encode(0),
			keyOf(comm.EncoderIncrements):    comm.EncoderIncrements.Encode(4096),
			keyOf(comm.FeedConstant):         comm.FeedConstant.Encode(1),
			keyOf(comm.TargetPositionSource): comm.TargetPositionSource.Encode(1),
			keyOf(comm.DigitalOutputs):       comm.DigitalOutputs.Encode(0),
		},
	}
	return d
}

// State gets the current state.
func (d *Drive) State(now time.Time) DriveState {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.settle(now)
	return d.state
}

// ControlLog returns the control words written so far.
func (d *Drive) ControlLog() []uint16 {
	d.lock.Lock()
	defer d.lock.Unlock()
	return append([]uint16(nil), d.controlLog...)
}

// SetStalled stalls or releases the axis.
func (d *Drive) SetStalled(stalled bool, now time.Time) {
	d.lock.Lock()
	defer d.lock.Unlock()
	pos, _ := d.motion.estimate(now)
	d.Config.Stalled = stalled
	d.motion = motion{startPos: pos, startTime: now, target: d.target, speed: d.Config.Speed, stalled: stalled}
}

// StatusWord composes the status word at now.
func (d *Drive) StatusWord(now time.Time) uint16 {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.statusWord(now)
}

// Position estimates the actual position at now.
func (d *Drive) Position(now time.Time) int32 {
	d.lock.Lock()
	defer d.lock.Unlock()
	pos, _ := d.motion.estimate(now)
	return pos
}

// Handle executes a request and returns the response value.
func (d *Drive) Handle(req *comm.Request, now time.Time) []byte {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.settle(now)
	key := regKey{address: req.Address, subindex: req.Subindex}
	if req.Command == comm.CmdSet {
		d.set(key, req.Value, now)
		return nil
	}
	switch key {
	case keyOf(comm.StatusWord):
		return comm.StatusWord.Encode(int64(d.statusWord(now)))
	case keyOf(comm.ActualPosition):
		pos, _ := d.motion.estimate(now)
		return comm.ActualPosition.Encode(int64(pos))
	case keyOf(comm.TargetPosition):
		return comm.TargetPosition.Encode(int64(d.target))
	case keyOf(comm.ModesOfOperation), keyOf(comm.ModesOfOperationDisplay):
		return comm.ModesOfOperation.Encode(int64(d.mode))
	}
	return d.registers[key]
}

func (d *Drive) set(key regKey, value []byte, now time.Time) {
	switch key {
	case keyOf(comm.ControlWord):
		cw, err := comm.ControlWord.Decode(value)
		if err == nil {
			d.control(uint16(cw), now)
		}
	case keyOf(comm.TargetPosition):
		if v, err := comm.TargetPosition.Decode(value); err == nil {
			d.target = int32(v)
		}
	case keyOf(comm.ModesOfOperation):
		if v, err := comm.ModesOfOperation.Decode(value); err == nil {
			d.mode = int8(v)
		}
	default:
		d.registers[key] = append([]byte{}, value...)
	}
}

func (d *Drive) statusWord(now time.Time) uint16 {
	d.settle(now)
	status := statusWords[d.state]
	if _, done := d.motion.estimate(now); done {
		status |= statusTargetReached
	}
	return status
}

func (d *Drive) settle(now time.Time) {
	if d.pending != nil && !now.Before(d.pendingAt) {
		glog.V(4).Infof("sim node %d: state %d -> %d", d.Node, d.state, *d.pending)
		d.state, d.pending = *d.pending, nil
	}
}

// control applies a control word following the CiA 402 device control.
func (d *Drive) control(cw uint16, now time.Time) {
	d.controlLog = append(d.controlLog, cw)
	from := d.state
	if d.pending != nil {
		from = *d.pending
	}
	next := from
	switch {
	case cw&0x0002 == 0:
		// disable voltage, from any state except fault.
		if from != Fault {
			next = SwitchOnDisabled
		}
	case cw&0x0007 == 0x0006:
		if from == SwitchOnDisabled || from == SwitchedOn || from == OperationEnabled {
			next = ReadyToSwitchOn
		}
	case cw&0x0004 == 0:
		// quick stop
		if from == OperationEnabled {
			next = QuickStopActive
		} else if from != Fault {
			next = SwitchOnDisabled
		}
	case cw&0x000f == 0x0007:
		if from == ReadyToSwitchOn || from == OperationEnabled {
			next = SwitchedOn
		}
	case cw&0x000f == 0x000f:
		if from == ReadyToSwitchOn || from == SwitchedOn || from == QuickStopActive {
			next = OperationEnabled
		}
		if (from == OperationEnabled || next == OperationEnabled) && cw&0x0010 != 0 {
			d.startMove(cw&0x0040 != 0, now)
		}
	}
	if next != from {
		if d.Config.SettleTime > 0 {
			d.pending, d.pendingAt = &next, now.Add(d.Config.SettleTime)
		} else {
			d.state, d.pending = next, nil
		}
	}
}

func (d *Drive) startMove(relative bool, now time.Time) {
	pos, _ := d.motion.estimate(now)
	target := d.target
	if relative {
		target = d.motion.target + d.target
	}
	d.motion = motion{
		startPos:  pos,
		startTime: now,
		target:    target,
		speed:     d.Config.Speed,
		stalled:   d.Config.Stalled,
	}
}
