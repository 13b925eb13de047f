// Package drive sequences the CiA 402 device state machine of one actuator.
package drive

import "fmt"

// State is derived from the status word masked with StateMask.
type State int

// States
const (
	StateOther State = iota
	StateSwitchOnDisabled
	StateQuickStop
	StateOperationEnabled
)

// Status word values after masking.
const (
	StateMask uint16 = 0x6f

	StatusSwitchOnDisabled uint16 = 0x40
	StatusQuickStop        uint16 = 0x07
	StatusSwitchedOn       uint16 = 0x23
	StatusOperationEnabled uint16 = 0x27

	// StatusTargetReached is the target reached bit, not masked.
	StatusTargetReached uint16 = 0x0400
)

// Control words.
const (
	CwDisableVoltage  uint16 = 0x00
	CwShutdown        uint16 = 0x06
	CwSwitchOn        uint16 = 0x07
	CwEnableOperation uint16 = 0x0f
	CwStartAbsolute   uint16 = 0x3f
	CwStartRelative   uint16 = 0x7f
)

// StateOf derives the state from a status word.
func StateOf(status uint16) State {
	switch status & StateMask {
	case StatusSwitchOnDisabled:
		return StateSwitchOnDisabled
	case StatusQuickStop:
		return StateQuickStop
	case StatusOperationEnabled:
		return StateOperationEnabled
	}
	return StateOther
}

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateSwitchOnDisabled:
		return "SwitchOnDisabled"
	case StateQuickStop:
		return "QuickStop"
	case StateOperationEnabled:
		return "OperationEnabled"
	}
	return "Other"
}

// Target is the requested end state of a sequence.
type Target int

// Targets
const (
	TargetEnabled Target = iota
	TargetDisabled
)

// Step is one step of a sequence, either writing a control word or
// waiting for the status to match.
type Step struct {
	Write   bool
	Control uint16
	Await   Condition
}

// String implements fmt.Stringer.
func (s Step) String() string {
	if s.Write {
		return fmt.Sprintf("write %02x", s.Control)
	}
	return "await " + s.Await.String()
}

// Condition matches a status word.
type Condition struct {
	Mask  uint16
	Value uint16
}

// Match checks the status word.
func (c Condition) Match(status uint16) bool {
	return status&c.Mask == c.Value
}

// String implements fmt.Stringer.
func (c Condition) String() string {
	return fmt.Sprintf("status&%02x==%02x", c.Mask, c.Value)
}

// Conditions awaited by sequences.
var (
	AwaitSwitchOnDisabled = Condition{Mask: StateMask, Value: StatusSwitchOnDisabled}
	AwaitSwitchedOn       = Condition{Mask: StateMask, Value: StatusSwitchedOn}
	AwaitOperationEnabled = Condition{Mask: StateMask, Value: StatusOperationEnabled}
)

func write(cw uint16) Step       { return Step{Write: true, Control: cw} }
func await(cond Condition) Step { return Step{Await: cond} }

// Transition plans the steps from the current status to the target.
// An empty plan means the target is already reached.
func Transition(status uint16, target Target) []Step {
	state := StateOf(status)
	switch target {
	case TargetEnabled:
		switch state {
		case StateOperationEnabled:
			return nil
		case StateQuickStop:
			return []Step{write(CwEnableOperation), await(AwaitOperationEnabled)}
		case StateSwitchOnDisabled:
			return []Step{write(CwShutdown), write(CwEnableOperation), await(AwaitOperationEnabled)}
		}
		// force a known baseline first.
		// TODO: verify on hardware whether the drive needs this reset or it's redundant.
		return []Step{
			write(CwDisableVoltage),
			await(AwaitSwitchOnDisabled),
			write(CwShutdown),
			write(CwEnableOperation),
			await(AwaitOperationEnabled),
		}
	case TargetDisabled:
		var steps []Step
		if state == StateOperationEnabled {
			steps = append(steps, write(CwSwitchOn), await(AwaitSwitchedOn))
		}
		return append(steps, write(CwDisableVoltage), await(AwaitSwitchOnDisabled))
	}
	return nil
}

// NextControlWord returns the control word to write next from the status.
func NextControlWord(status uint16, target Target) (uint16, bool) {
	for _, step := range Transition(status, target) {
		if step.Write {
			return step.Control, true
		}
	}
	return 0, false
}
