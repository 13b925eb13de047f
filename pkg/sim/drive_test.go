package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/motion.go/pkg/l0/comm"
)

func TestMotionEstimate(t *testing.T) {
	start := time.Unix(100, 0)
	m := motion{startPos: 0, startTime: start, target: 1000, speed: 100}
	pos, done := m.estimate(start.Add(2 * time.Second))
	require.EqualValues(t, 200, pos)
	require.False(t, done)
	pos, done = m.estimate(start.Add(20 * time.Second))
	require.EqualValues(t, 1000, pos)
	require.True(t, done)

	m = motion{startPos: 1000, startTime: start, target: 0, speed: 100}
	pos, _ = m.estimate(start.Add(time.Second))
	require.EqualValues(t, 900, pos)

	m.stalled = true
	pos, done = m.estimate(start.Add(time.Hour))
	require.EqualValues(t, 1000, pos)
	require.False(t, done)
}

func TestDriveControl(t *testing.T) {
	now := time.Unix(100, 0)
	cases := []struct {
		name    string
		initial DriveState
		words   []uint16
		state   DriveState
	}{
		{"enable", SwitchOnDisabled, []uint16{0x06, 0x0f}, OperationEnabled},
		{"switch on", ReadyToSwitchOn, []uint16{0x07}, SwitchedOn},
		{"disable operation", OperationEnabled, []uint16{0x07}, SwitchedOn},
		{"disable voltage", OperationEnabled, []uint16{0x00}, SwitchOnDisabled},
		{"quick stop", OperationEnabled, []uint16{0x02}, QuickStopActive},
		{"resume quick stop", QuickStopActive, []uint16{0x0f}, OperationEnabled},
		{"fault stays", Fault, []uint16{0x00, 0x06, 0x0f}, Fault},
		{"invalid skip", SwitchOnDisabled, []uint16{0x0f}, SwitchOnDisabled},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDrive(1, DriveConfig{Initial: c.initial}, now)
			for _, cw := range c.words {
				d.Handle(&comm.Request{
					Node:    1,
					Command: comm.CmdSet,
					Address: comm.ControlWord.Address,
					Value:   comm.ControlWord.Encode(int64(cw)),
				}, now)
			}
			require.Equal(t, c.state, d.State(now))
			require.Equal(t, c.words, d.ControlLog())
		})
	}
}

func TestDriveSettleTime(t *testing.T) {
	now := time.Unix(100, 0)
	d := NewDrive(1, DriveConfig{Initial: SwitchOnDisabled, SettleTime: time.Second}, now)
	d.Handle(&comm.Request{Node: 1, Command: comm.CmdSet, Address: 0x6040, Value: []byte{0x06, 0}}, now)
	require.Equal(t, SwitchOnDisabled, d.State(now))
	require.Equal(t, uint16(0x0640), d.StatusWord(now))
	require.Equal(t, ReadyToSwitchOn, d.State(now.Add(time.Second)))
}

func TestDriveMove(t *testing.T) {
	now := time.Unix(100, 0)
	d := NewDrive(1, DriveConfig{Initial: OperationEnabled, Speed: 1000}, now)
	set := func(reg comm.Register, v int64) {
		d.Handle(&comm.Request{Node: 1, Command: comm.CmdSet, Address: reg.Address, Subindex: reg.Subindex, Value: reg.Encode(v)}, now)
	}
	set(comm.TargetPosition, 5000)
	set(comm.ControlWord, 0x0f)
	set(comm.ControlWord, 0x3f)
	require.Zero(t, d.StatusWord(now)&statusTargetReached)
	require.EqualValues(t, 1000, d.Position(now.Add(time.Second)))
	require.NotZero(t, d.StatusWord(now.Add(5*time.Second))&statusTargetReached)

	d.SetStalled(true, now.Add(time.Second))
	require.EqualValues(t, 1000, d.Position(now.Add(10*time.Second)))
}
