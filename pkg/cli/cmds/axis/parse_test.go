package axis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/motion.go/pkg/l1/msgs"
	pb "github.com/robotalks/motion.go/pkg/proto/motion/l1/v1"
)

func TestParseNodes(t *testing.T) {
	nodes, err := ParseNodes([]string{"1", "0x10"})
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 16}, nodes)

	nodes, err = ParseNodes(nil)
	require.NoError(t, err)
	require.Nil(t, nodes)

	_, err = ParseNodes([]string{"256"})
	require.Error(t, err)
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		targets []*pb.AxisTarget
		tol     uint32
		fail    bool
	}{
		{
			name:    "single",
			args:    []string{"1=2000"},
			targets: []*pb.AxisTarget{{Node: 1, Position: 2000}},
		},
		{
			name:    "negative with tolerance",
			args:    []string{"1=-500", "2=0x100", "tol=10"},
			targets: []*pb.AxisTarget{{Node: 1, Position: -500}, {Node: 2, Position: 256}},
			tol:     10,
		},
		{name: "no targets", args: []string{"tol=3"}, fail: true},
		{name: "missing value", args: []string{"1"}, fail: true},
		{name: "bad node", args: []string{"x=1"}, fail: true},
		{name: "bad position", args: []string{"1=abc"}, fail: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			msg, err := ParseMove(c.args)
			if c.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.targets, msg.Targets)
			require.Equal(t, c.tol, msg.Tolerance)
		})
	}
}

func TestFormatStatus(t *testing.T) {
	status := &msgs.AxisStatus{AxisStatus: pb.AxisStatus{Axes: []*pb.AxisState{
		{Node: 1, Status: 0x0427, State: pb.DriveState_OPERATION_ENABLED, Position: 2000, Reached: true},
	}}}
	lines := strings.Split(strings.TrimSpace(FormatStatus(status)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "OPERATION_ENABLED")
	require.Contains(t, lines[1], "0x0427")
	require.Contains(t, lines[1], "2000")
}
