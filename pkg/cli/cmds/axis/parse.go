package axis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robotalks/motion.go/pkg/axisctl"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
)

// ParseNodes parses node IDs from arguments.
func ParseNodes(args []string) ([]uint32, error) {
	var nodes []uint32
	for _, arg := range args {
		node, err := axisctl.ParseNode(arg)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, uint32(node))
	}
	return nodes, nil
}

// ParseMove parses NODE=POS targets and an optional tol=N into AxisMove.
func ParseMove(args []string) (*msgs.AxisMove, error) {
	msg := &msgs.AxisMove{}
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid target %q, expect NODE=POS", arg)
		}
		if parts[0] == "tol" {
			tol, err := strconv.ParseUint(parts[1], 0, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid tolerance %q: %w", parts[1], err)
			}
			msg.Tolerance = uint32(tol)
			continue
		}
		node, err := axisctl.ParseNode(parts[0])
		if err != nil {
			return nil, err
		}
		pos, err := parseInt(parts[1], 32)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", parts[1], err)
		}
		msg.AddTarget(node, int32(pos))
	}
	if len(msg.Targets) == 0 {
		return nil, fmt.Errorf("at least one NODE=POS required")
	}
	return msg, nil
}

func parseInt(s string, bits int) (int64, error) {
	return strconv.ParseInt(s, 0, bits)
}
