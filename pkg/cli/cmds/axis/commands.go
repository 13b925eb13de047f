package axis

import (
	"fmt"
	"strings"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/motion.go/pkg/axisctl"
	"github.com/robotalks/motion.go/pkg/cli/sh"
	"github.com/robotalks/motion.go/pkg/l0/comm"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
)

// InfoRegisters are read by the info command.
var InfoRegisters = []comm.Register{
	comm.DeviceType,
	comm.SerialNumber,
	comm.ProducerHeartbeat,
	comm.ErrorState,
	comm.ErrorCode,
	comm.EncoderIncrements,
	comm.FeedConstant,
	comm.ModesOfOperationDisplay,
	comm.TargetPositionSource,
}

var (
	// EnableCmd exposes AxisEnable command.
	EnableCmd = ishell.Cmd{
		Name:    "enable",
		Aliases: []string{"en"},
		Help:    "[NODE...] enable drives, all when none given",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			nodes, err := ParseNodes(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			msg := &msgs.AxisEnable{}
			msg.Nodes = nodes
			sh.DoCommand(c, msg)
		}),
	}

	// DisableCmd exposes AxisDisable command.
	DisableCmd = ishell.Cmd{
		Name:    "disable",
		Aliases: []string{"dis"},
		Help:    "[NODE...] disable drives, all when none given",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			nodes, err := ParseNodes(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			msg := &msgs.AxisDisable{}
			msg.Nodes = nodes
			sh.DoCommand(c, msg)
		}),
	}

	// MoveCmd exposes AxisMove command with absolute targets.
	MoveCmd = ishell.Cmd{
		Name:    "move",
		Aliases: []string{"mv"},
		Help:    "NODE=POS... [tol=N] move to absolute positions",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			doMove(c, false)
		}),
	}

	// MoveRelCmd exposes AxisMove command with relative targets.
	MoveRelCmd = ishell.Cmd{
		Name:    "moverel",
		Aliases: []string{"mr"},
		Help:    "NODE=DELTA... [tol=N] move by offsets",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			doMove(c, true)
		}),
	}

	// StatusCmd exposes AxisStatusQuery command.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "[NODE...] show drive states",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			nodes, err := ParseNodes(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			query := &msgs.AxisStatusQuery{}
			query.Nodes = nodes
			res, err := sh.Request(c, query)
			if err != nil {
				c.Err(err)
				return
			}
			status, ok := res.(*msgs.AxisStatus)
			if !ok || sh.ShellFrom(c).OutputJSON {
				sh.PrintResult(c, res)
				return
			}
			c.Print(FormatStatus(status))
		}),
	}

	// ReadCmd exposes RegisterRead command.
	ReadCmd = ishell.Cmd{
		Name:    "read",
		Aliases: []string{"r"},
		Help:    "NODE REGISTER read a named register",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("NODE REGISTER required"))
				return
			}
			node, err := axisctl.ParseNode(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			msg := &msgs.RegisterRead{}
			msg.Node, msg.Register = uint32(node), c.Args[1]
			sh.DoCommand(c, msg)
		}),
	}

	// WriteCmd exposes RegisterWrite command.
	WriteCmd = ishell.Cmd{
		Name:    "write",
		Aliases: []string{"w"},
		Help:    "NODE REGISTER VALUE write a named register",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) != 3 {
				c.Err(fmt.Errorf("NODE REGISTER VALUE required"))
				return
			}
			node, err := axisctl.ParseNode(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			val, err := parseInt(c.Args[2], 64)
			if err != nil {
				c.Err(fmt.Errorf("invalid VALUE: %w", err))
				return
			}
			msg := &msgs.RegisterWrite{}
			msg.Node, msg.Register, msg.Value = uint32(node), c.Args[1], val
			sh.DoCommand(c, msg)
		}),
	}

	// InfoCmd reads the identity registers of a node.
	InfoCmd = ishell.Cmd{
		Name:    "info",
		Aliases: []string{"i"},
		Help:    "NODE show drive identity and error registers",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("NODE required"))
				return
			}
			node, err := axisctl.ParseNode(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			for _, reg := range InfoRegisters {
				msg := &msgs.RegisterRead{}
				msg.Node, msg.Register = uint32(node), reg.Name
				res, err := sh.Request(c, msg)
				if err != nil {
					c.Printf("%-28s error: %v\n", reg.Name, err)
					continue
				}
				if val, ok := res.(*msgs.RegisterValue); ok {
					c.Printf("%-28s %d (0x%x)\n", reg.Name, val.Value, val.Value)
				}
			}
		}),
	}

	// RegistersCmd lists known register names.
	RegistersCmd = ishell.Cmd{
		Name: "registers",
		Help: "list known register names",
		Func: func(c *ishell.Context) {
			for _, reg := range comm.Registers {
				c.Printf("%-28s 0x%04x:%d width=%d\n", reg.Name, reg.Address, reg.Subindex, reg.Width)
			}
		},
	}
)

func doMove(c *ishell.Context, relative bool) {
	msg, err := ParseMove(c.Args)
	if err != nil {
		c.Err(err)
		return
	}
	msg.Relative = relative
	// leave the controller time to reply before the command expires.
	msg.TimeoutMs = uint32(sh.ShellFrom(c).Timeout * 4 / 5 / time.Millisecond)
	sh.DoCommand(c, msg)
}

// FormatStatus renders an AxisStatus as a table.
func FormatStatus(status *msgs.AxisStatus) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-6s %-20s %-8s %12s %s\n", "NODE", "STATE", "STATUS", "POSITION", "REACHED")
	for _, axis := range status.Axes {
		fmt.Fprintf(&sb, "%-6d %-20s 0x%04x   %12d %v\n",
			axis.Node, axis.State, axis.Status, axis.Position, axis.Reached)
	}
	return sb.String()
}

func init() {
	sh.AddCmds(
		&EnableCmd,
		&DisableCmd,
		&MoveCmd,
		&MoveRelCmd,
		&StatusCmd,
		&ReadCmd,
		&WriteCmd,
		&InfoCmd,
		&RegistersCmd,
	)
}
