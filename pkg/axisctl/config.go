package axisctl

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robotalks/motion.go/pkg/l0/comm"
	"github.com/robotalks/motion.go/pkg/l0/serial"
	"github.com/robotalks/motion.go/pkg/motion"
	"github.com/robotalks/motion.go/pkg/sim"
)

// Config defines the axis controller options.
type Config struct {
	Nodes          Nodes
	StatusInterval time.Duration
	MoveTolerance  int32
	MoveTimeout    time.Duration
	PollInterval   time.Duration
	TicksPerUnit   float64
	Simulate       bool
	SimSpeed       float64
}

var defaultConfig = Config{
	Nodes:          Nodes{1},
	StatusInterval: time.Second,
	MoveTolerance:  5,
	MoveTimeout:    30 * time.Second,
	PollInterval:   50 * time.Millisecond,
	TicksPerUnit:   1,
	SimSpeed:       200000,
}

func init() {
	if val := os.Getenv("MC_NODES"); val != "" {
		defaultConfig.Nodes.Set(val)
	}
	if val := os.Getenv("MC_SIMULATE"); val != "" {
		defaultConfig.Simulate, _ = strconv.ParseBool(val)
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Var(&defaultConfig.Nodes, "nodes", "Comma separated node IDs of the drives")
	flag.DurationVar(&defaultConfig.StatusInterval, "status-interval", defaultConfig.StatusInterval, "Interval of axis status events, 0 to disable")
	flag.Var((*int32Value)(&defaultConfig.MoveTolerance), "tolerance", "Default move tolerance in ticks")
	flag.DurationVar(&defaultConfig.MoveTimeout, "move-timeout", defaultConfig.MoveTimeout, "Default move timeout")
	flag.DurationVar(&defaultConfig.PollInterval, "poll-interval", defaultConfig.PollInterval, "Position poll interval during moves")
	flag.Float64Var(&defaultConfig.TicksPerUnit, "ticks-per-unit", defaultConfig.TicksPerUnit, "Encoder ticks per user unit")
	flag.BoolVar(&defaultConfig.Simulate, "sim", defaultConfig.Simulate, "Use simulated drives instead of the serial port")
	flag.Float64Var(&defaultConfig.SimSpeed, "sim-speed", defaultConfig.SimSpeed, "Simulated drive speed in ticks per second")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	conf.Nodes = append(Nodes{}, defaultConfig.Nodes...)
	return &conf
}

// OpenPort opens the serial port, or creates simulated drives.
func (c *Config) OpenPort(serialConf *serial.Config) (comm.Port, error) {
	if !c.Simulate {
		return serialConf.Open()
	}
	ctl := sim.NewController()
	for _, node := range c.Nodes {
		ctl.AddDrive(node, sim.DriveConfig{Speed: c.SimSpeed, SettleTime: 5 * time.Millisecond})
	}
	return ctl, nil
}

// NewCoordinator creates the coordinator with configured nodes.
func (c *Config) NewCoordinator(port comm.Port) *motion.Coordinator {
	coord := motion.New(port, motion.WithNodes(c.Nodes...))
	for _, node := range c.Nodes {
		coord.Calibrate(node, motion.Calibration{TicksPerUnit: c.TicksPerUnit})
	}
	return coord
}

// NewController creates a Controller using the config.
func (c *Config) NewController(coord *motion.Coordinator) *Controller {
	ctl := NewController(coord)
	ctl.StatusInterval = c.StatusInterval
	ctl.MoveTolerance = c.MoveTolerance
	ctl.MoveTimeout = c.MoveTimeout
	ctl.PollInterval = c.PollInterval
	return ctl
}

// Nodes is a list of node IDs usable as a flag.
type Nodes []byte

// String implements flag.Value.
func (n *Nodes) String() string {
	items := make([]string, len(*n))
	for i, node := range *n {
		items[i] = strconv.Itoa(int(node))
	}
	return strings.Join(items, ",")
}

// Set implements flag.Value.
func (n *Nodes) Set(val string) error {
	var nodes Nodes
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		node, err := ParseNode(item)
		if err != nil {
			return err
		}
		nodes = append(nodes, node)
	}
	*n = nodes
	return nil
}

// ParseNode parses a node ID.
func ParseNode(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid node %q: %w", s, err)
	}
	return byte(v), nil
}

type int32Value int32

func (v *int32Value) String() string { return strconv.Itoa(int(*v)) }

func (v *int32Value) Set(s string) error {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return err
	}
	*v = int32Value(n)
	return nil
}
