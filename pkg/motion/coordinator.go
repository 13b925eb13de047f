// Package motion coordinates multiple drives sharing one link.
package motion

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/motion.go/pkg/drive"
	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l0/comm"
)

// Errors
var (
	ErrNoDeadline  = errors.New("context has no deadline")
	ErrUnknownNode = errors.New("unknown node")
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithPollPolicy sets the poll policy of drives added later.
func WithPollPolicy(policy fx.PollPolicy) Option {
	return func(c *Coordinator) { c.policy = policy }
}

// WithTimeout sets the response timeout of the link.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Coordinator) { c.client.Timeout = timeout }
}

// WithNodes adds drives.
func WithNodes(nodes ...byte) Option {
	return func(c *Coordinator) {
		for _, node := range nodes {
			c.add(node)
		}
	}
}

// Coordinator owns the link and the drives on it.
type Coordinator struct {
	client  *comm.Client
	policy  fx.PollPolicy
	devices map[byte]*drive.Device
	calib   map[byte]Calibration
	lock    sync.RWMutex
}

// New creates a Coordinator over port.
func New(port comm.Port, opts ...Option) *Coordinator {
	c := &Coordinator{
		client:  comm.NewClient(port),
		policy:  drive.DefaultPollPolicy,
		devices: make(map[byte]*drive.Device),
		calib:   make(map[byte]Calibration),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Client returns the client shared by all drives.
func (c *Coordinator) Client() *comm.Client {
	return c.client
}

// Add adds a drive, or returns the existing one.
func (c *Coordinator) Add(node byte) *drive.Device {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.add(node)
}

func (c *Coordinator) add(node byte) *drive.Device {
	if dev := c.devices[node]; dev != nil {
		return dev
	}
	dev := drive.New(c.client, node)
	dev.Policy = c.policy
	c.devices[node] = dev
	return dev
}

// Device gets the drive on node, nil if not added.
func (c *Coordinator) Device(node byte) *drive.Device {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.devices[node]
}

// Nodes lists the nodes in ascending order.
func (c *Coordinator) Nodes() []byte {
	c.lock.RLock()
	defer c.lock.RUnlock()
	nodes := make([]byte, 0, len(c.devices))
	for node := range c.devices {
		nodes = append(nodes, node)
	}
	sortNodes(nodes)
	return nodes
}

// Calibrate sets the unit conversion of an axis.
func (c *Coordinator) Calibrate(node byte, calib Calibration) {
	c.lock.Lock()
	c.calib[node] = calib
	c.lock.Unlock()
}

// Calibration gets the unit conversion of an axis.
func (c *Coordinator) Calibration(node byte) Calibration {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if calib, ok := c.calib[node]; ok {
		return calib
	}
	return DefaultCalibration
}

func (c *Coordinator) lookup(nodes []byte) ([]*drive.Device, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	devs := make([]*drive.Device, 0, len(nodes))
	for _, node := range nodes {
		dev := c.devices[node]
		if dev == nil {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNode, node)
		}
		devs = append(devs, dev)
	}
	return devs, nil
}

func (c *Coordinator) selectNodes(nodes []byte) []byte {
	if len(nodes) == 0 {
		return c.Nodes()
	}
	return nodes
}

// EnableAll enables the listed drives, or all when none is listed.
// All drives are attempted, failures are aggregated.
func (c *Coordinator) EnableAll(ctx context.Context, nodes ...byte) error {
	return c.forEach(nodes, func(dev *drive.Device) error { return dev.Enable(ctx) })
}

// DisableAll disables the listed drives, or all when none is listed.
func (c *Coordinator) DisableAll(ctx context.Context, nodes ...byte) error {
	return c.forEach(nodes, func(dev *drive.Device) error { return dev.Disable(ctx) })
}

func (c *Coordinator) forEach(nodes []byte, fn func(*drive.Device) error) error {
	devs, err := c.lookup(c.selectNodes(nodes))
	if err != nil {
		return err
	}
	errs := &fx.AggregatedError{}
	for _, dev := range devs {
		if err := fn(dev); err != nil {
			errs.Add(fmt.Errorf("node %d: %w", dev.Node, err))
		}
	}
	return errs.Aggregate()
}

// MoveAllAbsolute starts moves of all listed drives and waits until every
// position is strictly closer than tolerance to its target, a tolerance
// of 0 requires the exact target. ctx must carry a deadline, fx.ErrTimeout
// is returned when it expires first.
func (c *Coordinator) MoveAllAbsolute(ctx context.Context, targets map[byte]int32, tolerance int32, pollInterval time.Duration) error {
	if _, ok := ctx.Deadline(); !ok {
		return ErrNoDeadline
	}
	nodes := make([]byte, 0, len(targets))
	for node := range targets {
		nodes = append(nodes, node)
	}
	sortNodes(nodes)
	devs, err := c.lookup(nodes)
	if err != nil {
		return err
	}
	for _, dev := range devs {
		if err := dev.MoveAbsolute(targets[dev.Node]); err != nil {
			return err
		}
	}
	glog.V(2).Infof("move %v tolerance %d", targets, tolerance)
	return fx.Poll(ctx, pollInterval, func() (bool, error) {
		for _, dev := range devs {
			pos, err := dev.Position()
			if err != nil {
				return false, err
			}
			if !Within(pos, targets[dev.Node], tolerance) {
				return false, nil
			}
		}
		return true, nil
	})
}

// MoveAllRelative reads the current positions and moves by the offsets.
func (c *Coordinator) MoveAllRelative(ctx context.Context, offsets map[byte]int32, tolerance int32, pollInterval time.Duration) error {
	if _, ok := ctx.Deadline(); !ok {
		return ErrNoDeadline
	}
	targets := make(map[byte]int32, len(offsets))
	for node, offset := range offsets {
		dev := c.Device(node)
		if dev == nil {
			return fmt.Errorf("%w: %d", ErrUnknownNode, node)
		}
		pos, err := dev.Position()
		if err != nil {
			return err
		}
		targets[node] = pos + offset
	}
	return c.MoveAllAbsolute(ctx, targets, tolerance, pollInterval)
}

// MoveAllUnits converts targets in user units using axis calibrations
// and moves absolutely.
func (c *Coordinator) MoveAllUnits(ctx context.Context, targets map[byte]float64, tolerance int32, pollInterval time.Duration) error {
	ticks := make(map[byte]int32, len(targets))
	for node, units := range targets {
		ticks[node] = c.Calibration(node).Ticks(units)
	}
	return c.MoveAllAbsolute(ctx, ticks, tolerance, pollInterval)
}

// Positions reads the positions of the listed drives, or all.
func (c *Coordinator) Positions(nodes ...byte) (map[byte]int32, error) {
	devs, err := c.lookup(c.selectNodes(nodes))
	if err != nil {
		return nil, err
	}
	positions := make(map[byte]int32, len(devs))
	for _, dev := range devs {
		pos, err := dev.Position()
		if err != nil {
			return nil, err
		}
		positions[dev.Node] = pos
	}
	return positions, nil
}

// AxisSnapshot is the observed state of one axis.
type AxisSnapshot struct {
	Node     byte
	Status   uint16
	State    drive.State
	Position int32
	Reached  bool
}

// Snapshot reads status and position of the listed drives, or all.
func (c *Coordinator) Snapshot(nodes ...byte) ([]AxisSnapshot, error) {
	devs, err := c.lookup(c.selectNodes(nodes))
	if err != nil {
		return nil, err
	}
	snapshots := make([]AxisSnapshot, 0, len(devs))
	for _, dev := range devs {
		status, err := dev.Status()
		if err != nil {
			return nil, err
		}
		pos, err := dev.Position()
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, AxisSnapshot{
			Node:     dev.Node,
			Status:   status,
			State:    drive.StateOf(status),
			Position: pos,
			Reached:  status&drive.StatusTargetReached != 0,
		})
	}
	return snapshots, nil
}

// Close closes the link, drives become unusable.
func (c *Coordinator) Close() error {
	return c.client.Close()
}

func sortNodes(nodes []byte) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
}

// Within tells if pos is strictly closer than tolerance to target.
// A tolerance of 0 or less only accepts target itself.
func Within(pos, target, tolerance int32) bool {
	tol := abs(int64(tolerance))
	if tol < 1 {
		tol = 1
	}
	return abs(int64(pos)-int64(target)) < tol
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
