// Package sim simulates a motion controller with drives attached, speaking
// the L0 protocol. It implements comm.Port and can replace the serial port.
package sim

import (
	"bytes"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/motion.go/pkg/l0/comm"
)

// Controller is a simulated motion controller implementing comm.Port.
type Controller struct {
	// Now is the time source, defaults to time.Now.
	Now func() time.Time

	drives   map[byte]*Drive
	parser   comm.Parser
	out      bytes.Buffer
	faults   []FaultKind
	requests int
	closed   bool
	lock     sync.Mutex
}

// FaultKind is a link fault injected into the next response.
type FaultKind int

// Faults
const (
	// FaultTruncate sends only the first byte of the response.
	FaultTruncate FaultKind = iota + 1
	// FaultCorrupt flips a bit in the response CRC.
	FaultCorrupt
	// FaultDrop sends no response at all.
	FaultDrop
)

// NewController creates a Controller.
func NewController() *Controller {
	return &Controller{Now: time.Now, drives: make(map[byte]*Drive)}
}

// AddDrive attaches a simulated drive.
func (c *Controller) AddDrive(node byte, conf DriveConfig) *Drive {
	c.lock.Lock()
	defer c.lock.Unlock()
	d := NewDrive(node, conf, c.Now())
	c.drives[node] = d
	return d
}

// Drive gets the drive on node.
func (c *Controller) Drive(node byte) *Drive {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.drives[node]
}

// Nodes lists nodes of attached drives.
func (c *Controller) Nodes() []byte {
	c.lock.Lock()
	defer c.lock.Unlock()
	nodes := make([]byte, 0, len(c.drives))
	for node := range c.drives {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}

// Inject queues faults applied to the following responses in order.
func (c *Controller) Inject(faults ...FaultKind) {
	c.lock.Lock()
	c.faults = append(c.faults, faults...)
	c.lock.Unlock()
}

// Requests returns the number of request frames received.
func (c *Controller) Requests() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.requests
}

// Write implements io.Writer, requests are processed synchronously.
func (c *Controller) Write(p []byte) (int, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return 0, os.ErrClosed
	}
	for _, b := range p {
		pr := c.parser.Parse(b)
		if pr.Err != nil {
			glog.Warningf("sim: request rejected: %v", pr.Err)
			continue
		}
		if pr.Ready() {
			c.handle(pr.Payload)
		}
	}
	return len(p), nil
}

// Read implements io.Reader. Without pending output it returns
// immediately with a timeout error like an expired serial read.
func (c *Controller) Read(p []byte) (int, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return 0, os.ErrClosed
	}
	if c.out.Len() == 0 {
		return 0, errReadTimeout
	}
	return c.out.Read(p)
}

// Flush implements comm.Port.
func (c *Controller) Flush() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return os.ErrClosed
	}
	c.out.Reset()
	c.parser.Reset()
	return nil
}

// Close implements io.Closer.
func (c *Controller) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.closed = true
	return nil
}

func (c *Controller) handle(payload []byte) {
	c.requests++
	if len(payload) < 5 {
		return
	}
	req := &comm.Request{
		Node:     payload[0],
		Command:  comm.Command(payload[1]),
		Address:  uint16(payload[2]) | uint16(payload[3])<<8,
		Subindex: payload[4],
		Value:    payload[5:],
	}
	d := c.drives[req.Node]
	if d == nil {
		// nobody on the bus answers.
		return
	}
	resp := &comm.Response{
		Node:     req.Node,
		Command:  req.Command,
		Address:  req.Address,
		Subindex: req.Subindex,
		Value:    d.Handle(req, c.Now()),
	}
	frame := comm.EncodeFrame(resp.Payload())
	var fault FaultKind
	if len(c.faults) > 0 {
		fault, c.faults = c.faults[0], c.faults[1:]
	}
	switch fault {
	case FaultTruncate:
		frame = frame[:1]
	case FaultCorrupt:
		frame[len(frame)-2] ^= 0x01
	case FaultDrop:
		frame = nil
	}
	c.out.Write(frame)
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "read timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var errReadTimeout error = timeoutError{}
