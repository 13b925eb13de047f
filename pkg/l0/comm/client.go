package comm

import (
	"io"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Port is the byte channel to the motion controller.
// Read is expected to return (with or without data) once the port read
// timeout expires, Flush discards buffered input and output.
type Port interface {
	io.ReadWriteCloser
	Flush() error
}

// DefaultTimeout bounds reading a response frame.
const DefaultTimeout = 2 * time.Second

// Client performs register transactions over a Port.
// All transactions are serialized, at most one is in flight.
type Client struct {
	Timeout time.Duration

	port   Port
	lock   sync.Mutex
	closed bool
}

// NewClient creates client and wraps the port.
func NewClient(port Port) *Client {
	return &Client{Timeout: DefaultTimeout, port: port}
}

// Port gets wrapped Port.
func (c *Client) Port() Port {
	return c.port
}

// Do sends a request and waits for the response.
func (c *Client) Do(req *Request) (*Response, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	if err := c.port.Flush(); err != nil {
		if isClosed(err) {
			return nil, ErrClosed
		}
		return nil, err
	}
	payload := req.Payload()
	if glog.V(4) {
		glog.Infof("TX %d %s %04x:%d % x", req.Node, req.Command, req.Address, req.Subindex, payload)
	}
	if err := WriteFrame(c.port, payload); err != nil {
		return nil, err
	}
	payload, err := ReadFrame(c.port, c.Timeout)
	if err != nil {
		return nil, err
	}
	if glog.V(4) {
		glog.Infof("RX % x", payload)
	}
	resp, err := ParseResponse(payload)
	if err != nil {
		return nil, err
	}
	if resp.Node != req.Node || resp.Address != req.Address || resp.Subindex != req.Subindex {
		glog.Warningf("response %d %04x:%d doesn't match request %d %04x:%d",
			resp.Node, resp.Address, resp.Subindex, req.Node, req.Address, req.Subindex)
	}
	return resp, nil
}

// ReadRegister reads the raw value of a register.
func (c *Client) ReadRegister(node byte, address uint16, subindex byte) ([]byte, error) {
	resp, err := c.Do(&Request{Node: node, Command: CmdGet, Address: address, Subindex: subindex})
	if err != nil {
		return nil, &RegisterError{Node: node, Address: address, Subindex: subindex, Err: err}
	}
	return resp.Value, nil
}

// SetRegister writes the raw value of a register.
// The response is read and validated but its payload is discarded.
func (c *Client) SetRegister(node byte, address uint16, subindex byte, value []byte) error {
	_, err := c.Do(&Request{Node: node, Command: CmdSet, Address: address, Subindex: subindex, Value: value})
	if err != nil {
		return &RegisterError{Node: node, Address: address, Subindex: subindex, Err: err}
	}
	return nil
}

// ReadInt reads a register and decodes the value.
func (c *Client) ReadInt(node byte, reg Register) (int64, error) {
	b, err := c.ReadRegister(node, reg.Address, reg.Subindex)
	if err != nil {
		return 0, err
	}
	v, err := reg.Decode(b)
	if err != nil {
		return 0, &RegisterError{Node: node, Address: reg.Address, Subindex: reg.Subindex, Err: err}
	}
	return v, nil
}

// WriteInt encodes the value and writes a register.
func (c *Client) WriteInt(node byte, reg Register, v int64) error {
	return c.SetRegister(node, reg.Address, reg.Subindex, reg.Encode(v))
}

// GetStatusWord reads the status word.
func (c *Client) GetStatusWord(node byte) (uint16, error) {
	v, err := c.ReadInt(node, StatusWord)
	return uint16(v), err
}

// GetPosition reads the actual position.
func (c *Client) GetPosition(node byte) (int32, error) {
	v, err := c.ReadInt(node, ActualPosition)
	return int32(v), err
}

// SetControlWord writes the control word.
func (c *Client) SetControlWord(node byte, word uint16) error {
	return c.WriteInt(node, ControlWord, int64(word))
}

// SetTargetPosition writes the target position.
func (c *Client) SetTargetPosition(node byte, pos int32) error {
	return c.WriteInt(node, TargetPosition, int64(pos))
}

// Close closes the port, later transactions fail with ErrClosed.
func (c *Client) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.port.Close()
}
