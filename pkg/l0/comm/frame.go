package comm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Frame markers.
const (
	SOF byte = 0x53
	EOF byte = 0x45
)

// Command is the command byte in request payload.
type Command byte

// Commands
const (
	CmdGet Command = 0x01
	CmdSet Command = 0x02
)

// String implements fmt.Stringer.
func (c Command) String() string {
	switch c {
	case CmdGet:
		return "GET"
	case CmdSet:
		return "SET"
	}
	return fmt.Sprintf("CMD(%02x)", byte(c))
}

// headerLen is the size of node, command, address and subindex in payload.
const headerLen = 5

// EncodeFrame wraps payload with markers, length and CRC.
func EncodeFrame(payload []byte) []byte {
	b := make([]byte, len(payload)+4)
	b[0], b[1] = SOF, byte(len(payload)+2)
	copy(b[2:], payload)
	b[len(b)-2] = CRC8(b[1 : len(b)-2])
	b[len(b)-1] = EOF
	return b
}

// WriteFrame encodes payload and writes the frame in a single Write.
// A short write is reported as io.ErrShortWrite.
func WriteFrame(w io.Writer, payload []byte) error {
	frame := EncodeFrame(payload)
	n, err := w.Write(frame)
	if err != nil {
		if isClosed(err) {
			return ErrClosed
		}
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	return nil
}

// ReadFrame reads exactly one frame and returns the payload between LEN and CRC.
// timeout bounds the whole frame once the first bytes arrived, 0 means
// relying on the read timeout of r only.
// Bytes read are consumed even when an error is returned.
func ReadFrame(r io.Reader, timeout time.Duration) ([]byte, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	head := make([]byte, 2)
	if err := readFull(r, head, deadline); err != nil {
		return nil, err
	}
	remain := int(head[1])
	if remain < 2 {
		return nil, fmt.Errorf("%w: declared length %d", ErrTruncated, remain)
	}
	full := make([]byte, 2+remain)
	copy(full, head)
	if err := readFull(r, full[2:], deadline); err != nil {
		return nil, err
	}
	if crc := CRC8(full[1 : len(full)-2]); crc != full[len(full)-2] {
		return nil, fmt.Errorf("%w: want %02x got %02x", ErrCRCMismatch, crc, full[len(full)-2])
	}
	return full[2 : len(full)-2], nil
}

func readFull(r io.Reader, buf []byte, deadline time.Time) error {
	for n := 0; n < len(buf); {
		nr, err := r.Read(buf[n:])
		n += nr
		if n >= len(buf) {
			return nil
		}
		if err != nil {
			if isClosed(err) {
				return ErrClosed
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF || os.IsTimeout(err) {
				return fmt.Errorf("%w: %d of %d bytes", ErrTruncated, n, len(buf))
			}
			return err
		}
		if nr == 0 || (!deadline.IsZero() && time.Now().After(deadline)) {
			return fmt.Errorf("%w: %d of %d bytes", ErrTruncated, n, len(buf))
		}
	}
	return nil
}

func isClosed(err error) bool {
	return errors.Is(err, os.ErrClosed) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, ErrClosed)
}

// Request is a register request.
type Request struct {
	Node     byte
	Command  Command
	Address  uint16
	Subindex byte
	Value    []byte
}

// Payload encodes the request payload.
func (r *Request) Payload() []byte {
	b := make([]byte, headerLen, headerLen+len(r.Value))
	b[0], b[1] = r.Node, byte(r.Command)
	binary.LittleEndian.PutUint16(b[2:], r.Address)
	b[4] = r.Subindex
	if r.Command == CmdSet {
		b = append(b, r.Value...)
	}
	return b
}

// WriteTo writes the request as a frame.
func (r *Request) WriteTo(w io.Writer) (int64, error) {
	frame := EncodeFrame(r.Payload())
	n, err := w.Write(frame)
	if err == nil && n != len(frame) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Response is a decoded response payload.
type Response struct {
	Node     byte
	Command  Command
	Address  uint16
	Subindex byte
	Value    []byte
}

// ParseResponse decodes the payload returned by ReadFrame.
// The value starts after the 5 byte header echoing the request.
func ParseResponse(payload []byte) (*Response, error) {
	if len(payload) < headerLen {
		return nil, fmt.Errorf("%w: response header %d bytes", ErrTruncated, len(payload))
	}
	return &Response{
		Node:     payload[0],
		Command:  Command(payload[1]),
		Address:  binary.LittleEndian.Uint16(payload[2:]),
		Subindex: payload[4],
		Value:    payload[headerLen:],
	}, nil
}

// Payload encodes the response payload, used by device side implementations.
func (r *Response) Payload() []byte {
	b := make([]byte, headerLen, headerLen+len(r.Value))
	b[0], b[1] = r.Node, byte(r.Command)
	binary.LittleEndian.PutUint16(b[2:], r.Address)
	b[4] = r.Subindex
	return append(b, r.Value...)
}
