package comm

import (
	"encoding/binary"
	"fmt"
)

// Register addresses a parameter in the object dictionary of a node.
// Width is the value size in bytes (1, 2 or 4), values are little-endian.
type Register struct {
	Name     string
	Address  uint16
	Subindex byte
	Width    int
	Signed   bool
}

// String implements fmt.Stringer.
func (r Register) String() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("%04x:%d", r.Address, r.Subindex)
}

// Encode converts v into value bytes of the register width.
func (r Register) Encode(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b[:r.Width]
}

// Decode converts value bytes into an integer honoring signedness.
func (r Register) Decode(b []byte) (int64, error) {
	if len(b) != r.Width {
		return 0, fmt.Errorf("%w: %s expects %d bytes, got %d", ErrValueWidth, r, r.Width, len(b))
	}
	switch r.Width {
	case 1:
		if r.Signed {
			return int64(int8(b[0])), nil
		}
		return int64(b[0]), nil
	case 2:
		v := binary.LittleEndian.Uint16(b)
		if r.Signed {
			return int64(int16(v)), nil
		}
		return int64(v), nil
	case 4:
		v := binary.LittleEndian.Uint32(b)
		if r.Signed {
			return int64(int32(v)), nil
		}
		return int64(v), nil
	}
	return 0, fmt.Errorf("%w: %s has width %d", ErrValueWidth, r, r.Width)
}

// Known registers.
var (
	ControlWord             = Register{Name: "control-word", Address: 0x6040, Width: 2}
	StatusWord              = Register{Name: "status-word", Address: 0x6041, Width: 2}
	ModesOfOperation        = Register{Name: "modes-of-operation", Address: 0x6060, Width: 1, Signed: true}
	ModesOfOperationDisplay = Register{Name: "modes-of-operation-display", Address: 0x6061, Width: 1, Signed: true}
	ActualPosition          = Register{Name: "actual-position", Address: 0x6064, Width: 4, Signed: true}
	TargetPosition          = Register{Name: "target-position", Address: 0x607a, Width: 4, Signed: true}
	TargetPositionSource    = Register{Name: "target-position-source", Address: 0x2331, Subindex: 4, Width: 2}
	DigitalOutputs          = Register{Name: "digital-outputs", Address: 0x2311, Subindex: 4, Width: 2}

	DeviceType        = Register{Name: "device-type", Address: 0x1000, Width: 4}
	ProducerHeartbeat = Register{Name: "producer-heartbeat", Address: 0x1017, Width: 2}
	SerialNumber      = Register{Name: "serial-number", Address: 0x1018, Subindex: 4, Width: 4}
	ErrorState        = Register{Name: "error-state", Address: 0x3001, Subindex: 8, Width: 2}
	ErrorCode         = Register{Name: "error-code", Address: 0x3001, Subindex: 9, Width: 2}
	EncoderIncrements = Register{Name: "encoder-increments", Address: 0x608f, Subindex: 1, Width: 4}
	FeedConstant      = Register{Name: "feed-constant", Address: 0x6092, Subindex: 1, Width: 4}
)

// Registers lists the known registers.
var Registers = []Register{
	ControlWord,
	StatusWord,
	ModesOfOperation,
	ModesOfOperationDisplay,
	ActualPosition,
	TargetPosition,
	TargetPositionSource,
	DigitalOutputs,
	DeviceType,
	ProducerHeartbeat,
	SerialNumber,
	ErrorState,
	ErrorCode,
	EncoderIncrements,
	FeedConstant,
}

// LookupRegister finds a known register by name.
func LookupRegister(name string) (Register, bool) {
	for _, r := range Registers {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}
