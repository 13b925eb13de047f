package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates fewer bytes than declared arrived before timeout.
	ErrTruncated = errors.New("truncated frame")
	// ErrCRCMismatch indicates the frame integrity check failed.
	ErrCRCMismatch = errors.New("crc mismatch")
	// ErrBadTerminator indicates a frame doesn't end with EOF.
	ErrBadTerminator = errors.New("bad frame terminator")
	// ErrClosed indicates the transport has been closed.
	ErrClosed = errors.New("transport closed")
	// ErrValueWidth indicates the value bytes don't match the register width.
	ErrValueWidth = errors.New("invalid value width")
)

// RegisterError wraps a failed transaction with the addressed register.
type RegisterError struct {
	Node     byte
	Address  uint16
	Subindex byte
	Err      error
}

// Error implements error.
func (e *RegisterError) Error() string {
	return fmt.Sprintf("node %d register %04x:%d: %v", e.Node, e.Address, e.Subindex, e.Err)
}

// Unwrap returns the underlying error.
func (e *RegisterError) Unwrap() error {
	return e.Err
}
