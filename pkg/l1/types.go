// Package l1 defines the remote control level between an axis controller
// daemon and its clients.
package l1

import (
	"context"
	"time"

	fx "github.com/robotalks/motion.go/pkg/framework"
)

// Registrar publishes an axis controller so clients can reach it.
// It integrates with the loop and delivers received commands as messages.
type Registrar interface {
	// SendEvent sends an event to connected clients.
	SendEvent(context.Context, fx.Message) error
}

// Command represents a received command to be processed.
type Command interface {
	Msg() fx.Message
	Done(fx.Message) error
}

// CommandMsg wraps a Command as a Message.
type CommandMsg struct {
	Command Command
}

// NewMessage implements Message.
func (m *CommandMsg) NewMessage() fx.Message { return &CommandMsg{} }

// ControllerRef is a reference to an axis controller.
type ControllerRef struct {
	// Type is the controller type, e.g. the machine model.
	Type string `json:"type"`
	// ID is unique ID of the controller host.
	ID string `json:"id"`
}

// Name retrieves the name from ref.
func (r ControllerRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates ControllerRef is valid.
func (r ControllerRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// ControllerMeta provides metadata of an axis controller.
type ControllerMeta struct {
	Description string            `json:"description,omitempty"`
	Nodes       []byte            `json:"nodes,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ControllerInfo provides information of an axis controller.
type ControllerInfo struct {
	Ref  ControllerRef  `json:"ref"`
	Meta ControllerMeta `json:"meta"`
}

// Connector is used by clients to connect to an axis controller.
type Connector interface {
	// Discover enumerates registered controllers.
	Discover(context.Context) ([]ControllerInfo, error)
	// Connect connects to the specified controller.
	Connect(context.Context, ControllerRef) (ControllerConn, error)
}

// ControllerConn is the connection to a controller.
type ControllerConn interface {
	// DoCommand executes a command expecting a result within the
	// default expiration.
	DoCommand(fx.Message) CommandFuture
	// DoCommandWithin executes a command expecting a result within timeout.
	DoCommandWithin(fx.Message, time.Duration) CommandFuture
}

// Result represents result of a command.
type Result struct {
	Msg fx.Message
	Err error
}

// CommandFuture is the future of sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}

// Wait waits for the result of a command.
func Wait(ctx context.Context, f CommandFuture) (fx.Message, error) {
	select {
	case res := <-f.ResultChan():
		return res.Msg, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
