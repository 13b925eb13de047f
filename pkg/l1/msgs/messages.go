package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/motion.go/pkg/framework"
	pb "github.com/robotalks/motion.go/pkg/proto/motion/l1/v1"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{CommandErr: pb.CommandErr{Message: message}}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// AxisEnable command enables the listed axes, all when empty.
type AxisEnable struct {
	pb.AxisEnable
}

// NewMessage implements Message.
func (m *AxisEnable) NewMessage() fx.Message { return &AxisEnable{} }

// TypeID implements SerializableMessage.
func (m *AxisEnable) TypeID() uint32 { return AxisEnableTypeID }

// Serializable implements SerializableMessage.
func (m *AxisEnable) Serializable() proto.Message { return &m.AxisEnable }

// AxisDisable command disables the listed axes, all when empty.
type AxisDisable struct {
	pb.AxisDisable
}

// NewMessage implements Message.
func (m *AxisDisable) NewMessage() fx.Message { return &AxisDisable{} }

// TypeID implements SerializableMessage.
func (m *AxisDisable) TypeID() uint32 { return AxisDisableTypeID }

// Serializable implements SerializableMessage.
func (m *AxisDisable) Serializable() proto.Message { return &m.AxisDisable }

// AxisMove command moves axes and completes when all targets are reached.
type AxisMove struct {
	pb.AxisMove
}

// NewMessage implements Message.
func (m *AxisMove) NewMessage() fx.Message { return &AxisMove{} }

// TypeID implements SerializableMessage.
func (m *AxisMove) TypeID() uint32 { return AxisMoveTypeID }

// Serializable implements SerializableMessage.
func (m *AxisMove) Serializable() proto.Message { return &m.AxisMove }

// AddTarget appends a target.
func (m *AxisMove) AddTarget(node byte, position int32) *AxisMove {
	m.Targets = append(m.Targets, &pb.AxisTarget{Node: uint32(node), Position: position})
	return m
}

// AxisStatusQuery command.
type AxisStatusQuery struct {
	pb.AxisStatusQuery
}

// NewMessage implements Message.
func (m *AxisStatusQuery) NewMessage() fx.Message { return &AxisStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *AxisStatusQuery) TypeID() uint32 { return AxisStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *AxisStatusQuery) Serializable() proto.Message { return &m.AxisStatusQuery }

// AxisStatus replies AxisStatusQuery.
type AxisStatus struct {
	pb.AxisStatus
}

// NewMessage implements Message.
func (m *AxisStatus) NewMessage() fx.Message { return &AxisStatus{} }

// TypeID implements SerializableMessage.
func (m *AxisStatus) TypeID() uint32 { return AxisStatusTypeID }

// Serializable implements SerializableMessage.
func (m *AxisStatus) Serializable() proto.Message { return &m.AxisStatus }

// AxisStatusEvent is published periodically.
type AxisStatusEvent struct {
	pb.AxisStatus
}

// NewMessage implements Message.
func (m *AxisStatusEvent) NewMessage() fx.Message { return &AxisStatusEvent{} }

// TypeID implements SerializableMessage.
func (m *AxisStatusEvent) TypeID() uint32 { return AxisStatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *AxisStatusEvent) Serializable() proto.Message { return &m.AxisStatus }

// RegisterRead command reads a known register by name.
type RegisterRead struct {
	pb.RegisterRead
}

// NewMessage implements Message.
func (m *RegisterRead) NewMessage() fx.Message { return &RegisterRead{} }

// TypeID implements SerializableMessage.
func (m *RegisterRead) TypeID() uint32 { return RegisterReadTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterRead) Serializable() proto.Message { return &m.RegisterRead }

// RegisterValue replies RegisterRead.
type RegisterValue struct {
	pb.RegisterValue
}

// NewMessage implements Message.
func (m *RegisterValue) NewMessage() fx.Message { return &RegisterValue{} }

// TypeID implements SerializableMessage.
func (m *RegisterValue) TypeID() uint32 { return RegisterValueTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterValue) Serializable() proto.Message { return &m.RegisterValue }

// RegisterWrite command writes a known register by name.
type RegisterWrite struct {
	pb.RegisterWrite
}

// NewMessage implements Message.
func (m *RegisterWrite) NewMessage() fx.Message { return &RegisterWrite{} }

// TypeID implements SerializableMessage.
func (m *RegisterWrite) TypeID() uint32 { return RegisterWriteTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterWrite) Serializable() proto.Message { return &m.RegisterWrite }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupAxis    uint32 = 0x00030000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID       uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID      uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	AxisEnableTypeID      uint32 = GroupAxis | 0x0000
	AxisDisableTypeID     uint32 = GroupAxis | 0x0001
	AxisMoveTypeID        uint32 = GroupAxis | 0x0002
	AxisStatusQueryTypeID uint32 = GroupAxis | 0x0003
	AxisStatusTypeID      uint32 = AxisStatusQueryTypeID | TypeIDMaskReply
	RegisterReadTypeID    uint32 = GroupAxis | 0x0004
	RegisterValueTypeID   uint32 = RegisterReadTypeID | TypeIDMaskReply
	RegisterWriteTypeID   uint32 = GroupAxis | 0x0005
	AxisStatusEventTypeID uint32 = TypeIDKindEvent | GroupAxis | 0x0003
)
