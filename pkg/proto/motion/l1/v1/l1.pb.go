// Go types for l1.proto, kept in the protoc-gen-go v1.3 layout without the
// file descriptor. Update together with l1.proto.

package l1

import (
	fmt "fmt"
	proto "github.com/golang/protobuf/proto"
	math "math"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// This is a compile-time assertion to ensure that this generated file
// is compatible with the proto package it is being compiled against.
// A compilation error at this line likely means your copy of the
// proto package needs to be updated.
const _ = proto.ProtoPackageIsVersion3 // please upgrade the proto package

type DriveState int32

const (
	DriveState_OTHER              DriveState = 0
	DriveState_SWITCH_ON_DISABLED DriveState = 1
	DriveState_QUICK_STOP         DriveState = 2
	DriveState_OPERATION_ENABLED  DriveState = 3
)

var DriveState_name = map[int32]string{
	0: "OTHER",
	1: "SWITCH_ON_DISABLED",
	2: "QUICK_STOP",
	3: "OPERATION_ENABLED",
}

var DriveState_value = map[string]int32{
	"OTHER":              0,
	"SWITCH_ON_DISABLED": 1,
	"QUICK_STOP":         2,
	"OPERATION_ENABLED":  3,
}

func (x DriveState) String() string {
	return proto.EnumName(DriveState_name, int32(x))
}

// Typed wraps an encoded message with its type.
type Typed struct {
	TypeId               uint32   `protobuf:"varint,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	Sequence             uint32   `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Message              []byte   `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Typed) Reset()         { *m = Typed{} }
func (m *Typed) String() string { return proto.CompactTextString(m) }
func (*Typed) ProtoMessage()    {}

func (m *Typed) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Typed.Unmarshal(m, b)
}
func (m *Typed) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Typed.Marshal(b, m, deterministic)
}
func (m *Typed) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Typed.Merge(m, src)
}
func (m *Typed) XXX_Size() int {
	return xxx_messageInfo_Typed.Size(m)
}
func (m *Typed) XXX_DiscardUnknown() {
	xxx_messageInfo_Typed.DiscardUnknown(m)
}

var xxx_messageInfo_Typed proto.InternalMessageInfo

func (m *Typed) GetTypeId() uint32 {
	if m != nil {
		return m.TypeId
	}
	return 0
}

func (m *Typed) GetSequence() uint32 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

func (m *Typed) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

type CommandOK struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CommandOK) Reset()         { *m = CommandOK{} }
func (m *CommandOK) String() string { return proto.CompactTextString(m) }
func (*CommandOK) ProtoMessage()    {}

func (m *CommandOK) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_CommandOK.Unmarshal(m, b)
}
func (m *CommandOK) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_CommandOK.Marshal(b, m, deterministic)
}
func (m *CommandOK) XXX_Merge(src proto.Message) {
	xxx_messageInfo_CommandOK.Merge(m, src)
}
func (m *CommandOK) XXX_Size() int {
	return xxx_messageInfo_CommandOK.Size(m)
}
func (m *CommandOK) XXX_DiscardUnknown() {
	xxx_messageInfo_CommandOK.DiscardUnknown(m)
}

var xxx_messageInfo_CommandOK proto.InternalMessageInfo

type CommandErr struct {
	Message              string   `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CommandErr) Reset()         { *m = CommandErr{} }
func (m *CommandErr) String() string { return proto.CompactTextString(m) }
func (*CommandErr) ProtoMessage()    {}

func (m *CommandErr) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_CommandErr.Unmarshal(m, b)
}
func (m *CommandErr) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_CommandErr.Marshal(b, m, deterministic)
}
func (m *CommandErr) XXX_Merge(src proto.Message) {
	xxx_messageInfo_CommandErr.Merge(m, src)
}
func (m *CommandErr) XXX_Size() int {
	return xxx_messageInfo_CommandErr.Size(m)
}
func (m *CommandErr) XXX_DiscardUnknown() {
	xxx_messageInfo_CommandErr.DiscardUnknown(m)
}

var xxx_messageInfo_CommandErr proto.InternalMessageInfo

func (m *CommandErr) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type AxisEnable struct {
	Nodes                []uint32 `protobuf:"varint,1,rep,packed,name=nodes,proto3" json:"nodes,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AxisEnable) Reset()         { *m = AxisEnable{} }
func (m *AxisEnable) String() string { return proto.CompactTextString(m) }
func (*AxisEnable) ProtoMessage()    {}

func (m *AxisEnable) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AxisEnable.Unmarshal(m, b)
}
func (m *AxisEnable) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AxisEnable.Marshal(b, m, deterministic)
}
func (m *AxisEnable) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AxisEnable.Merge(m, src)
}
func (m *AxisEnable) XXX_Size() int {
	return xxx_messageInfo_AxisEnable.Size(m)
}
func (m *AxisEnable) XXX_DiscardUnknown() {
	xxx_messageInfo_AxisEnable.DiscardUnknown(m)
}

var xxx_messageInfo_AxisEnable proto.InternalMessageInfo

func (m *AxisEnable) GetNodes() []uint32 {
	if m != nil {
		return m.Nodes
	}
	return nil
}

type AxisDisable struct {
	Nodes                []uint32 `protobuf:"varint,1,rep,packed,name=nodes,proto3" json:"nodes,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AxisDisable) Reset()         { *m = AxisDisable{} }
func (m *AxisDisable) String() string { return proto.CompactTextString(m) }
func (*AxisDisable) ProtoMessage()    {}

func (m *AxisDisable) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AxisDisable.Unmarshal(m, b)
}
func (m *AxisDisable) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AxisDisable.Marshal(b, m, deterministic)
}
func (m *AxisDisable) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AxisDisable.Merge(m, src)
}
func (m *AxisDisable) XXX_Size() int {
	return xxx_messageInfo_AxisDisable.Size(m)
}
func (m *AxisDisable) XXX_DiscardUnknown() {
	xxx_messageInfo_AxisDisable.DiscardUnknown(m)
}

var xxx_messageInfo_AxisDisable proto.InternalMessageInfo

func (m *AxisDisable) GetNodes() []uint32 {
	if m != nil {
		return m.Nodes
	}
	return nil
}

type AxisTarget struct {
	Node                 uint32   `protobuf:"varint,1,opt,name=node,proto3" json:"node,omitempty"`
	Position             int32    `protobuf:"zigzag32,2,opt,name=position,proto3" json:"position,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AxisTarget) Reset()         { *m = AxisTarget{} }
func (m *AxisTarget) String() string { return proto.CompactTextString(m) }
func (*AxisTarget) ProtoMessage()    {}

func (m *AxisTarget) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AxisTarget.Unmarshal(m, b)
}
func (m *AxisTarget) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AxisTarget.Marshal(b, m, deterministic)
}
func (m *AxisTarget) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AxisTarget.Merge(m, src)
}
func (m *AxisTarget) XXX_Size() int {
	return xxx_messageInfo_AxisTarget.Size(m)
}
func (m *AxisTarget) XXX_DiscardUnknown() {
	xxx_messageInfo_AxisTarget.DiscardUnknown(m)
}

var xxx_messageInfo_AxisTarget proto.InternalMessageInfo

func (m *AxisTarget) GetNode() uint32 {
	if m != nil {
		return m.Node
	}
	return 0
}

func (m *AxisTarget) GetPosition() int32 {
	if m != nil {
		return m.Position
	}
	return 0
}

type AxisMove struct {
	Targets              []*AxisTarget `protobuf:"bytes,1,rep,name=targets,proto3" json:"targets,omitempty"`
	Tolerance            uint32        `protobuf:"varint,2,opt,name=tolerance,proto3" json:"tolerance,omitempty"`
	TimeoutMs            uint32        `protobuf:"varint,3,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
	Relative             bool          `protobuf:"varint,4,opt,name=relative,proto3" json:"relative,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *AxisMove) Reset()         { *m = AxisMove{} }
func (m *AxisMove) String() string { return proto.CompactTextString(m) }
func (*AxisMove) ProtoMessage()    {}

func (m *AxisMove) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AxisMove.Unmarshal(m, b)
}
func (m *AxisMove) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AxisMove.Marshal(b, m, deterministic)
}
func (m *AxisMove) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AxisMove.Merge(m, src)
}
func (m *AxisMove) XXX_Size() int {
	return xxx_messageInfo_AxisMove.Size(m)
}
func (m *AxisMove) XXX_DiscardUnknown() {
	xxx_messageInfo_AxisMove.DiscardUnknown(m)
}

var xxx_messageInfo_AxisMove proto.InternalMessageInfo

func (m *AxisMove) GetTargets() []*AxisTarget {
	if m != nil {
		return m.Targets
	}
	return nil
}

func (m *AxisMove) GetTolerance() uint32 {
	if m != nil {
		return m.Tolerance
	}
	return 0
}

func (m *AxisMove) GetTimeoutMs() uint32 {
	if m != nil {
		return m.TimeoutMs
	}
	return 0
}

func (m *AxisMove) GetRelative() bool {
	if m != nil {
		return m.Relative
	}
	return false
}

type AxisStatusQuery struct {
	Nodes                []uint32 `protobuf:"varint,1,rep,packed,name=nodes,proto3" json:"nodes,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AxisStatusQuery) Reset()         { *m = AxisStatusQuery{} }
func (m *AxisStatusQuery) String() string { return proto.CompactTextString(m) }
func (*AxisStatusQuery) ProtoMessage()    {}

func (m *AxisStatusQuery) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AxisStatusQuery.Unmarshal(m, b)
}
func (m *AxisStatusQuery) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AxisStatusQuery.Marshal(b, m, deterministic)
}
func (m *AxisStatusQuery) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AxisStatusQuery.Merge(m, src)
}
func (m *AxisStatusQuery) XXX_Size() int {
	return xxx_messageInfo_AxisStatusQuery.Size(m)
}
func (m *AxisStatusQuery) XXX_DiscardUnknown() {
	xxx_messageInfo_AxisStatusQuery.DiscardUnknown(m)
}

var xxx_messageInfo_AxisStatusQuery proto.InternalMessageInfo

func (m *AxisStatusQuery) GetNodes() []uint32 {
	if m != nil {
		return m.Nodes
	}
	return nil
}

type AxisState struct {
	Node                 uint32     `protobuf:"varint,1,opt,name=node,proto3" json:"node,omitempty"`
	Status               uint32     `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	State                DriveState `protobuf:"varint,3,opt,name=state,proto3,enum=motion.l1.v1.DriveState" json:"state,omitempty"`
	Position             int32      `protobuf:"zigzag32,4,opt,name=position,proto3" json:"position,omitempty"`
	Reached              bool       `protobuf:"varint,5,opt,name=reached,proto3" json:"reached,omitempty"`
	XXX_NoUnkeyedLiteral struct{}   `json:"-"`
	XXX_unrecognized     []byte     `json:"-"`
	XXX_sizecache        int32      `json:"-"`
}

func (m *AxisState) Reset()         { *m = AxisState{} }
func (m *AxisState) String() string { return proto.CompactTextString(m) }
func (*AxisState) ProtoMessage()    {}

func (m *AxisState) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AxisState.Unmarshal(m, b)
}
func (m *AxisState) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AxisState.Marshal(b, m, deterministic)
}
func (m *AxisState) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AxisState.Merge(m, src)
}
func (m *AxisState) XXX_Size() int {
	return xxx_messageInfo_AxisState.Size(m)
}
func (m *AxisState) XXX_DiscardUnknown() {
	xxx_messageInfo_AxisState.DiscardUnknown(m)
}

var xxx_messageInfo_AxisState proto.InternalMessageInfo

func (m *AxisState) GetNode() uint32 {
	if m != nil {
		return m.Node
	}
	return 0
}

func (m *AxisState) GetStatus() uint32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *AxisState) GetState() DriveState {
	if m != nil {
		return m.State
	}
	return DriveState_OTHER
}

func (m *AxisState) GetPosition() int32 {
	if m != nil {
		return m.Position
	}
	return 0
}

func (m *AxisState) GetReached() bool {
	if m != nil {
		return m.Reached
	}
	return false
}

type AxisStatus struct {
	Axes                 []*AxisState `protobuf:"bytes,1,rep,name=axes,proto3" json:"axes,omitempty"`
	XXX_NoUnkeyedLiteral struct{}     `json:"-"`
	XXX_unrecognized     []byte       `json:"-"`
	XXX_sizecache        int32        `json:"-"`
}

func (m *AxisStatus) Reset()         { *m = AxisStatus{} }
func (m *AxisStatus) String() string { return proto.CompactTextString(m) }
func (*AxisStatus) ProtoMessage()    {}

func (m *AxisStatus) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AxisStatus.Unmarshal(m, b)
}
func (m *AxisStatus) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AxisStatus.Marshal(b, m, deterministic)
}
func (m *AxisStatus) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AxisStatus.Merge(m, src)
}
func (m *AxisStatus) XXX_Size() int {
	return xxx_messageInfo_AxisStatus.Size(m)
}
func (m *AxisStatus) XXX_DiscardUnknown() {
	xxx_messageInfo_AxisStatus.DiscardUnknown(m)
}

var xxx_messageInfo_AxisStatus proto.InternalMessageInfo

func (m *AxisStatus) GetAxes() []*AxisState {
	if m != nil {
		return m.Axes
	}
	return nil
}

type RegisterRead struct {
	Node                 uint32   `protobuf:"varint,1,opt,name=node,proto3" json:"node,omitempty"`
	Register             string   `protobuf:"bytes,2,opt,name=register,proto3" json:"register,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *RegisterRead) Reset()         { *m = RegisterRead{} }
func (m *RegisterRead) String() string { return proto.CompactTextString(m) }
func (*RegisterRead) ProtoMessage()    {}

func (m *RegisterRead) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_RegisterRead.Unmarshal(m, b)
}
func (m *RegisterRead) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_RegisterRead.Marshal(b, m, deterministic)
}
func (m *RegisterRead) XXX_Merge(src proto.Message) {
	xxx_messageInfo_RegisterRead.Merge(m, src)
}
func (m *RegisterRead) XXX_Size() int {
	return xxx_messageInfo_RegisterRead.Size(m)
}
func (m *RegisterRead) XXX_DiscardUnknown() {
	xxx_messageInfo_RegisterRead.DiscardUnknown(m)
}

var xxx_messageInfo_RegisterRead proto.InternalMessageInfo

func (m *RegisterRead) GetNode() uint32 {
	if m != nil {
		return m.Node
	}
	return 0
}

func (m *RegisterRead) GetRegister() string {
	if m != nil {
		return m.Register
	}
	return ""
}

type RegisterWrite struct {
	Node                 uint32   `protobuf:"varint,1,opt,name=node,proto3" json:"node,omitempty"`
	Register             string   `protobuf:"bytes,2,opt,name=register,proto3" json:"register,omitempty"`
	Value                int64    `protobuf:"zigzag64,3,opt,name=value,proto3" json:"value,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *RegisterWrite) Reset()         { *m = RegisterWrite{} }
func (m *RegisterWrite) String() string { return proto.CompactTextString(m) }
func (*RegisterWrite) ProtoMessage()    {}

func (m *RegisterWrite) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_RegisterWrite.Unmarshal(m, b)
}
func (m *RegisterWrite) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_RegisterWrite.Marshal(b, m, deterministic)
}
func (m *RegisterWrite) XXX_Merge(src proto.Message) {
	xxx_messageInfo_RegisterWrite.Merge(m, src)
}
func (m *RegisterWrite) XXX_Size() int {
	return xxx_messageInfo_RegisterWrite.Size(m)
}
func (m *RegisterWrite) XXX_DiscardUnknown() {
	xxx_messageInfo_RegisterWrite.DiscardUnknown(m)
}

var xxx_messageInfo_RegisterWrite proto.InternalMessageInfo

func (m *RegisterWrite) GetNode() uint32 {
	if m != nil {
		return m.Node
	}
	return 0
}

func (m *RegisterWrite) GetRegister() string {
	if m != nil {
		return m.Register
	}
	return ""
}

func (m *RegisterWrite) GetValue() int64 {
	if m != nil {
		return m.Value
	}
	return 0
}

type RegisterValue struct {
	Node                 uint32   `protobuf:"varint,1,opt,name=node,proto3" json:"node,omitempty"`
	Register             string   `protobuf:"bytes,2,opt,name=register,proto3" json:"register,omitempty"`
	Value                int64    `protobuf:"zigzag64,3,opt,name=value,proto3" json:"value,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *RegisterValue) Reset()         { *m = RegisterValue{} }
func (m *RegisterValue) String() string { return proto.CompactTextString(m) }
func (*RegisterValue) ProtoMessage()    {}

func (m *RegisterValue) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_RegisterValue.Unmarshal(m, b)
}
func (m *RegisterValue) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_RegisterValue.Marshal(b, m, deterministic)
}
func (m *RegisterValue) XXX_Merge(src proto.Message) {
	xxx_messageInfo_RegisterValue.Merge(m, src)
}
func (m *RegisterValue) XXX_Size() int {
	return xxx_messageInfo_RegisterValue.Size(m)
}
func (m *RegisterValue) XXX_DiscardUnknown() {
	xxx_messageInfo_RegisterValue.DiscardUnknown(m)
}

var xxx_messageInfo_RegisterValue proto.InternalMessageInfo

func (m *RegisterValue) GetNode() uint32 {
	if m != nil {
		return m.Node
	}
	return 0
}

func (m *RegisterValue) GetRegister() string {
	if m != nil {
		return m.Register
	}
	return ""
}

func (m *RegisterValue) GetValue() int64 {
	if m != nil {
		return m.Value
	}
	return 0
}

func init() {
	proto.RegisterEnum("motion.l1.v1.DriveState", DriveState_name, DriveState_value)
	proto.RegisterType((*Typed)(nil), "motion.l1.v1.Typed")
	proto.RegisterType((*CommandOK)(nil), "motion.l1.v1.CommandOK")
	proto.RegisterType((*CommandErr)(nil), "motion.l1.v1.CommandErr")
	proto.RegisterType((*AxisEnable)(nil), "motion.l1.v1.AxisEnable")
	proto.RegisterType((*AxisDisable)(nil), "motion.l1.v1.AxisDisable")
	proto.RegisterType((*AxisTarget)(nil), "motion.l1.v1.AxisTarget")
	proto.RegisterType((*AxisMove)(nil), "motion.l1.v1.AxisMove")
	proto.RegisterType((*AxisStatusQuery)(nil), "motion.l1.v1.AxisStatusQuery")
	proto.RegisterType((*AxisState)(nil), "motion.l1.v1.AxisState")
	proto.RegisterType((*AxisStatus)(nil), "motion.l1.v1.AxisStatus")
	proto.RegisterType((*RegisterRead)(nil), "motion.l1.v1.RegisterRead")
	proto.RegisterType((*RegisterWrite)(nil), "motion.l1.v1.RegisterWrite")
	proto.RegisterType((*RegisterValue)(nil), "motion.l1.v1.RegisterValue")
}
