package msgs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/motion.go/pkg/framework"
	pb "github.com/robotalks/motion.go/pkg/proto/motion/l1/v1"
)

func TestTypedRoundTrip(t *testing.T) {
	move := &AxisMove{}
	move.AddTarget(1, -204800).AddTarget(2, 1000)
	move.Tolerance, move.TimeoutMs = 5, 3000

	cases := []struct {
		name    string
		msg     fx.Message
		command bool
		reply   bool
		event   bool
	}{
		{"move", move, true, false, false},
		{"enable", &AxisEnable{pb.AxisEnable{Nodes: []uint32{1, 2}}}, true, false, false},
		{"status reply", &AxisStatus{pb.AxisStatus{Axes: []*pb.AxisState{
			{Node: 1, Status: 0x637, State: pb.DriveState_OPERATION_ENABLED, Position: -5, Reached: true},
		}}}, true, true, false},
		{"status event", &AxisStatusEvent{pb.AxisStatus{Axes: []*pb.AxisState{{Node: 3}}}}, false, false, true},
		{"register", &RegisterWrite{pb.RegisterWrite{Node: 1, Register: "digital-outputs", Value: -1}}, true, false, false},
		{"error", NewCommandErrFromMsg("boom"), true, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			typed, err := TypedFrom(c.msg)
			require.NoError(t, err)
			typed.Sequence = 7
			data, err := typed.Encode()
			require.NoError(t, err)

			decoded, err := DecodeTyped(data)
			require.NoError(t, err)
			require.EqualValues(t, 7, decoded.Sequence)
			require.Equal(t, c.command, decoded.IsCommand())
			require.Equal(t, c.reply, decoded.IsReply())
			require.Equal(t, c.event, decoded.IsEvent())
			msg, err := decoded.Decode()
			require.NoError(t, err)
			require.IsType(t, c.msg, msg)
			require.Equal(t, c.msg.(SerializableMessage).Serializable().String(),
				msg.(SerializableMessage).Serializable().String())
		})
	}
}

func TestTypedUnknownType(t *testing.T) {
	typed := &Typed{Typed: pb.Typed{TypeId: GroupCustom | 1}}
	_, err := typed.Decode()
	var unknown *UnknownTypeError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, GroupCustom|1, unknown.TypeID)
}

type plainMsg struct{}

func (plainMsg) NewMessage() fx.Message { return plainMsg{} }

func TestTypedNotSerializable(t *testing.T) {
	_, err := TypedFrom(plainMsg{})
	require.Equal(t, ErrNotSerializable, err)
}

func TestMessageTypesConsistent(t *testing.T) {
	for id, msg := range MessageTypes {
		require.Equal(t, id, msg.NewMessage().(SerializableMessage).TypeID())
	}
}
