package comm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterCodec(t *testing.T) {
	testCases := []struct {
		name  string
		reg   Register
		value int64
		bytes []byte
	}{
		{"u16", StatusWord, 0x0427, []byte{0x27, 0x04}},
		{"u16 max", ControlWord, 0xffff, []byte{0xff, 0xff}},
		{"i32 positive", TargetPosition, 100000, []byte{0xa0, 0x86, 0x01, 0x00}},
		{"i32 negative", ActualPosition, -1, []byte{0xff, 0xff, 0xff, 0xff}},
		{"i8", ModesOfOperation, -3, []byte{0xfd}},
		{"u32", SerialNumber, 0xdeadbeef, []byte{0xef, 0xbe, 0xad, 0xde}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.bytes, tc.reg.Encode(tc.value))
			v, err := tc.reg.Decode(tc.bytes)
			require.NoError(t, err)
			require.Equal(t, tc.value, v)
		})
	}
}

func TestRegisterDecodeWidth(t *testing.T) {
	_, err := StatusWord.Decode([]byte{1})
	require.True(t, errors.Is(err, ErrValueWidth))
	_, err = Register{Address: 0x1234, Width: 3}.Decode([]byte{1, 2, 3})
	require.True(t, errors.Is(err, ErrValueWidth))
}

func TestLookupRegister(t *testing.T) {
	reg, ok := LookupRegister("target-position-source")
	require.True(t, ok)
	require.Equal(t, uint16(0x2331), reg.Address)
	require.Equal(t, byte(4), reg.Subindex)
	_, ok = LookupRegister("unknown")
	require.False(t, ok)
	require.Equal(t, "1234:2", Register{Address: 0x1234, Subindex: 2}.String())
}
