package comm

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeFrame(t *testing.T) {
	frame := EncodeFrame([]byte{0x01, 0x01, 0x40, 0x60, 0x00})
	require.Equal(t, []byte{0x53, 0x07, 0x01, 0x01, 0x40, 0x60, 0x00, 0x72, 0x45}, frame)

	frame = EncodeFrame(nil)
	require.Equal(t, []byte{SOF, 2, CRC8([]byte{2}), EOF}, frame)
}

func TestFrameRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x01},
		{0x01, 0x01, 0x41, 0x60, 0x00},
		{0x02, 0x02, 0x7a, 0x60, 0x00, 0xa0, 0x86, 0x01, 0x00},
		bytes.Repeat([]byte{0x53, 0x45}, 60),
	}
	for _, p := range payloads {
		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, p))
		decoded, err := ReadFrame(&buf, 0)
		require.NoError(t, err)
		require.Equal(t, p, decoded)
		require.Zero(t, buf.Len())
	}
}

func TestFrameCorruption(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x40, 0x60, 0x00, 0x0f, 0x00}
	frame := EncodeFrame(payload)
	// flip every bit in payload bytes, LEN is covered separately.
	for i := 2; i < len(frame)-2; i++ {
		for bit := uint(0); bit < 8; bit++ {
			corrupted := append([]byte{}, frame...)
			corrupted[i] ^= 1 << bit
			_, err := ReadFrame(bytes.NewReader(corrupted), 0)
			require.Truef(t, errors.Is(err, ErrCRCMismatch), "byte %d bit %d: %v", i, bit, err)
		}
	}
}

func TestFrameLengthCorruption(t *testing.T) {
	frame := EncodeFrame([]byte{0x01, 0x01, 0x41, 0x60, 0x00, 0x37, 0x02})
	// a shorter declared length keeps the frame readable but fails CRC.
	corrupted := append([]byte{}, frame...)
	corrupted[1]--
	_, err := ReadFrame(bytes.NewReader(corrupted), 0)
	require.True(t, errors.Is(err, ErrCRCMismatch), "%v", err)
	// a longer declared length runs out of bytes.
	corrupted = append([]byte{}, frame...)
	corrupted[1]++
	_, err = ReadFrame(bytes.NewReader(corrupted), 0)
	require.True(t, errors.Is(err, ErrTruncated), "%v", err)
}

func TestReadFrameTruncated(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"sof only", []byte{SOF}},
		{"invalid length", []byte{SOF, 1, 0, 0}},
		{"partial", []byte{SOF, 7, 0x01, 0x01}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadFrame(bytes.NewReader(tc.in), 0)
			require.True(t, errors.Is(err, ErrTruncated), "%v", err)
		})
	}
}

func TestReadFrameConsumesOnlyFrame(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(EncodeFrame([]byte{1, 2, 3}))
	buf.Write([]byte{0xaa, 0xbb})
	p, err := ReadFrame(&buf, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, p)
	require.Equal(t, []byte{0xaa, 0xbb}, buf.Bytes())
}

type closedReader struct{}

func (closedReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestReadFrameClosed(t *testing.T) {
	_, err := ReadFrame(closedReader{}, 0)
	require.Equal(t, ErrClosed, err)
}

func TestRequestPayload(t *testing.T) {
	testCases := []struct {
		name   string
		req    Request
		expect []byte
	}{
		{"get status", Request{Node: 1, Command: CmdGet, Address: 0x6041}, []byte{1, 1, 0x41, 0x60, 0}},
		{"get ignores value", Request{Node: 2, Command: CmdGet, Address: 0x2331, Subindex: 4, Value: []byte{9}}, []byte{2, 1, 0x31, 0x23, 4}},
		{"set control word", Request{Node: 1, Command: CmdSet, Address: 0x6040, Value: []byte{0x0f, 0}}, []byte{1, 2, 0x40, 0x60, 0, 0x0f, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.req.Payload())
			var buf bytes.Buffer
			n, err := tc.req.WriteTo(&buf)
			require.NoError(t, err)
			require.Equal(t, EncodeFrame(tc.expect), buf.Bytes())
			require.Equal(t, int64(len(tc.expect)+4), n)
		})
	}
}

func TestParseResponse(t *testing.T) {
	frame := []byte{0x53, 0x09, 0x01, 0x01, 0x41, 0x60, 0x00, 0x37, 0x02, 0xe2, 0x45}
	payload, err := ReadFrame(bytes.NewReader(frame), 0)
	require.NoError(t, err)
	resp, err := ParseResponse(payload)
	require.NoError(t, err)
	require.Equal(t, byte(1), resp.Node)
	require.Equal(t, CmdGet, resp.Command)
	require.Equal(t, uint16(0x6041), resp.Address)
	require.Equal(t, frame[7:len(frame)-2], resp.Value)
	require.Equal(t, payload, resp.Payload())

	_, err = ParseResponse([]byte{1, 1, 0x41})
	require.True(t, errors.Is(err, ErrTruncated))
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) - 1, nil }

func TestWriteFrameShort(t *testing.T) {
	require.Equal(t, io.ErrShortWrite, WriteFrame(shortWriter{}, []byte{1}))
}
