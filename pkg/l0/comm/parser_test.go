package comm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type parserTestSequence struct {
	in        []byte
	receiving bool
	final     ParseResult
}

type parserTestSequenceBuilder struct {
	seq []parserTestSequence
}

func parserTestSequences() *parserTestSequenceBuilder {
	return &parserTestSequenceBuilder{}
}

func (b *parserTestSequenceBuilder) on(in ...byte) *parserTestSequenceBuilder {
	b.seq = append(b.seq, parserTestSequence{in: in})
	return b
}

func (b *parserTestSequenceBuilder) onFrame(payload ...byte) *parserTestSequenceBuilder {
	return b.on(EncodeFrame(payload)...).frame(payload...)
}

func (b *parserTestSequenceBuilder) receiving() *parserTestSequenceBuilder {
	b.seq[len(b.seq)-1].receiving = true
	return b
}

func (b *parserTestSequenceBuilder) frame(payload ...byte) *parserTestSequenceBuilder {
	if payload == nil {
		payload = []byte{}
	}
	b.seq[len(b.seq)-1].final = ParseResult{Payload: payload}
	return b
}

func (b *parserTestSequenceBuilder) failed(err error) *parserTestSequenceBuilder {
	b.seq[len(b.seq)-1].final = ParseResult{Err: err}
	return b
}

func (b *parserTestSequenceBuilder) build() []parserTestSequence {
	return b.seq
}

func TestParser(t *testing.T) {
	testCases := []struct {
		name string
		seq  []parserTestSequence
	}{
		{
			name: "single frame",
			seq: parserTestSequences().
				onFrame(0x01, 0x01, 0x40, 0x60, 0x00).
				build(),
		},
		{
			name: "back to back",
			seq: parserTestSequences().
				onFrame(0x01, 0x01, 0x41, 0x60, 0x00).
				onFrame(0x02, 0x02, 0x40, 0x60, 0x00, 0x06, 0x00).
				onFrame().
				build(),
		},
		{
			name: "skip garbage before sof",
			seq: parserTestSequences().
				on(0x00, 0xff, 0x45, 0x12).
				onFrame(0x01, 0x01, 0x64, 0x60, 0x00).
				build(),
		},
		{
			name: "partial frame",
			seq: parserTestSequences().
				on(SOF, 0x07, 0x01).receiving().
				on(0x01, 0x40, 0x60, 0x00, 0x72).receiving().
				on(EOF).frame(0x01, 0x01, 0x40, 0x60, 0x00).
				build(),
		},
		{
			name: "invalid length resyncs",
			seq: parserTestSequences().
				on(SOF, 0x01).
				onFrame(0x01).
				build(),
		},
		{
			name: "crc mismatch",
			seq: parserTestSequences().
				on(SOF, 0x07, 0x01, 0x01, 0x40, 0x60, 0x00, 0x73, EOF).failed(ErrCRCMismatch).
				onFrame(0x01, 0x01, 0x40, 0x60, 0x00).
				build(),
		},
		{
			name: "bad terminator",
			seq: parserTestSequences().
				on(SOF, 0x07, 0x01, 0x01, 0x40, 0x60, 0x00, 0x72, 0x00).failed(ErrBadTerminator).
				onFrame(0x01).
				build(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var parser Parser
			for n, s := range tc.seq {
				var pr ParseResult
				for i, b := range s.in {
					pr = parser.Parse(b)
					if i+1 < len(s.in) {
						require.Falsef(t, pr.Ready(), "seq[%d][%d] unexpected frame", n, i)
						require.NoErrorf(t, pr.Err, "seq[%d][%d] unexpected error", n, i)
					}
				}
				require.Equalf(t, s.final, pr, "seq[%d] final mismatch", n)
				require.Equalf(t, s.receiving, parser.Receiving(), "seq[%d] receiving mismatch", n)
			}
		})
	}
}

func TestParserReset(t *testing.T) {
	var parser Parser
	parser.Parse(SOF)
	parser.Parse(0x07)
	require.True(t, parser.Receiving())
	parser.Reset()
	require.False(t, parser.Receiving())
	frame := EncodeFrame([]byte{9})
	var pr ParseResult
	for _, b := range frame {
		pr = parser.Parse(b)
	}
	require.True(t, pr.Ready())
	require.Equal(t, []byte{9}, pr.Payload)
}
