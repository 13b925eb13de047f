package comm

// Parser parses frames from a byte stream one byte at a time.
// It's used on the device side which receives requests without knowing
// where a frame starts, e.g. after noise on the line.
type Parser struct {
	state  parseState
	frame  []byte
	remain int
}

// ParseResult indicates the result after one parsing step.
// Payload is set when a valid frame completes, Err is set when a
// complete frame is rejected.
type ParseResult struct {
	Payload []byte
	Err     error
}

// Ready indicates a frame has been accepted.
func (r ParseResult) Ready() bool {
	return r.Payload != nil
}

type parseState int

const (
	stateSOF  parseState = iota // hunting for SOF
	stateLen                    // waiting for LEN
	stateData                   // waiting for payload, CRC and EOF
)

// Receiving indicates the parser is in the middle of a frame.
func (p *Parser) Receiving() bool {
	return p.state != stateSOF
}

// Reset drops the partially received frame.
func (p *Parser) Reset() {
	p.state, p.frame, p.remain = stateSOF, nil, 0
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	switch p.state {
	case stateSOF:
		if b == SOF {
			p.frame = append(p.frame[:0], b)
			p.state = stateLen
		}
	case stateLen:
		if b < 2 {
			p.Reset()
			return
		}
		p.frame = append(p.frame, b)
		p.remain = int(b)
		p.state = stateData
	case stateData:
		p.frame = append(p.frame, b)
		p.remain--
		if p.remain == 0 {
			return p.frameReady()
		}
	}
	return
}

func (p *Parser) frameReady() (pr ParseResult) {
	frame := p.frame
	p.Reset()
	n := len(frame)
	switch {
	case frame[n-1] != EOF:
		pr.Err = ErrBadTerminator
	case CRC8(frame[1:n-2]) != frame[n-2]:
		pr.Err = ErrCRCMismatch
	default:
		pr.Payload = append([]byte{}, frame[2:n-2]...)
	}
	return
}
