// Package websocket carries L1 packets over websocket connections, one
// binary frame per packet.
package websocket

import (
	"golang.org/x/net/websocket"

	"github.com/robotalks/motion.go/pkg/l1/comm/stream"
)

// ReadWriter implements PacketReadWriter on a websocket connection.
type ReadWriter struct {
	Conn *websocket.Conn
}

// New wraps websocket.Conn, frames larger than stream.MaxPacketSize are rejected.
func New(conn *websocket.Conn) *ReadWriter {
	conn.MaxPayloadBytes = stream.MaxPacketSize
	return &ReadWriter{Conn: conn}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var pkt []byte
	if err := websocket.Message.Receive(p.Conn, &pkt); err != nil {
		return nil, err
	}
	return pkt, nil
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send(p.Conn, pkt)
}

// Close closes the connection.
func (p *ReadWriter) Close() error {
	return p.Conn.Close()
}
