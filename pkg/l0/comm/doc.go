// Package comm provides L0 protocol support.
package comm

// L0 protocol is communicated between the host (L1 controller) and the
// motion controller firmware over a half-duplex serial link. Every exchange
// is a single request frame answered by a single response frame:
//
//   0x53 LEN PAYLOAD... CRC 0x45
//
// LEN is the payload length plus 2 (LEN itself and CRC). CRC is CRC8 over
// LEN and PAYLOAD. A request payload is NODE CMD ADDR_LO ADDR_HI SUBIDX
// followed by the value bytes for SET. A response echoes the same 5 byte
// header before the value bytes.
//
// There's no sequence number on the wire, so the link only stays framed
// when exactly one transaction is in flight. Client serializes all
// transactions and flushes stale bytes before each request.
//
// Producer: motion controller firmware
// Consumer: L1 controller
