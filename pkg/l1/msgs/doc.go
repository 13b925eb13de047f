// Package msgs provides L1 protocol support and all message schemas.
package msgs

// L1 protocol is communicated between an axis controller daemon and its
// remote clients, and carries hardware-agnostic axis primitives.
//
// Producer: axis controller (replies, status events)
// Consumer: remote clients (mcctl, mcmon)
