// Package frames provides codecs for the actuator and IO state frames
// exchanged between L0 firmware and L1 controller.
package frames

// Each frame type carries the complete state of one actuator family
// (servos, motors, brushless units) or of the digital inputs (tirette).
// A frame is an already-delimited byte sequence: delimiting, checksums
// and retransmission are handled by the link layer and never reach this
// package.
//
// Decoding never fails loudly. Every decoded value embeds a ParseFailed
// flag which callers must check before trusting any other field.
// Encoding is all-or-nothing: it returns the number of bytes written,
// or 0 when the arguments are invalid or the buffer is too small.
//
// All codecs are pure functions over their inputs. They keep no state
// between calls and are safe for concurrent use.
//
// Producer: L0 firmware
// Consumer: L1 controller
