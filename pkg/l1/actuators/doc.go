// Package actuators re-exports the L0 frame structures with richer
// types for L1 controller code.
package actuators

// The L0 codecs stay byte-for-byte faithful to the wire, including the
// firmware's lax spots. This package is the strict layer on top: typed
// enumerations, boolean flags, slices instead of sentinel-padded
// arrays, and full id validation on the way back to a frame. Values
// marshal to and from JSON for tooling and diagnostics.
