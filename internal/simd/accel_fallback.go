//go:build !amd64

package simd

// HasAccel is false on non-amd64 architectures: ScanLetter falls back to a
// plain strided scan, which is already optimal without a vector unit to
// gather into.
var HasAccel = false
