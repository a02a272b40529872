//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// HasAccel reports whether the gather-and-scan fast path in ScanLetter is
// worth taking on this CPU. SSE2 is baseline on amd64 (and therefore
// effectively always true), but the check mirrors the feature-gated
// dispatch used throughout the regex engine's own SIMD packages rather
// than assuming unconditionally.
var HasAccel = cpu.X86.HasSSE2
