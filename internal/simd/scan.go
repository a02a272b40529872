package simd

// statusLastBit is the bit of an arc's status byte (the byte immediately
// following its letter byte) marking it as the last sibling in its node.
// Mirrors the arc encoding documented by the dict package; duplicated here
// as a small numeric constant rather than imported to keep this package
// free of a dependency on the dictionary format.
const statusLastBit = 1 << 1

// gatherLimit bounds how many letters ScanLetter will gather into its
// scratch buffer before giving up on the accelerated path and finishing
// the scan with a plain strided loop. Real dictionaries rarely branch
// wider than the size of an alphabet at any one node.
const gatherLimit = 256

// ScanLetter scans the sibling arcs of a dictionary node — a run of
// fixed-stride arc records starting at buf[node], each `stride` bytes wide
// with the letter as its first byte and the status byte as its second —
// for one whose letter equals target. It stops at (and includes) the arc
// whose status byte has the last-sibling bit set.
//
// Returns the offset of the matching arc and true, or false if no sibling
// letter matches. useAccel lets the caller opt out of the gather-and-scan
// path (Config.EnableSIMD) even when the running CPU supports it; ScanLetter
// itself never consults HasAccel directly so callers stay in control.
func ScanLetter(buf []byte, stride int, node int, target byte, useAccel bool) (int, bool) {
	if !useAccel {
		return scanStrided(buf, stride, node, target)
	}

	var letters [gatherLimit]byte
	var offsets [gatherLimit]int
	n := 0
	cursor := node
	for n < gatherLimit {
		letters[n] = buf[cursor]
		offsets[n] = cursor
		last := buf[cursor+1]&statusLastBit != 0
		n++
		if last {
			if idx := IndexByte(letters[:n], target); idx >= 0 {
				return offsets[idx], true
			}
			return 0, false
		}
		cursor += stride
	}

	// Node wider than gatherLimit: check what was gathered, then finish
	// the remainder with the strided fallback.
	if idx := IndexByte(letters[:n], target); idx >= 0 {
		return offsets[idx], true
	}
	return scanStrided(buf, stride, cursor, target)
}

func scanStrided(buf []byte, stride int, node int, target byte) (int, bool) {
	cursor := node
	for {
		if buf[cursor] == target {
			return cursor, true
		}
		if buf[cursor+1]&statusLastBit != 0 {
			return 0, false
		}
		cursor += stride
	}
}
