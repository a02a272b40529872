package dict

import (
	"encoding/binary"

	"github.com/coregx/majka/internal/simd"
)

// statusByte bit layout (the byte immediately following an arc's letter):
//
//	bit 0 (0x01) final   — this arc terminates an accepted string
//	bit 1 (0x02) last    — this arc is the last sibling at its node
//	bit 2 (0x04) inline  — the successor follows immediately at cursor+2
const (
	statusFinal  = 1 << 0
	statusLast   = 1 << 1
	statusInline = 1 << 2
)

// ArcRef is a byte offset into a Dictionary's buffer identifying an arc.
// Following an ArcRef with Children yields the offset of the node (sibling
// arc run) that arc points to. A zero ArcRef is the reserved sink value:
// "no further arcs". noRoot is used for start1/start2 when the dictionary
// has no compound extension; it is distinct from the valid sink value 0.
type ArcRef int

// noRoot marks an absent alternate root (start1/start2).
const noRoot ArcRef = -1

// NoRoot is noRoot exported for callers outside the package (walk's
// compound fallback needs to recognize an absent alternate root).
const NoRoot ArcRef = noRoot

// Stride returns the fixed byte width of one arc record: one letter byte
// plus the goto_length pointer bytes.
func (d *Dictionary) Stride() int { return 1 + d.GotoLength }

// Letter returns the letter byte of the arc at cursor.
func (d *Dictionary) Letter(cursor ArcRef) byte { return d.Buf[cursor] }

// IsFinal reports whether the arc at cursor terminates an accepted string.
func (d *Dictionary) IsFinal(cursor ArcRef) bool {
	return d.Buf[cursor+1]&statusFinal != 0
}

// IsLast reports whether the arc at cursor is the last sibling at its node.
func (d *Dictionary) IsLast(cursor ArcRef) bool {
	return d.Buf[cursor+1]&statusLast != 0
}

// NextSibling advances cursor to the next arc at the same node, regardless
// of whether cursor's successor is inline or packed.
func (d *Dictionary) NextSibling(cursor ArcRef) ArcRef {
	return cursor + ArcRef(d.Stride())
}

// Children resolves the node (first sibling arc) that cursor points to: the
// byte immediately after cursor's letter, if the inline bit is set, or the
// 29-bit packed offset otherwise. A returned value of 0 is the sink: no
// further arcs.
func (d *Dictionary) Children(cursor ArcRef) ArcRef {
	status := d.Buf[cursor+1]
	if status&statusInline != 0 {
		return cursor + 2
	}
	return ArcRef(d.descendOffset(cursor))
}

// descendOffset reads the goto_length-byte little-endian packed pointer
// starting at cursor+1, masks it to the low goto_length bytes (the read
// itself may touch up to 8 bytes, which the loader's trailing padding
// makes safe), and shifts off the three status bits.
func (d *Dictionary) descendOffset(cursor ArcRef) int {
	var scratch [8]byte
	copy(scratch[:], d.Buf[cursor+1:cursor+1+8])
	word := binary.LittleEndian.Uint64(scratch[:])
	word &= (uint64(1) << uint(8*d.GotoLength)) - 1
	return int(word >> 3)
}

// firstNode returns the arc offset of the dictionary's virtual root arc:
// descending it (via Children) yields the real top-level sibling arcs.
// Offset 0 is reserved as the sink value, so the on-disk format places
// this virtual root arc at 1+goto_length, immediately after it.
func (d *Dictionary) firstNode() ArcRef {
	return ArcRef(1 + d.GotoLength)
}

// FindLetter scans the siblings of the node reached from root for one
// whose letter equals target, per spec.md's exact-match walk: dictionaries
// are built so letters are unique per node, so the first match is the
// only match.
func (d *Dictionary) FindLetter(node ArcRef, target byte) (ArcRef, bool) {
	if node == 0 {
		return 0, false
	}
	arc, ok := simd.ScanLetter(d.Buf, d.Stride(), int(node), target, d.UseSIMD && simd.HasAccel)
	return ArcRef(arc), ok
}
