// Package dicttest builds minimal, valid majka dictionary file buffers for
// tests, so package tests can exercise internal/dict, internal/walk, and
// internal/format without a real dictionary file on disk.
//
// There is no dictionary-construction code in the teacher or the rest of
// the example pack to ground this on (majka deliberately keeps building
// the FSA out of scope, per spec.md's Non-goals); this package is grounded
// directly on the on-disk format internal/dict.Open and internal/dict/arc.go
// decode, and on original_source/majka4j/windows/majka.h's first_node and
// set_next_node definitions for the virtual root arc's placement.
package dicttest

import "encoding/binary"

// Node is one arc of a trie used to build a test dictionary: a letter, an
// optional "this arc also ends an entry" marker, and the further arcs
// that continue the annotation or a divergent entry sharing this prefix.
type Node struct {
	Letter   byte
	Final    bool
	Children []*Node
}

// Chain builds a linear run of Nodes, one per byte of letters, with only
// the last one Final, and returns its head. This is the shape of a single
// dictionary entry with no shared prefix or branching.
func Chain(letters []byte) *Node {
	var head, tail *Node
	for _, l := range letters {
		n := &Node{Letter: l}
		if head == nil {
			head = n
		} else {
			tail.Children = []*Node{n}
		}
		tail = n
	}
	tail.Final = true
	return head
}

// Append extends n's chain of (non-branching) descendants with more
// letters, and returns the new tail (so callers can keep extending, or
// mark it Final).
func Append(n *Node, letters []byte) *Node {
	tail := n
	for len(tail.Children) == 1 {
		tail = tail.Children[0]
	}
	for _, l := range letters {
		child := &Node{Letter: l}
		tail.Children = []*Node{child}
		tail = child
	}
	return tail
}

// Options controls the header fields of a constructed dictionary.
type Options struct {
	Type            byte
	GotoLength      int // defaults to 4 if zero
	MaxResult       uint16
	MaxResultsCount uint16
	MaxResultsSize  uint32
}

const (
	statusFinal        = 1 << 0
	statusLast         = 1 << 1
	magicFormatVersion = 5
	magicMajorVersion  = 1
)

// group is one sibling run awaiting layout.
type group struct {
	nodes  []*Node
	offset int // assigned once laid out; -1 until then
}

// Build serializes roots — the dictionary's top-level sibling arcs — into
// a complete dictionary file (header plus body), ready to be written to a
// file internal/dict.Open can read, or decoded in memory directly.
func Build(opts Options, roots []*Node) []byte {
	gotoLength := opts.GotoLength
	if gotoLength == 0 {
		gotoLength = 4
	}
	stride := 1 + gotoLength

	// Reserved prefix: [0, 1+gotoLength) is an unused pad (offset 0 is the
	// reserved sink value, so real content cannot start there), followed
	// by the virtual root arc record at [1+gotoLength, 2+2*gotoLength).
	body := make([]byte, 2+2*gotoLength)

	pending := []*group{{nodes: roots, offset: -1}}
	childOf := map[*Node]*group{}

	for i := 0; i < len(pending); i++ {
		g := pending[i]
		g.offset = len(body)
		body = append(body, make([]byte, len(g.nodes)*stride)...)
		for _, n := range g.nodes {
			if len(n.Children) > 0 {
				child := &group{nodes: n.Children, offset: -1}
				childOf[n] = child
				pending = append(pending, child)
			}
		}
	}

	// Patch the virtual root arc's pointer field to the top-level group.
	writePointer(body, 1+gotoLength+1, gotoLength, pending[0].offset)

	for _, g := range pending {
		for i, n := range g.nodes {
			cursor := g.offset + i*stride
			body[cursor] = n.Letter
			status := byte(0)
			if n.Final {
				status |= statusFinal
			}
			if i == len(g.nodes)-1 {
				status |= statusLast
			}
			body[cursor+1] = status
			childOffset := 0
			if child, ok := childOf[n]; ok {
				childOffset = child.offset
			}
			writePointer(body, cursor+1, gotoLength, childOffset)
		}
	}

	header := make([]byte, 20)
	copy(header[0:4], []byte{'\\', 'f', 's', 'a'})
	header[4] = magicFormatVersion
	header[5] = 0 // filler
	header[6] = 0 // annot separator
	header[7] = byte(gotoLength) & 0x0f
	header[8] = opts.Type
	header[9] = magicMajorVersion
	binary.LittleEndian.PutUint16(header[10:12], 0) // minor version
	binary.LittleEndian.PutUint16(header[12:14], opts.MaxResult)
	binary.LittleEndian.PutUint16(header[14:16], opts.MaxResultsCount)
	binary.LittleEndian.PutUint32(header[16:20], opts.MaxResultsSize)

	return append(header, body...)
}

// writePointer encodes offset<<3 as gotoLength little-endian bytes
// starting at statusCursor (the byte immediately after an arc's letter),
// OR'd into whatever status bits are already there.
func writePointer(buf []byte, statusCursor, gotoLength, offset int) {
	packed := uint64(offset) << 3
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], packed)
	for i := 0; i < gotoLength; i++ {
		buf[statusCursor+i] |= scratch[i]
	}
}
