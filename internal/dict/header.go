// Package dict decodes the on-disk majka dictionary format: a fixed header
// followed by a packed arc array forming a compressed finite-state
// automaton. It owns the raw byte buffer and the scalar fields derived from
// the header, and exposes the pure arc-decoding primitives the traversal
// packages build on.
package dict

import "fmt"

// Signature identifies a majka dictionary file.
var Signature = [4]byte{'\\', 'f', 's', 'a'}

// FormatVersion is the only supported on-disk automaton format version.
const FormatVersion = 5

// MajorVersion is the only supported major version of the dictionary
// content (distinct from FormatVersion, which versions the automaton
// encoding itself).
const MajorVersion = 1

// headerSize is the byte length of the fixed header preceding the arc
// array: magic(4) + format(1) + filler(1) + annotSep(1) + gotoLength(1) +
// type(1) + majorVersion(1) + minorVersion(2) + maxResult(2) +
// maxResultsCount(2) + maxResultsSize(4).
const headerSize = 4 + 1 + 1 + 1 + 1 + 1 + 1 + 2 + 2 + 2 + 4

// Header holds the scalar fields read from a dictionary's fixed header.
type Header struct {
	FormatVersion   byte
	Filler          byte
	AnnotSeparator  byte
	GotoLength      int
	Type            byte
	MajorVersion    byte
	MinorVersion    uint16
	MaxResult       uint16
	MaxResultsCount uint16
	MaxResultsSize  uint32
}

func parseHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize {
		return Header{}, fmt.Errorf("dict: %w: header truncated (%d bytes)", ErrShortRead, len(buf))
	}

	var magic [4]byte
	copy(magic[:], buf[0:4])
	if magic != Signature {
		return Header{}, fmt.Errorf("dict: %w: got %q", ErrBadMagic, magic[:])
	}

	h := Header{
		FormatVersion:  buf[4],
		Filler:         buf[5],
		AnnotSeparator: buf[6],
		GotoLength:     int(buf[7] & 0x0f),
		Type:           buf[8],
		MajorVersion:   buf[9],
	}
	h.MinorVersion = le16(buf[10:12])
	h.MaxResult = le16(buf[12:14])
	h.MaxResultsCount = le16(buf[14:16])
	h.MaxResultsSize = le32(buf[16:20])

	if h.MajorVersion != MajorVersion {
		return Header{}, fmt.Errorf("dict: %w: got %d, want %d", ErrBadMajorVersion, h.MajorVersion, MajorVersion)
	}
	if h.FormatVersion != FormatVersion {
		return Header{}, fmt.Errorf("dict: %w: got %d, want %d", ErrBadFormatVersion, h.FormatVersion, FormatVersion)
	}
	if h.GotoLength < 1 || h.GotoLength > 8 {
		return Header{}, fmt.Errorf("dict: %w: unsupported goto_length %d", ErrBadFormatVersion, h.GotoLength)
	}
	return h, nil
}

func le16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
