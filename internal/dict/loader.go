package dict

import (
	"fmt"
	"io"
	"os"

	"github.com/coregx/majka/internal/fold"
)

// wordPad is the padding appended to the end of the buffer so that
// Dictionary.descendOffset's native 8-byte word read never runs past the
// allocation, even when decoding the last arc in the file.
const wordPad = 8

// Dictionary is the decoded, read-only in-memory form of a majka
// dictionary file: the packed arc buffer plus the scalar header fields and
// resolved roots needed to traverse it. A Dictionary is safe for
// concurrent use by multiple Find calls; nothing about it is mutated after
// Open returns.
type Dictionary struct {
	Header
	Buf    []byte
	Tables *fold.Tables

	Start  ArcRef
	Start1 ArcRef
	Start2 ArcRef

	// UseSIMD gates FindLetter's accelerated gather-and-scan path,
	// independent of what the running CPU supports. Open sets it true;
	// Engine clears it when its Config disables SIMD.
	UseSIMD bool
}

// HasCompoundRoots reports whether the dictionary defines both alternate
// roots used by the compound-word fallback search.
func (d *Dictionary) HasCompoundRoots() bool {
	return d.Start1 != noRoot && d.Start2 != noRoot
}

// Open reads and validates a dictionary file at path, decoding its header
// and loading the full arc buffer into memory.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: %w: %s: %v", ErrCannotOpen, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("dict: %w: %s: %v", ErrCannotOpen, path, err)
	}
	fsaSize := info.Size() - headerSize
	if fsaSize < 0 {
		return nil, fmt.Errorf("dict: %w: %s: file smaller than header", ErrShortRead, path)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("dict: %w: %s: %v", ErrSeekFailed, path, err)
	}

	headerBuf := make([]byte, headerSize)
	if _, err := io.ReadFull(f, headerBuf); err != nil {
		return nil, fmt.Errorf("dict: %w: %s: %v", ErrShortRead, path, err)
	}
	header, err := parseHeader(headerBuf)
	if err != nil {
		return nil, err
	}
	if fsaSize < int64(2*(1+header.GotoLength)) {
		return nil, fmt.Errorf("dict: %w: %s: body too short to hold the root arc", ErrShortRead, path)
	}

	buf := make([]byte, fsaSize+wordPad)
	if _, err := io.ReadFull(f, buf[:fsaSize]); err != nil {
		return nil, fmt.Errorf("dict: %w: %s: %v", ErrShortRead, path, err)
	}

	d := &Dictionary{
		Header:  header,
		Buf:     buf,
		Tables:  fold.Build(),
		UseSIMD: true,
	}
	d.resolveRoots()
	return d, nil
}

// resolveRoots scans the first node's siblings for the '!' and '^' arcs
// that mark the compound-extension alternate roots, per spec.md §3's
// Start roots subsection.
func (d *Dictionary) resolveRoots() {
	d.Start = d.firstNode()
	d.Start1 = noRoot
	d.Start2 = noRoot

	node := d.Children(d.Start)
	if node == 0 {
		return
	}
	for arc := node; ; arc = d.NextSibling(arc) {
		if d.Letter(arc) == '!' {
			d.Start1 = arc
		}
		if d.Letter(arc) == '^' {
			d.Start2 = arc
		}
		if d.IsLast(arc) {
			break
		}
	}
}
