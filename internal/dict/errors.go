package dict

import "errors"

// Sentinel errors returned by Open. Callers outside this package should not
// depend on these directly; the root majka package wraps them in typed
// *majka.LoadError values that carry the dictionary path.
var (
	// ErrCannotOpen indicates the dictionary file could not be opened for reading.
	ErrCannotOpen = errors.New("cannot open dictionary file")

	// ErrSeekFailed indicates a seek on the dictionary file failed.
	ErrSeekFailed = errors.New("seek on dictionary file failed")

	// ErrShortRead indicates a header or body read was truncated.
	ErrShortRead = errors.New("short read on dictionary file")

	// ErrBadMagic indicates the file does not start with the \fsa signature.
	ErrBadMagic = errors.New("bad magic number")

	// ErrBadMajorVersion indicates an unsupported dictionary major version.
	ErrBadMajorVersion = errors.New("unsupported dictionary major version")

	// ErrBadFormatVersion indicates an unsupported automaton format version.
	ErrBadFormatVersion = errors.New("unsupported automaton format version")
)
