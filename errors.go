package majka

import (
	"fmt"

	"github.com/coregx/majka/internal/dict"
	"github.com/coregx/majka/internal/format"
)

// Sentinel errors Open and Find can return, re-exported from the internal
// packages that define them so callers never need to import internal
// paths to use errors.Is.
var (
	ErrCannotOpen       = dict.ErrCannotOpen
	ErrSeekFailed       = dict.ErrSeekFailed
	ErrShortRead        = dict.ErrShortRead
	ErrBadMagic         = dict.ErrBadMagic
	ErrBadMajorVersion  = dict.ErrBadMajorVersion
	ErrBadFormatVersion = dict.ErrBadFormatVersion
	ErrUnsupportedType  = format.ErrUnsupportedType
)

// LoadError reports why Open failed to load a dictionary file. It wraps
// one of the Err* sentinels above, so callers can branch on the failure
// kind with errors.Is while LoadError.Path carries the offending file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("majka: open %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func wrapLoadError(path string, err error) error {
	if err == nil {
		return nil
	}
	return &LoadError{Path: path, Err: err}
}

// UnsupportedTypeError is returned from Find when a dictionary's type
// field cannot be interpreted by the result formatter. This mirrors
// spec.md §4.5's "the engine is in an unrecoverable state" contract as a
// value rather than a process exit.
type UnsupportedTypeError struct {
	Type byte
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("majka: cannot interpret dictionary of type %d", e.Type)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }
