package majka

import (
	"errors"

	"github.com/coregx/majka/internal/dict"
	"github.com/coregx/majka/internal/fold"
	"github.com/coregx/majka/internal/format"
	"github.com/coregx/majka/internal/walk"
)

// Find looks up word against the dictionary, returning every
// reconstructed result the chosen matching strategy reaches.
//
// Flags select the strategy, per spec.md §4.2-§4.4:
//   - Neither AddDiacritics nor IgnoreCase: exact match only, retried with
//     every letter after the first lowercased when one of them was
//     uppercase, then retried with a leading uppercase letter lowercased;
//     DisallowLowercase suppresses both retries.
//   - AddDiacritics and/or IgnoreCase: a fold-tolerant walk that accepts
//     any sibling letter that strips and/or lowers to the same byte as
//     the queried one, retried with progressively more aggressive case
//     folding exactly as the exact-match strategy is.
//
// In both modes, if the retries produce no results and the dictionary
// defines compound-word roots, Find falls back to matching the word
// letter-by-letter against the dictionary's compound-extension automaton.
//
// Find returns a nil slice and a nil error when word matches nothing; it
// returns a non-nil error only when the dictionary's type byte cannot be
// interpreted by the result formatter (a corrupt or unsupported
// dictionary file, not a caller mistake).
func (e *Engine) Find(word []byte, flags Flags) ([][]byte, error) {
	d := e.dict
	tables := d.Tables

	bound := len(word)
	if bound > e.config.MaxWordLength {
		bound = e.config.MaxWordLength
	}

	copyBuf := make([]byte, 0, bound+2)
	checkUppercase := flags&(IgnoreCase|DisallowLowercase) == 0
	uppercase := false
	for i := 0; i < bound; i++ {
		if word[i] == 0 {
			break
		}
		c := tables.EncIn[word[i]]
		copyBuf = append(copyBuf, c)
		if checkUppercase && i != 0 && tables.Lower[c] != c {
			uppercase = true
		}
	}
	inputLen := len(copyBuf)
	copyBuf = append(copyBuf, ':', 0)

	ctx := walk.NewContext(inputLen)

	if flags&(AddDiacritics|IgnoreCase) != 0 {
		if err := e.findFolded(ctx, copyBuf, flags, uppercase); err != nil {
			return nil, wrapFormatError(d.Type, err)
		}
	} else {
		if err := e.findExact(ctx, copyBuf, flags, uppercase); err != nil {
			return nil, wrapFormatError(d.Type, err)
		}
	}

	return ctx.Results, nil
}

// wrapFormatError turns format.ErrUnsupportedType, surfaced from deep
// inside a walker's calls to Context.emit, into an UnsupportedTypeError
// callers can inspect for the offending type byte. Any other error (there
// are none today, but walkers return the error type, not a fixed set of
// sentinels) passes through unchanged.
func wrapFormatError(dictType byte, err error) error {
	if errors.Is(err, format.ErrUnsupportedType) {
		return &UnsupportedTypeError{Type: dictType}
	}
	return err
}

// FindAll runs Find over each word in words, applying the batch echo
// policy spec.md §6 and §8 property 8 require: a word with zero results
// contributes itself, unchanged, to the returned slice instead of nothing.
func (e *Engine) FindAll(words [][]byte, flags Flags) ([][]byte, error) {
	out := make([][]byte, 0, len(words))
	for _, word := range words {
		results, err := e.Find(word, flags)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			out = append(out, word)
			continue
		}
		out = append(out, results...)
	}
	return out, nil
}

func (e *Engine) findFolded(ctx *walk.Context, copyBuf []byte, flags Flags, uppercase bool) error {
	d := e.dict
	tables := d.Tables
	table := tables.Select(byte(flags & (AddDiacritics | IgnoreCase)))

	if flags&IgnoreCase != 0 {
		lowerUntilNUL(copyBuf, 0, tables)
	}
	if err := walk.AccentWalk(ctx, d, copyBuf, 0, d.Start, dict.NoRoot, table); err != nil {
		return err
	}

	if uppercase {
		lowerUntilNUL(copyBuf, 1, tables)
		if err := walk.AccentWalk(ctx, d, copyBuf, 0, d.Start, dict.NoRoot, table); err != nil {
			return err
		}
	}

	if tables.Lower[copyBuf[0]] != copyBuf[0] {
		copyBuf[0] = tables.Lower[copyBuf[0]]
		if err := walk.AccentWalk(ctx, d, copyBuf, 0, d.Start, dict.NoRoot, table); err != nil {
			return err
		}
	}

	if len(ctx.Results) == 0 && d.HasCompoundRoots() {
		if err := walk.AccentWalk(ctx, d, copyBuf, 0, d.Start1, d.Start2, table); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) findExact(ctx *walk.Context, copyBuf []byte, flags Flags, uppercase bool) error {
	d := e.dict
	tables := d.Tables

	if err := walk.FindExact(ctx, d, copyBuf, 0, d.Start); err != nil {
		return err
	}

	if uppercase {
		lowerUntilNUL(copyBuf, 1, tables)
		if err := walk.FindExact(ctx, d, copyBuf, 0, d.Start); err != nil {
			return err
		}
	}

	if flags&DisallowLowercase == 0 && tables.Lower[copyBuf[0]] != copyBuf[0] {
		copyBuf[0] = tables.Lower[copyBuf[0]]
		if err := walk.FindExact(ctx, d, copyBuf, 0, d.Start); err != nil {
			return err
		}
	}

	if len(ctx.Results) == 0 && d.HasCompoundRoots() {
		if err := walk.CompoundFallback(ctx, d, copyBuf); err != nil {
			return err
		}
	}
	return nil
}

// lowerUntilNUL lowercases buf[from:] in place, stopping at the first NUL
// byte (the candidate buffer's terminator).
func lowerUntilNUL(buf []byte, from int, tables *fold.Tables) {
	for i := from; i < len(buf) && buf[i] != 0; i++ {
		buf[i] = tables.Lower[buf[i]]
	}
}
