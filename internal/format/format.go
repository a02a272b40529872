// Package format reconstructs a dictionary's user-visible result strings
// from a completed automaton path (a "candidate"), applying the
// reconstruction rule selected by the dictionary's type byte.
//
// A candidate holds, in order: the input letters (candidate[0:inputLen]),
// then the annotation the automaton stores for that entry — a small
// family of prefix/suffix length bytes (stored as 'A'+n) and literal byte
// spans that the nine (eighteen, counting the +128 prefixed variants)
// type rules below stitch back into the original word, its lemma, or its
// tag depending on what the dictionary encodes.
package format

import "errors"

// ErrUnsupportedType is returned when a dictionary's type byte does not
// match any of the nine recognized reconstruction rules (optionally OR'd
// with 0x80).
var ErrUnsupportedType = errors.New("format: unrecognized dictionary type")

// Write reconstructs the result string for one completed candidate path
// and returns it. candidate holds the full accumulated path (input letters
// followed by the annotation); inputLen is the number of input letters at
// its head. Every output byte is translated through encOut, except the
// raw tag spans of types 1, 4, 1+128 and 4+128, which majka dictionaries
// store already in the result alphabet.
func Write(candidate []byte, inputLen int, dictType byte, encOut *[256]byte) ([]byte, error) {
	var out []byte

	switch dictType {
	case 1, 4:
		n := lenByte(candidate, inputLen+1)
		copyTranslatedN(&out, candidate, 0, inputLen-n, encOut)
		copyTranslatedUntilColonRaw(&out, candidate, inputLen+2, encOut)

	case 2, 5, 6, 7:
		n := lenByte(candidate, inputLen+1)
		copyTranslatedN(&out, candidate, 0, inputLen-n, encOut)
		copyTranslatedUntilNUL(&out, candidate, inputLen+2, encOut)

	case 3:
		first := indexByte(candidate, 0, ':')
		second := inputLen
		if first == second {
			newSecond := indexByte(candidate, first+1, ':')
			copyTranslatedN(&out, candidate, first+1, newSecond-first, encOut)
			second = newSecond
		}
		n := lenByte(candidate, second+1)
		copyTranslatedN(&out, candidate, 0, first-n, encOut)
		copyTranslatedUntilNUL(&out, candidate, second+2, encOut)

	case 1 + 128:
		prefixLen := lenByte(candidate, inputLen+1)
		n := lenByte(candidate, inputLen+2)
		copyTranslatedN(&out, candidate, prefixLen, inputLen-prefixLen-n, encOut)
		copyTranslatedUntilColonRaw(&out, candidate, inputLen+3, encOut)

	case 2 + 128:
		copyTranslatedN(&out, candidate, 0, inputLen, encOut)

	case 3 + 128:
		first := indexByte(candidate, 0, ':')
		second := inputLen
		if first == second {
			newSecond := indexByte(candidate, first+1, ':')
			copyTranslatedN(&out, candidate, first+1, newSecond-first, encOut)
			second = newSecond
		}
		prefixLen := lenByte(candidate, second+1)
		copyTranslatedN(&out, candidate, second+2, prefixLen, encOut)
		n := lenByte(candidate, second+2+prefixLen)
		copyTranslatedN(&out, candidate, 0, first-n, encOut)
		copyTranslatedUntilNUL(&out, candidate, second+prefixLen+3, encOut)

	case 4 + 128:
		prefixLen := lenByte(candidate, inputLen+1)
		copyTranslatedN(&out, candidate, inputLen+2, prefixLen, encOut)
		n := lenByte(candidate, inputLen+prefixLen+2)
		copyTranslatedN(&out, candidate, 0, inputLen-n, encOut)
		copyTranslatedUntilColonRaw(&out, candidate, inputLen+prefixLen+3, encOut)

	case 5 + 128:
		prefixLen := lenByte(candidate, inputLen+1)
		copyTranslatedN(&out, candidate, inputLen+2, prefixLen, encOut)
		n := lenByte(candidate, inputLen+prefixLen+2)
		copyTranslatedN(&out, candidate, 0, inputLen-n, encOut)
		copyTranslatedUntilNUL(&out, candidate, inputLen+prefixLen+3, encOut)

	case 6 + 128:
		prefixLen := lenByte(candidate, inputLen+1)
		n := lenByte(candidate, inputLen+2)
		copyTranslatedN(&out, candidate, prefixLen, inputLen-prefixLen-n, encOut)
		copyTranslatedUntilNUL(&out, candidate, inputLen+3, encOut)

	case 7 + 128:
		prefixAddLen := lenByte(candidate, inputLen+1)
		copyTranslatedN(&out, candidate, inputLen+2, prefixAddLen, encOut)
		prefixRemoveLen := lenByte(candidate, inputLen+2+prefixAddLen)
		n := lenByte(candidate, inputLen+3+prefixAddLen)
		copyTranslatedN(&out, candidate, prefixRemoveLen, inputLen-prefixRemoveLen-n, encOut)
		copyTranslatedUntilNUL(&out, candidate, inputLen+prefixAddLen+4, encOut)

	default:
		return nil, ErrUnsupportedType
	}

	return out, nil
}

// lenByte decodes a prefix/suffix length stored as 'A'+n at candidate[i],
// clamped to zero when i is out of range (malformed candidate) rather
// than panicking.
func lenByte(candidate []byte, i int) int {
	if i < 0 || i >= len(candidate) {
		return 0
	}
	n := int(candidate[i]) - 'A'
	if n < 0 {
		return 0
	}
	return n
}

// indexByte returns the offset of the first occurrence of target in
// candidate at or after from, stopping at (and not matching past) a NUL
// byte. Returns -1 if not found within bounds.
func indexByte(candidate []byte, from int, target byte) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(candidate); i++ {
		if candidate[i] == 0 {
			return -1
		}
		if candidate[i] == target {
			return i
		}
	}
	return -1
}

// copyTranslatedN appends n bytes of candidate starting at offset, each
// translated through encOut. Negative or out-of-range spans are clamped
// rather than panicking.
func copyTranslatedN(dst *[]byte, candidate []byte, offset, n int, encOut *[256]byte) {
	if offset < 0 || n <= 0 {
		return
	}
	end := offset + n
	if end > len(candidate) {
		end = len(candidate)
	}
	for i := offset; i < end; i++ {
		*dst = append(*dst, encOut[candidate[i]])
	}
}

// copyTranslatedUntilNUL appends candidate[offset:], translated through
// encOut, up to (but not including) the next NUL byte.
func copyTranslatedUntilNUL(dst *[]byte, candidate []byte, offset int, encOut *[256]byte) {
	if offset < 0 {
		return
	}
	for i := offset; i < len(candidate); i++ {
		if candidate[i] == 0 {
			return
		}
		*dst = append(*dst, encOut[candidate[i]])
	}
}

// copyTranslatedUntilColonRaw appends candidate[offset:] translated
// through encOut up to the next ':', then appends the remainder — from
// that ':' onward, including it — verbatim (untranslated) up to the next
// NUL. This preserves the ':' as a literal field separator in the
// reconstructed result, matching the original formatter's my_strxcpy.
func copyTranslatedUntilColonRaw(dst *[]byte, candidate []byte, offset int, encOut *[256]byte) {
	if offset < 0 {
		return
	}
	i := offset
	for i < len(candidate) && candidate[i] != ':' {
		*dst = append(*dst, encOut[candidate[i]])
		i++
	}
	for i < len(candidate) && candidate[i] != 0 {
		*dst = append(*dst, candidate[i])
		i++
	}
}
