// Package walk implements the automaton traversal core: the exact,
// accent-folding, and completion walkers that spec.md describes, sharing a
// per-call Context that holds the candidate scratch buffer and the
// accumulated results.
package walk

import "github.com/coregx/majka/internal/format"

// Context bundles the mutable state one Find call threads through the
// three walkers: the candidate path built up as arcs are traversed, the
// length of the translated input at its head, and the results produced so
// far. A Context is not safe for concurrent use; callers create one per
// Find call.
type Context struct {
	Candidate []byte
	InputLen  int
	Results   [][]byte
}

// NewContext allocates a Context with scratch sized for a translated
// input of inputLen bytes.
func NewContext(inputLen int) *Context {
	return &Context{
		Candidate: make([]byte, inputLen+2, inputLen+64),
		InputLen:  inputLen,
	}
}

// setLetter records letter at the given candidate depth, growing the
// scratch buffer if the candidate has run deeper than anticipated (long
// annotations on pathological dictionaries).
func (ctx *Context) setLetter(depth int, letter byte) {
	if depth >= len(ctx.Candidate) {
		grown := make([]byte, depth+1, (depth+1)*2)
		copy(grown, ctx.Candidate)
		ctx.Candidate = grown
	}
	ctx.Candidate[depth] = letter
}

// emit formats the candidate's first length bytes as one result string
// and appends it to Results.
func (ctx *Context) emit(dictType byte, encOut *[256]byte, length int) error {
	if length > len(ctx.Candidate) {
		length = len(ctx.Candidate)
	}
	result, err := format.Write(ctx.Candidate[:length], ctx.InputLen, dictType, encOut)
	if err != nil {
		return err
	}
	ctx.Results = append(ctx.Results, result)
	return nil
}
