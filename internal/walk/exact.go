package walk

import "github.com/coregx/majka/internal/dict"

// FindExact performs spec.md §4.4's exact walk: descend from root matching
// word byte-for-byte against sibling letters. Dictionaries are built with
// unique letters per node, so at most one sibling can ever match — the
// walk is a straight-line descent, not a search. word must end with the
// ':' + NUL sentinel pair that Find appends to every translated input. The
// walk stops silently (no error, no result) the moment a letter fails to
// match; reaching the ':' arc with nothing left to match completes through
// CompleteRest.
func FindExact(ctx *Context, d *dict.Dictionary, word []byte, depth int, root dict.ArcRef) error {
	node := d.Children(root)
	for node != 0 {
		if len(word) < 2 {
			return nil
		}
		arc, ok := d.FindLetter(node, word[0])
		if !ok {
			return nil
		}
		ctx.setLetter(depth, d.Letter(arc))
		if word[1] == 0 {
			return CompleteRest(ctx, d, depth+1, arc)
		}
		word = word[1:]
		depth++
		node = d.Children(arc)
	}
	return nil
}
