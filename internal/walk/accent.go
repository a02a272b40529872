package walk

import "github.com/coregx/majka/internal/dict"

// AccentWalk performs spec.md §4.4's fold-tolerant walk: at each node,
// every sibling whose letter equals word[0] either directly or after
// folding through table is explored (unlike FindExact, more than one
// sibling can match when folding collapses distinct dictionary letters).
// altRoot is the secondary compound root to branch into the moment a ':'
// sibling is seen with one still set; it is cleared for the nested
// traversal, so a dictionary's compound extension is entered at most once
// per path.
func AccentWalk(ctx *Context, d *dict.Dictionary, word []byte, depth int, node, altRoot dict.ArcRef, table *[256]byte) error {
	if len(word) < 2 {
		return nil
	}
	children := d.Children(node)
	if children == 0 {
		return nil
	}
	for arc := children; ; arc = d.NextSibling(arc) {
		letter := d.Letter(arc)
		switch {
		case word[0] == letter || word[0] == table[letter]:
			ctx.setLetter(depth, letter)
			if word[1] == 0 && altRoot == dict.NoRoot {
				if err := CompleteRest(ctx, d, depth+1, arc); err != nil {
					return err
				}
			} else if err := AccentWalk(ctx, d, word[1:], depth+1, arc, altRoot, table); err != nil {
				return err
			}
		case letter == ':' && altRoot != dict.NoRoot:
			if err := AccentWalk(ctx, d, word, depth, altRoot, dict.NoRoot, table); err != nil {
				return err
			}
		}
		if d.IsLast(arc) {
			return nil
		}
	}
}
