package walk

import "github.com/coregx/majka/internal/dict"

// CompoundFallback performs spec.md §4.4's compound-word fallback: starting
// from the dictionary's first alternate root, match input letters one at a
// time for as long as a matching sibling exists. After every successful
// letter match, the node just descended into is checked for an outgoing
// ':' arc; if one is present, the remainder of word is handed to FindExact
// rooted at the second alternate root, giving the dictionary's compound
// boundary a chance to complete the word independently of how far the
// letter-by-letter walk under the first root eventually gets. The walk
// stops the moment a letter fails to match or word is exhausted.
func CompoundFallback(ctx *Context, d *dict.Dictionary, word []byte) error {
	node := d.Children(d.Start1)
	depth := 0
	for node != 0 {
		if len(word) == 0 {
			return nil
		}
		arc, ok := d.FindLetter(node, word[0])
		if !ok {
			return nil
		}
		ctx.setLetter(depth, d.Letter(arc))
		depth++
		word = word[1:]
		if len(word) == 0 || word[0] == 0 {
			return nil
		}

		node = d.Children(arc)
		if node == 0 {
			return nil
		}
		for c := node; ; c = d.NextSibling(c) {
			if d.Letter(c) == ':' {
				if err := FindExact(ctx, d, word, depth, d.Start2); err != nil {
					return err
				}
				break
			}
			if d.IsLast(c) {
				break
			}
		}
	}
	return nil
}
