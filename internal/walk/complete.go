package walk

import "github.com/coregx/majka/internal/dict"

// CompleteRest performs spec.md §4.4's completion walk: once a candidate
// has matched a full prefix, enumerate every path from node to every final
// arc beneath it depth-first, emitting one result per final arc reached.
// node is the arc whose children are the next letters to try, matching
// FindExact and AccentWalk's convention of passing the just-matched arc
// rather than its already-resolved node.
func CompleteRest(ctx *Context, d *dict.Dictionary, depth int, node dict.ArcRef) error {
	children := d.Children(node)
	if children == 0 {
		return nil
	}
	for arc := children; ; arc = d.NextSibling(arc) {
		ctx.setLetter(depth, d.Letter(arc))
		if d.IsFinal(arc) {
			if err := ctx.emit(d.Type, &d.Tables.EncOut, depth+1); err != nil {
				return err
			}
		}
		if err := CompleteRest(ctx, d, depth+1, arc); err != nil {
			return err
		}
		if d.IsLast(arc) {
			return nil
		}
	}
}
