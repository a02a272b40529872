// Package tokenize segments running text into candidate words for
// Engine.FindText, using a single Aho-Corasick automaton to locate every
// separator byte in one pass rather than testing each separator
// independently at every position.
package tokenize

import "github.com/coregx/ahocorasick"

// defaultSeparators lists the byte sequences treated as word boundaries:
// whitespace and common punctuation.
var defaultSeparators = [][]byte{
	{' '}, {'\t'}, {'\n'}, {'\r'},
	{'.'}, {','}, {';'}, {':'},
	{'!'}, {'?'}, {'"'}, {'\''},
	{'('}, {')'}, {'['}, {']'},
	{'-'}, {'/'},
}

// Segmenter splits text into candidate words.
type Segmenter struct {
	automaton *ahocorasick.Automaton
}

// NewSegmenter builds a Segmenter over the default separator set.
func NewSegmenter() (*Segmenter, error) {
	builder := ahocorasick.NewBuilder()
	for _, sep := range defaultSeparators {
		builder.AddPattern(sep)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Segmenter{automaton: automaton}, nil
}

// Span is a candidate word's byte range within the text Segment was
// called with: [Start, End).
type Span struct {
	Start, End int
}

// Segment returns the byte ranges of every non-empty run of text between
// separator matches.
func (s *Segmenter) Segment(text []byte) []Span {
	var spans []Span
	pos := 0
	wordStart := 0
	for pos <= len(text) {
		m := s.automaton.Find(text, pos)
		if m == nil {
			break
		}
		if m.Start > wordStart {
			spans = append(spans, Span{wordStart, m.Start})
		}
		wordStart = m.End
		pos = m.End
		if m.End == m.Start {
			pos++
		}
	}
	if wordStart < len(text) {
		spans = append(spans, Span{wordStart, len(text)})
	}
	return spans
}
