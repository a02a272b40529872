package majka

import (
	"errors"
	"sync"

	"github.com/coregx/majka/internal/tokenize"
)

// ErrTextTokenizerDisabled is returned by FindText when the Engine's
// Config set EnableTextTokenizer to false.
var ErrTextTokenizerDisabled = errors.New("majka: text tokenizer disabled by config")

// TextMatch is one candidate word FindText located in a text, together
// with whatever Find returned for it.
type TextMatch struct {
	Start, End int
	Word       []byte
	Results    [][]byte
}

// FindText segments text into candidate words and calls Find on each,
// returning only the words that produced at least one result. The
// segmenter is built once per Engine, on first use.
func (e *Engine) FindText(text []byte, flags Flags) ([]TextMatch, error) {
	if !e.config.EnableTextTokenizer {
		return nil, ErrTextTokenizerDisabled
	}
	seg, err := e.segmenter()
	if err != nil {
		return nil, err
	}

	var matches []TextMatch
	for _, span := range seg.Segment(text) {
		word := text[span.Start:span.End]
		results, err := e.Find(word, flags)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			continue
		}
		matches = append(matches, TextMatch{
			Start:   span.Start,
			End:     span.End,
			Word:    word,
			Results: results,
		})
	}
	return matches, nil
}

func (e *Engine) segmenter() (*tokenize.Segmenter, error) {
	e.segmenterOnce.Do(func() {
		e.segmenterVal, e.segmenterErr = tokenize.NewSegmenter()
	})
	return e.segmenterVal, e.segmenterErr
}

// segmenterState is embedded in Engine to lazily build the tokenizer at
// most once, regardless of how many goroutines call FindText concurrently.
type segmenterState struct {
	segmenterOnce sync.Once
	segmenterVal  *tokenize.Segmenter
	segmenterErr  error
}
