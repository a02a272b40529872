// Package majka provides a morphological dictionary lookup engine over a
// compact finite-state automaton: given an inflected word, it returns the
// word's lemma and grammatical tag (or whichever of the two a given
// dictionary encodes), tolerating diacritic and case variation and
// recognizing a dictionary's own compound-word extension.
//
// Basic usage:
//
//	engine, err := majka.Open("slovak.fsa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	results, err := engine.Find([]byte("mačiek"), majka.AddDiacritics)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Println(string(r))
//	}
//
// Advanced usage:
//
//	config := majka.DefaultConfig()
//	config.MaxWordLength = 48
//	engine, err := majka.OpenWithConfig("slovak.fsa", config)
package majka

import "github.com/coregx/majka/internal/dict"

// Engine wraps one loaded dictionary. An Engine is safe to use
// concurrently from multiple goroutines: Find and FindText only read the
// dictionary's buffer and tables, allocating a fresh scratch Context per
// call.
type Engine struct {
	dict   *dict.Dictionary
	config Config
	segmenterState
}

// Open loads the dictionary at path with the default configuration.
//
// Example:
//
//	engine, err := majka.Open("slovak.fsa")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Open(path string) (*Engine, error) {
	return OpenWithConfig(path, DefaultConfig())
}

// OpenWithConfig loads the dictionary at path with a custom configuration.
//
// Example:
//
//	config := majka.DefaultConfig()
//	config.EnableSIMD = false
//	engine, err := majka.OpenWithConfig("slovak.fsa", config)
func OpenWithConfig(path string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	d, err := dict.Open(path)
	if err != nil {
		return nil, wrapLoadError(path, err)
	}
	d.UseSIMD = config.EnableSIMD

	return &Engine{dict: d, config: config}, nil
}

// MustOpen loads the dictionary at path and panics if it fails. This is
// useful for dictionaries known to exist at startup.
//
// Example:
//
//	var slovak = majka.MustOpen("slovak.fsa")
func MustOpen(path string) *Engine {
	engine, err := Open(path)
	if err != nil {
		panic("majka: Open(" + path + "): " + err.Error())
	}
	return engine
}

// Close releases resources held by Engine. The current implementation
// holds no file handles or goroutines past Open returning, so Close never
// returns a non-nil error; it exists so Engine satisfies io.Closer and so
// call sites survive a future implementation that does hold one.
func (e *Engine) Close() error {
	return nil
}

// Type returns the opened dictionary's type byte, identifying which of
// the result reconstruction rules its entries use.
func (e *Engine) Type() byte {
	return e.dict.Type
}

// HasCompoundRoots reports whether the opened dictionary defines the
// alternate roots the compound-word fallback search requires.
func (e *Engine) HasCompoundRoots() bool {
	return e.dict.HasCompoundRoots()
}
