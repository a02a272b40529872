package majka

import "fmt"

// Config controls Engine behavior beyond what the dictionary file itself
// encodes.
//
// Example:
//
//	config := majka.DefaultConfig()
//	config.MaxWordLength = 48
//	engine, err := majka.OpenWithConfig("dictionary.fsa", config)
type Config struct {
	// MaxWordLength caps how many bytes of an input word Find translates
	// and walks, mirroring the original engine's fixed scratch buffer
	// bound. Bytes beyond this are ignored, not an error.
	// Default: 100
	MaxWordLength int

	// EnableSIMD gates the accelerated gather-and-scan sibling lookup in
	// internal/simd. When false, FindLetter always uses the scalar
	// strided scan, regardless of what the running CPU supports.
	// Default: true
	EnableSIMD bool

	// EnableTextTokenizer controls whether FindText may build the
	// Aho-Corasick automaton internal/tokenize needs to segment running
	// text into candidate words. Disable it for workloads that only ever
	// call Find on already-segmented words, to skip the automaton build.
	// Default: true
	EnableTextTokenizer bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxWordLength:       100,
		EnableSIMD:          true,
		EnableTextTokenizer: true,
	}
}

// Validate checks if the configuration is valid. Returns an error if any
// parameter is out of range.
//
// Valid ranges:
//   - MaxWordLength: 1 to 1024
func (c Config) Validate() error {
	if c.MaxWordLength < 1 || c.MaxWordLength > 1024 {
		return &ConfigError{
			Field:   "MaxWordLength",
			Message: "must be between 1 and 1024",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("majka: invalid config: %s: %s", e.Field, e.Message)
}
