package majka

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.MaxWordLength != 100 {
		t.Errorf("MaxWordLength = %d, want 100", c.MaxWordLength)
	}
	if !c.EnableSIMD {
		t.Error("EnableSIMD = false, want true")
	}
	if !c.EnableTextTokenizer {
		t.Error("EnableTextTokenizer = false, want true")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		maxWordLen  int
		wantInvalid bool
	}{
		{"minimum valid", 1, false},
		{"maximum valid", 1024, false},
		{"typical", 100, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"over maximum", 1025, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.MaxWordLength = tt.maxWordLen
			err := c.Validate()
			if tt.wantInvalid && err == nil {
				t.Errorf("Validate() = nil, want an error for MaxWordLength=%d", tt.maxWordLen)
			}
			if !tt.wantInvalid && err != nil {
				t.Errorf("Validate() = %v, want nil for MaxWordLength=%d", err, tt.maxWordLen)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "MaxWordLength", Message: "must be between 1 and 1024"}
	want := "majka: invalid config: MaxWordLength: must be between 1 and 1024"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
