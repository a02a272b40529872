package simd

import "testing"

func TestIndexByte(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty", "", 'a', -1},
		{"short, found", "cab", 'a', 1},
		{"short, not found", "cab", 'z', -1},
		{"exactly 8 bytes, found at start", "abcdefgh", 'a', 0},
		{"exactly 8 bytes, found at end", "abcdefgh", 'h', 7},
		{"exactly 8 bytes, not found", "abcdefgh", 'z', -1},
		{"long haystack, found in tail remainder", "abcdefghijklmnopqrstu", 'u', 20},
		{"long haystack, found mid-chunk", "abcdefghijklmnopqrstu", 'j', 9},
		{"long haystack, not found", "abcdefghijklmnopqrstu", 'z', -1},
		{"needle is zero byte", "ab\x00cd", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexByte([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("IndexByte(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}
