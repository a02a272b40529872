package dict

import (
	"errors"
	"testing"
)

func validHeader() []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], Signature[:])
	buf[4] = FormatVersion
	buf[5] = 0
	buf[6] = 0
	buf[7] = 4
	buf[8] = 2
	buf[9] = MajorVersion
	buf[10] = 0
	buf[11] = 0
	buf[12] = 100
	buf[13] = 0
	buf[14] = 200
	buf[15] = 0
	buf[16] = 0
	buf[17] = 1
	buf[18] = 0
	buf[19] = 0
	return buf
}

func TestParseHeader_Valid(t *testing.T) {
	h, err := parseHeader(validHeader())
	if err != nil {
		t.Fatalf("parseHeader() error = %v, want nil", err)
	}
	if h.GotoLength != 4 {
		t.Errorf("GotoLength = %d, want 4", h.GotoLength)
	}
	if h.Type != 2 {
		t.Errorf("Type = %d, want 2", h.Type)
	}
	if h.MaxResult != 100 {
		t.Errorf("MaxResult = %d, want 100", h.MaxResult)
	}
	if h.MaxResultsCount != 200 {
		t.Errorf("MaxResultsCount = %d, want 200", h.MaxResultsCount)
	}
	if h.MaxResultsSize != 256 {
		t.Errorf("MaxResultsSize = %d, want 256", h.MaxResultsSize)
	}
}

func TestParseHeader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr error
	}{
		{
			name:    "truncated",
			mutate:  func(b []byte) []byte { return b[:headerSize-1] },
			wantErr: ErrShortRead,
		},
		{
			name: "bad magic",
			mutate: func(b []byte) []byte {
				b[0] = 'x'
				return b
			},
			wantErr: ErrBadMagic,
		},
		{
			name: "bad major version",
			mutate: func(b []byte) []byte {
				b[9] = MajorVersion + 1
				return b
			},
			wantErr: ErrBadMajorVersion,
		},
		{
			name: "bad format version",
			mutate: func(b []byte) []byte {
				b[4] = FormatVersion + 1
				return b
			},
			wantErr: ErrBadFormatVersion,
		},
		{
			name: "goto_length zero",
			mutate: func(b []byte) []byte {
				b[7] = 0
				return b
			},
			wantErr: ErrBadFormatVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseHeader(tt.mutate(validHeader()))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseHeader() error = %v, want wrapping %v", err, tt.wantErr)
			}
		})
	}
}
