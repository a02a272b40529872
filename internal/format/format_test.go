package format

import (
	"bytes"
	"errors"
	"testing"
)

func identityEncOut() *[256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	return &t
}

func TestWrite(t *testing.T) {
	enc := identityEncOut()

	tests := []struct {
		name      string
		candidate []byte
		inputLen  int
		dictType  byte
		want      string
	}{
		{
			// types 1 and 4 share this branch: a stripped-prefix copy
			// followed by a translated-then-raw tag, carrying the ':'
			// separator through verbatim.
			name:      "type 1 (and 4): prefix then colon-raw tag",
			candidate: []byte("psi:Atag:EXTRA\x00"),
			inputLen:  3,
			dictType:  1,
			want:      "psitag:EXTRA",
		},
		{
			// types 2, 5, 6 and 7 share this branch: a stripped-prefix
			// copy followed by a translated suffix run to NUL.
			name:      "type 2 (and 5,6,7): prefix then suffix to NUL",
			candidate: []byte("psi:Bovi\x00"),
			inputLen:  3,
			dictType:  2,
			want:      "psovi",
		},
		{
			name:      "type 3: lemma split on a second colon",
			candidate: []byte("city:CAT:BS\x00"),
			inputLen:  4,
			dictType:  3,
			want:      "CAT:citS",
		},
		{
			name:      "type 3: colon already inside the input letters",
			candidate: []byte("ab:cde:AXY\x00"),
			inputLen:  6,
			dictType:  3,
			want:      "abXY",
		},
		{
			name:      "type 1+128: prefix add, then colon-raw tag",
			candidate: []byte("dog:BBtag:EXTRA\x00"),
			inputLen:  3,
			dictType:  1 + 128,
			want:      "otag:EXTRA",
		},
		{
			name:      "type 2+128: whole input translated, nothing else",
			candidate: []byte("word\x00"),
			inputLen:  4,
			dictType:  2 + 128,
			want:      "word",
		},
		{
			name:      "type 3+128: lemma split plus prefix-add field",
			candidate: []byte("cat:XY:CprBZ\x00"),
			inputLen:  3,
			dictType:  3 + 128,
			want:      "XY:prcaZ",
		},
		{
			name:      "type 4+128: prefix add, then colon-raw tag",
			candidate: []byte("dog:CgyBtag:XYZ\x00"),
			inputLen:  3,
			dictType:  4 + 128,
			want:      "gydotag:XYZ",
		},
		{
			name:      "type 5+128: prefix add, then suffix to NUL",
			candidate: []byte("hi:BQAok\x00"),
			inputLen:  2,
			dictType:  5 + 128,
			want:      "Qhiok",
		},
		{
			name:      "type 6+128: prefix/suffix strip, then suffix to NUL",
			candidate: []byte("apple:BBES\x00"),
			inputLen:  5,
			dictType:  6 + 128,
			want:      "pplES",
		},
		{
			name:      "type 7+128: separate prefix add and remove lengths",
			candidate: []byte("fishy:CunBBFY\x00"),
			inputLen:  5,
			dictType:  7 + 128,
			want:      "unishFY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Write(tt.candidate, tt.inputLen, tt.dictType, enc)
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite_UnsupportedType(t *testing.T) {
	_, err := Write([]byte("abc\x00"), 3, 9, identityEncOut())
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("error = %v, want ErrUnsupportedType", err)
	}
}

func TestWrite_TranslatesThroughEncOut(t *testing.T) {
	enc := identityEncOut()
	enc[byte('o')] = 'O'

	got, err := Write([]byte("dog\x00"), 3, 2+128, enc)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if want := "dOg"; string(got) != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}
