// Package fold builds the fixed 256-entry character translation tables a
// dictionary folds input and output through: a diacritic-stripping table,
// a lower-casing table, their composition, and the ISO-8859-2 ↔
// Windows-1250 encoding pair. All four tables are built once at load time
// and are read-only thereafter.
package fold

// Tables holds the translation tables for one opened dictionary. All
// fields are fully populated by Build and never mutated afterward, so a
// *Tables may be shared freely across concurrent Find calls.
type Tables struct {
	// Lower is the lowercase fold: ASCII 'A'..'Z' to 'a'..'z', plus the
	// Central/Eastern European Latin-1-supplement uppercase ranges.
	Lower [256]byte

	// Strip is the diacritic-stripping fold, keeping case.
	Strip [256]byte

	// StripNoCase composes Strip after Lower: StripNoCase[c] == Strip[Lower[c]].
	StripNoCase [256]byte

	// EncIn maps the Windows-1250 code point of each of the 14 letters the
	// two encodings place differently to its ISO-8859-2 code point, the
	// dictionary's on-disk alphabet. Applied to every input byte before
	// traversal. EncIn is a permutation: the ISO-8859-2 code points of the
	// ten such letters whose position no Windows-1250 letter of the set
	// occupies map onto the Windows-1250 code points left over, not onto
	// themselves.
	EncIn [256]byte

	// EncOut is EncIn's inverse, applied to every output byte as results
	// are written.
	EncOut [256]byte
}

// Build constructs a fresh, fully populated Tables instance.
func Build() *Tables {
	t := &Tables{}
	buildLower(&t.Lower)
	buildStrip(&t.Strip)
	for i := 0; i < 256; i++ {
		t.StripNoCase[i] = t.Strip[t.Lower[i]]
	}
	buildEncoding(&t.EncIn, &t.EncOut)
	return t
}

func buildLower(lower *[256]byte) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		if c >= 'A' && c <= 'Z' {
			c = c + 'a' - 'A'
		}
		lower[i] = c
	}
	for i := 161; i < 176; i++ {
		lower[i] = byte(i + 16)
	}
	for i := 192; i < 223; i++ {
		lower[i] = byte(i + 32)
	}
}

// diacriticPairs lists the Central/Eastern European Latin-1-supplement
// byte pairs (uppercase, lowercase) that strip to a plain ASCII letter.
// Values are taken from the original majka fsa::fsa constructor, which is
// the ground truth for the exact byte assignments.
var diacriticPairs = [...]struct {
	upper, upperTo byte
	lower, lowerTo byte
}{
	{161, 'A', 177, 'a'}, // Ąą
	{163, 'L', 179, 'l'}, // Łł
	{165, 'L', 181, 'l'}, // Ľľ
	{166, 'S', 182, 's'}, // Śś
	{169, 'S', 185, 's'}, // Šš
	{170, 'S', 186, 's'}, // Şş
	{171, 'T', 187, 't'}, // Ťť
	{172, 'Z', 188, 'z'}, // Źź
	{174, 'Z', 190, 'z'}, // Žž
	{175, 'Z', 191, 'z'}, // Żż
	{192, 'R', 224, 'r'}, // Ŕŕ
	{193, 'A', 225, 'a'}, // Áá
	{194, 'A', 226, 'a'}, // Ââ
	{195, 'A', 227, 'a'}, // Ăă
	{196, 'A', 228, 'a'}, // Ää
	{197, 'L', 229, 'l'}, // Ĺĺ
	{198, 'C', 230, 'c'}, // Ćć
	{199, 'C', 231, 'c'}, // Çç
	{200, 'C', 232, 'c'}, // Čč
	{201, 'E', 233, 'e'}, // Éé
	{202, 'E', 234, 'e'}, // Ęę
	{203, 'E', 235, 'e'}, // Ëë
	{204, 'E', 236, 'e'}, // Ěě
	{205, 'I', 237, 'i'}, // Íí
	{206, 'I', 238, 'i'}, // Îî
	{207, 'D', 239, 'd'}, // Ďď
	{208, 'D', 240, 'd'}, // Đđ
	{209, 'N', 241, 'n'}, // Ńń
	{210, 'N', 242, 'n'}, // Ňň
	{211, 'O', 243, 'o'}, // Óó
	{212, 'O', 244, 'o'}, // Ôô
	{213, 'O', 245, 'o'}, // Őő
	{214, 'O', 246, 'o'}, // Öö
	{216, 'R', 248, 'r'}, // Řř
	{217, 'U', 249, 'u'}, // Ůů
	{218, 'U', 250, 'u'}, // Úú
	{219, 'U', 251, 'u'}, // Űű
	{220, 'U', 252, 'u'}, // Üü
	{221, 'Y', 253, 'y'}, // Ýý
	{222, 'T', 254, 't'}, // Ţţ
}

func buildStrip(strip *[256]byte) {
	for i := 0; i < 256; i++ {
		strip[i] = byte(i)
	}
	for _, p := range diacriticPairs {
		strip[p.upper] = p.upperTo
		strip[p.lower] = p.lowerTo
	}
}

// encodingPairs lists the 14 ISO-8859-2 ↔ Windows-1250 code point pairs
// that differ between the two encodings, taken from the original majka
// fsa::fsa constructor's table1/table2 initialization.
var encodingPairs = [...][2]byte{
	{169, 138}, // Š
	{166, 140}, // Ś
	{171, 141}, // Ť
	{174, 142}, // Ž
	{172, 143}, // Ź
	{185, 154}, // š
	{182, 156}, // ś
	{187, 157}, // ť
	{190, 158}, // ž
	{188, 159}, // ź
	{161, 165}, // Ą
	{177, 185}, // ą
	{165, 188}, // Ľ
	{181, 190}, // ľ
}

// buildEncoding populates encOut (the table output bytes are written
// through: ISO-8859-2 to Windows-1250 for every pair) and encIn (the table
// input bytes are read through: Windows-1250 to ISO-8859-2 for every
// pair). The pairs overlap (185 is both ISO-8859-2 š and Windows-1250 ą),
// so they form chains; each chain is closed into a cycle by mapping the
// Windows-1250 byte at its end back to the ISO-8859-2 byte at its start,
// which makes encIn and encOut mutually inverse permutations.
func buildEncoding(encIn, encOut *[256]byte) {
	var isISO, isWin [256]bool
	for i := 0; i < 256; i++ {
		encIn[i] = byte(i)
		encOut[i] = byte(i)
	}
	for _, p := range encodingPairs {
		iso, win := p[0], p[1]
		encOut[iso] = win
		encIn[win] = iso
		isISO[iso] = true
		isWin[win] = true
	}
	for _, p := range encodingPairs {
		if isISO[p[1]] {
			continue
		}
		start := p[0]
		for isWin[start] {
			start = encIn[start]
		}
		encOut[p[1]] = start
		encIn[start] = p[1]
	}
}

// Select returns the fold table named by flags, per the ADD_DIACRITICS /
// IGNORE_CASE row selection in spec.md §4.3: flags-1 indexes the row
// (1→Strip, 2→Lower, 3→StripNoCase). Only valid for flags in {1,2,3}.
func (t *Tables) Select(flags byte) *[256]byte {
	switch flags {
	case 1:
		return &t.Strip
	case 2:
		return &t.Lower
	case 3:
		return &t.StripNoCase
	default:
		return nil
	}
}
