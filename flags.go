package majka

// Flags control how Find folds the queried word against the dictionary's
// letters. They combine bitwise; ADD_DIACRITICS|IGNORE_CASE is valid and
// selects the strip-and-lower fold table.
type Flags uint8

const (
	// AddDiacritics broadens matching to accept any letter that strips to
	// the same base letter as the dictionary arc (accent-insensitive
	// matching).
	AddDiacritics Flags = 1 << 0

	// IgnoreCase broadens matching to accept either case of a letter
	// (case-insensitive matching). Combined with AddDiacritics, both
	// diacritics and case are folded.
	IgnoreCase Flags = 1 << 1

	// DisallowLowercase suppresses the exact-mode fallback that retries a
	// leading uppercase letter lowercased.
	DisallowLowercase Flags = 1 << 2
)
