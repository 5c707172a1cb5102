package align

// Token is the smallest unit of text the engine may re-space. Text is
// never rewritten; only Spaces, the number of space characters the
// engine places immediately before Text, changes as a result of
// alignment.
type Token struct {
	Text string

	// Spaces is the number of ASCII space characters preceding Text.
	// It is the only field alignment ever mutates.
	Spaces int

	// SpacesRequired is the pre-spacing a row-builder or scanner
	// originally measured for Text, before any alignment pass touched
	// Spaces. Alignment reads it when sizing a column's left border
	// (the minimum spacing its widest cell actually asked for) but
	// never writes it, so it survives Spaces being rewritten.
	SpacesRequired int

	// ByteOffset is Text's starting offset in the original source, used
	// to test membership in a format-disabled region.
	ByteOffset int
}

// Width reports how many columns Text occupies, ignoring any embedded
// newline. Multi-line tokens are an explicit non-goal (see §9 of the
// design notes): their width is approximated as the length of their
// first line, which may undercount a token that contains a literal
// newline.
func (t Token) Width() int {
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] == '\n' {
			return i
		}
	}
	return len(t.Text)
}

// TokenRange is a contiguous, mutable slice of Tokens. Go slices already
// alias their backing array, so — unlike the const/mutable split in the
// original C++ — a single type suffices: re-slicing a TokenRange never
// copies, and mutating through any alias is visible through every other
// alias over the same backing array.
type TokenRange []Token

// TotalWidth returns the sum of each token's leading spaces and text
// width, i.e. the number of columns the range occupies when printed in
// place, including the space before its very first token.
func (r TokenRange) TotalWidth() int {
	total := 0
	for _, tok := range r {
		total += tok.Spaces + tok.Width()
	}
	return total
}

// CompactWidth is the range's width ignoring the space that precedes
// its first token — the quantity a column's width is measured against,
// since that leading space is exactly what alignment controls. Spacing
// between tokens after the first is preserved content, not alignment
// padding, so it still counts.
func (r TokenRange) CompactWidth() int {
	total := 0
	for i, tok := range r {
		total += tok.Width()
		if i > 0 {
			total += tok.Spaces
		}
	}
	return total
}
