package analysis

// Token represents a single token produced by an analyzer.
//
// A TokenStream reuses one Token for every advance, so Term is overwritten
// by the next call to Advance. Copy it to keep it.
type Token struct {
	Term      []byte
	Position  int
	StartByte int
	EndByte   int
}

// Text returns a copy of the term.
func (t *Token) Text() string {
	return string(t.Term)
}

// Analyzer processes text into a stream of tokens.
// Implementations MUST be safe for reuse across documents.
type Analyzer interface {
	// Analyze tokenizes the input text and returns tokens with positions.
	// Each returned token owns its Term.
	Analyze(field string, text string) []Token
}
