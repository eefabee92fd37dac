package analysis

import (
	"bytes"

	"kytoken/internal/pos"
	"kytoken/internal/tags"
)

// KyteaOptions selects which analyzer words become tokens.
type KyteaOptions struct {
	// SkipWhitespace drops words whose surface is a space or escaped TAB.
	SkipWhitespace bool

	// ExcludePoS drops words tagged with any of these categories.
	ExcludePoS []pos.PoS
}

// KyteaAnalyzer reads text that has already been segmented and tagged by
// the analyzer and emits one token per word.
type KyteaAnalyzer struct {
	opts     KyteaOptions
	excluded [pos.Count]bool
}

// NewKyteaAnalyzer creates a KyteaAnalyzer.
func NewKyteaAnalyzer(opts KyteaOptions) *KyteaAnalyzer {
	a := &KyteaAnalyzer{opts: opts}
	for _, p := range opts.ExcludePoS {
		if int(p) < pos.Count {
			a.excluded[p] = true
		}
	}
	return a
}

// FunctionPoS lists categories that rarely carry meaning on their own.
// The "kytea-content" analyzer drops them.
var FunctionPoS = []pos.PoS{
	pos.Particle,
	pos.AuxiliaryVerb,
	pos.Ending,
	pos.Symbol,
	pos.SupplementarySymbol,
	pos.Whitespace,
	pos.Filler,
}

// Analyze tokenizes analyzer output. Byte offsets refer to text.
func (a *KyteaAnalyzer) Analyze(_ string, text string) []Token {
	ts := NewFilteredTokenStream(text, tags.PoSOf, a.keep)

	var tokens []Token
	for ts.Advance() {
		tok := *ts.Token()
		tok.Term = bytes.Clone(tok.Term)
		tokens = append(tokens, tok)
	}
	return tokens
}

func (a *KyteaAnalyzer) keep(surface tags.Surface, p pos.PoS) bool {
	if a.opts.SkipWhitespace && surface.IsASCIIWhitespace() {
		return false
	}
	return !(int(p) < pos.Count && a.excluded[p])
}
