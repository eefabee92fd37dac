package analysis

import (
	"kytoken/internal/stream"
	"kytoken/internal/tags"
)

// Predicate decides whether a decoded word becomes a token.
type Predicate[T any] func(surface tags.Surface, t T) bool

// SkipWhitespace rejects words whose surface is a space or an escaped TAB.
func SkipWhitespace[T any](surface tags.Surface, _ T) bool {
	return !surface.IsASCIIWhitespace()
}

// TokenStream turns analyzer output into tokens for an index writer.
//
// Every word is decoded as (Surface, T). The surface becomes the token
// term and T is exposed through Tags. Positions count emitted tokens
// only; words rejected by the predicate do not use one up. A token's byte
// range covers the whole raw word, tags included, so
// text[StartByte:EndByte] is exactly the analyzer's "surface/tags" entry.
//
// A TokenStream is not safe for concurrent use.
type TokenStream[T any] struct {
	words *stream.Stream[tags.Tuple2[tags.Surface, T]]
	keep  Predicate[T]
	count int
	tags  T
	token Token
}

// NewTokenStream returns a stream that only extracts surfaces.
func NewTokenStream(text string) *TokenStream[struct{}] {
	return NewTaggedTokenStream(text, tags.Unit)
}

// NewTaggedTokenStream returns a stream that decodes the fields after the
// surface with dec.
func NewTaggedTokenStream[T any](text string, dec tags.Decoder[T]) *TokenStream[T] {
	return NewFilteredTokenStream(text, dec, nil)
}

// NewFilteredTokenStream is like NewTaggedTokenStream but only emits words
// accepted by keep. A nil keep accepts everything.
func NewFilteredTokenStream[T any](text string, dec tags.Decoder[T], keep Predicate[T]) *TokenStream[T] {
	return &TokenStream[T]{
		words: stream.New(text, tags.Of2(tags.SurfaceOf, dec)),
		keep:  keep,
		token: Token{Position: -1},
	}
}

// Advance moves to the next token. It returns false once the text is
// exhausted.
func (ts *TokenStream[T]) Advance() bool {
	for {
		item, ok := ts.words.Next()
		if !ok {
			return false
		}
		if ts.keep != nil && !ts.keep(item.V0, item.V1) {
			continue
		}
		ts.set(item.V0)
		ts.tags = item.V1
		return true
	}
}

// Token returns the current token.
func (ts *TokenStream[T]) Token() *Token {
	return &ts.token
}

// Tags returns the decoded tags of the current token.
func (ts *TokenStream[T]) Tags() T {
	return ts.tags
}

// set fills the scratch token. The surface is the first field of its word,
// so the word's offset is also the surface's offset in the input text.
func (ts *TokenStream[T]) set(surface tags.Surface) {
	tok := &ts.token
	tok.Term = append(tok.Term[:0], string(surface)...)
	tok.Position = ts.count
	ts.count++
	tok.StartByte = ts.words.OffsetLastConsumed()
	tok.EndByte = tok.StartByte + ts.words.LenLastConsumed()
}
