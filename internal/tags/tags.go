// Package tags decodes the tag fields of a word-token into typed values.
//
// A Decoder consumes fields from the front of a Fields sequence. Primitive
// decoders take at most one field each; the tuple builders combine them
// positionally. When fields run out every remaining element gets its
// type's "no field" value, and fields left over after decoding are
// ignored. Decoding never fails.
package tags

import (
	"strings"

	"kytoken/internal/lexer"
	"kytoken/internal/pos"
)

// Fields is a forward-only sequence of tag fields. *lexer.Tags
// implements it.
type Fields interface {
	Next() (string, bool)
}

// Decoder produces a T from the front of a field sequence.
type Decoder[T any] interface {
	Decode(f Fields) T
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc[T any] func(f Fields) T

// Decode calls fn(f).
func (fn DecoderFunc[T]) Decode(f Fields) T {
	return fn(f)
}

// Surface is the literal text of a word, tag field 0. It is always a view
// into the analyzer output and keeps its escape bytes.
type Surface string

// String returns the surface text.
func (s Surface) String() string {
	return string(s)
}

// IsASCIIWhitespace reports whether the surface starts with an ASCII
// whitespace byte (space, TAB, LF, FF or CR) or is an escaped word delimiter.
func (s Surface) IsASCIIWhitespace() bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return len(s) > 1 && s[0] == lexer.Escape && s[1] == lexer.WordDelim
}

func next(f Fields) string {
	field, _ := f.Next()
	return field
}

var (
	// Str yields the next field as a view of the input, "" when absent.
	Str Decoder[string] = DecoderFunc[string](next)

	// Owned yields a copy of the next field that does not retain the input.
	Owned Decoder[string] = DecoderFunc[string](func(f Fields) string {
		return strings.Clone(next(f))
	})

	// SurfaceOf yields the next field as a Surface.
	SurfaceOf Decoder[Surface] = DecoderFunc[Surface](func(f Fields) Surface {
		return Surface(next(f))
	})

	// PoSOf parses the next field as a part-of-speech. Missing, empty
	// and unrecognized tags all decode to pos.None.
	PoSOf Decoder[pos.PoS] = DecoderFunc[pos.PoS](func(f Fields) pos.PoS {
		p, err := pos.Parse(next(f))
		if err != nil {
			return pos.None
		}
		return p
	})

	// Unit consumes nothing.
	Unit Decoder[struct{}] = DecoderFunc[struct{}](func(Fields) struct{} {
		return struct{}{}
	})
)

// DefaultTags is the (surface, part-of-speech, reading) shape most
// analyzer models produce.
type DefaultTags = Tuple3[Surface, pos.PoS, string]

// Default decodes DefaultTags.
var Default = Of3(SurfaceOf, PoSOf, Str)

// DecodeWord splits word into fields and decodes them with d.
func DecodeWord[T any](d Decoder[T], word string) T {
	return d.Decode(lexer.NewTags(word))
}
