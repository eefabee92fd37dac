// Package stream flattens multi-line analyzer output into one sequence of
// decoded word values that can be drained from either end.
package stream

import (
	"strings"

	"kytoken/internal/lexer"
	"kytoken/internal/tags"
)

// Stream yields one decoded T per word-token of a multi-line text, in
// document order. Lines are scanned independently, so escape state never
// leaks across a newline, and blank lines contribute nothing.
//
// The front and the back share the remaining lines: once a line has been
// entered from one end, the other end reaches its leftovers only after
// every other line is used up.
type Stream[T any] struct {
	dec tags.Decoder[T]

	text string
	// lines not yet entered from either end, as text[lo:hi]
	lo, hi int

	front, back         lexer.Words
	hasFront, hasBack   bool
	lastOffset, lastLen int
}

// New returns a stream over text decoding each word with dec.
func New[T any](text string, dec tags.Decoder[T]) *Stream[T] {
	return &Stream[T]{dec: dec, text: text, hi: len(text)}
}

// Retag returns a stream positioned exactly like s that decodes into U
// from here on. The new stream has no consumed word recorded.
func Retag[T, U any](s *Stream[T], dec tags.Decoder[U]) *Stream[U] {
	return &Stream[U]{
		dec:      dec,
		text:     s.text,
		lo:       s.lo,
		hi:       s.hi,
		front:    s.front,
		back:     s.back,
		hasFront: s.hasFront,
		hasBack:  s.hasBack,
	}
}

// Next decodes the next word from the front.
func (s *Stream[T]) Next() (T, bool) {
	w, ok := s.nextWord()
	return s.decode(w, ok)
}

// NextBack decodes the next word from the back.
func (s *Stream[T]) NextBack() (T, bool) {
	w, ok := s.nextWordBack()
	return s.decode(w, ok)
}

// LenLastConsumed returns the raw byte length, tags included, of the word
// behind the value most recently returned.
func (s *Stream[T]) LenLastConsumed() int {
	return s.lastLen
}

// OffsetLastConsumed returns the byte offset in the input text of the
// word behind the value most recently returned.
func (s *Stream[T]) OffsetLastConsumed() int {
	return s.lastOffset
}

func (s *Stream[T]) decode(w lexer.Word, ok bool) (T, bool) {
	if !ok {
		var zero T
		return zero, false
	}
	s.lastOffset = w.Offset
	s.lastLen = w.Len()
	return tags.DecodeWord(s.dec, w.Text), true
}

func (s *Stream[T]) nextWord() (lexer.Word, bool) {
	for {
		if s.hasFront {
			if w, ok := s.front.Next(); ok {
				return w, true
			}
			s.hasFront = false
		}
		line, base, ok := s.popLine()
		if !ok {
			break
		}
		s.front = lexer.NewWords(line, base)
		s.hasFront = true
	}
	if s.hasBack {
		if w, ok := s.back.Next(); ok {
			return w, true
		}
		s.hasBack = false
	}
	return lexer.Word{}, false
}

func (s *Stream[T]) nextWordBack() (lexer.Word, bool) {
	for {
		if s.hasBack {
			if w, ok := s.back.NextBack(); ok {
				return w, true
			}
			s.hasBack = false
		}
		line, base, ok := s.popLineBack()
		if !ok {
			break
		}
		s.back = lexer.NewWords(line, base)
		s.hasBack = true
	}
	if s.hasFront {
		if w, ok := s.front.NextBack(); ok {
			return w, true
		}
		s.hasFront = false
	}
	return lexer.Word{}, false
}

func (s *Stream[T]) popLine() (string, int, bool) {
	if s.lo >= s.hi {
		return "", 0, false
	}
	start := s.lo
	end := s.hi
	if i := strings.IndexByte(s.text[start:end], '\n'); i >= 0 {
		end = start + i
	}
	s.lo = end + 1
	if s.lo > s.hi {
		s.lo = s.hi
	}
	return s.line(start, end), start, true
}

func (s *Stream[T]) popLineBack() (string, int, bool) {
	if s.lo >= s.hi {
		return "", 0, false
	}
	end := s.hi
	start := s.lo
	if i := strings.LastIndexByte(s.text[start:end], '\n'); i >= 0 {
		start += i + 1
		s.hi = start - 1
	} else {
		s.hi = s.lo
	}
	return s.line(start, end), start, true
}

// line returns text[start:end] without the \r of a \r\n terminator.
func (s *Stream[T]) line(start, end int) string {
	line := s.text[start:end]
	if end < len(s.text) {
		line = strings.TrimSuffix(line, "\r")
	}
	return line
}
