package analysis

import (
	"errors"
	"fmt"
	"unicode/utf8"
	"unsafe"
)

var (
	ErrInvalidUTF8 = errors.New("analyzer output is not valid UTF-8")
	ErrNulByte     = errors.New("analyzer output contains a NUL byte")
)

// InputError reports where raw analyzer output was rejected.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid analyzer output at byte %d: %v", e.Offset, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Validate checks that b is valid UTF-8 without NUL bytes.
func Validate(b []byte) error {
	for i := 0; i < len(b); {
		c := b[i]
		if c == 0 {
			return &InputError{Offset: i, Err: ErrNulByte}
		}
		if c < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return &InputError{Offset: i, Err: ErrInvalidUTF8}
		}
		i += size
	}
	return nil
}

// Text validates b and returns it as a string.
func Text(b []byte) (string, error) {
	if err := Validate(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// TextUnchecked returns b as a string without copying or validating it.
//
// The caller guarantees that b is valid UTF-8 without NUL bytes and is
// never modified while the string or anything derived from it is in use.
// Breaking either rule is a bug in the caller; the result is undefined.
func TextUnchecked(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// FromBytes validates raw analyzer output and returns a surface-only
// token stream over it.
func FromBytes(b []byte) (*TokenStream[struct{}], error) {
	text, err := Text(b)
	if err != nil {
		return nil, err
	}
	return NewTokenStream(text), nil
}

// FromBytesUnchecked is the fast path of FromBytes. See TextUnchecked for
// the contract the caller must uphold.
func FromBytesUnchecked(b []byte) *TokenStream[struct{}] {
	return NewTokenStream(TextUnchecked(b))
}
