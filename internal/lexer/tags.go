package lexer

// Tags splits a word-token into tag fields on unescaped TagDelim bytes.
// Unlike Words, adjacent delimiters yield an empty field: "a//b" is
// "a", "", "b". A trailing delimiter does not start a new field.
type Tags struct {
	rest string
}

// NewTags returns a field scanner over word.
func NewTags(word string) *Tags {
	return &Tags{rest: word}
}

// Next returns the next tag field.
func (t *Tags) Next() (string, bool) {
	if t.rest == "" {
		return "", false
	}

	i := IndexUnescaped(t.rest, TagDelim)
	field := t.rest[:i]
	if i == len(t.rest) {
		t.rest = ""
	} else {
		t.rest = t.rest[i+1:]
	}
	return field, true
}
