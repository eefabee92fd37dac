package lexer

// Word is a single word-token cut out of a line.
type Word struct {
	// Text is the raw token, surface plus tags, still escaped.
	Text string
	// Offset is the byte offset of Text in the buffer the line came from.
	Offset int
}

// Len returns the raw byte length of the word.
func (w Word) Len() int {
	return len(w.Text)
}

// Words splits one line into word-tokens separated by unescaped WordDelim
// bytes. Runs of delimiters collapse, so no empty word is ever produced.
//
// Words can be drained from both ends. Both ends share a single window of
// the line; whatever one end consumes is gone for the other.
type Words struct {
	line   string
	base   int
	lo, hi int
}

// NewWords returns a scanner over line. base is the offset of line within
// its enclosing buffer and is added to every Word.Offset.
func NewWords(line string, base int) Words {
	return Words{line: line, base: base, hi: len(line)}
}

// Len returns the number of bytes not yet consumed from either end.
func (w *Words) Len() int {
	return w.hi - w.lo
}

// Rest returns the unconsumed part of the line.
func (w *Words) Rest() string {
	return w.line[w.lo:w.hi]
}

// Next returns the next word from the front.
func (w *Words) Next() (Word, bool) {
	for w.lo < w.hi && w.line[w.lo] == WordDelim {
		w.lo++
	}
	if w.lo == w.hi {
		return Word{}, false
	}

	start := w.lo
	end := start + IndexUnescaped(w.line[start:w.hi], WordDelim)
	w.lo = end

	return Word{Text: w.line[start:end], Offset: w.base + start}, true
}

// NextBack returns the next word from the back.
func (w *Words) NextBack() (Word, bool) {
	end := w.findEndBack()
	if end < 0 {
		w.hi = w.lo
		return Word{}, false
	}
	w.hi = end

	window := w.line[w.lo:w.hi]
	start := w.lo + LastIndexUnescaped(window, WordDelim) + 1
	w.hi = start

	return Word{Text: w.line[start:end], Offset: w.base + start}, true
}

// findEndBack locates the exclusive end of the last word in the window,
// or -1 if only delimiters remain.
func (w *Words) findEndBack() int {
	i := w.hi - 1
	for i >= w.lo && w.line[i] == WordDelim {
		i--
	}
	if i < w.lo {
		return -1
	}
	end := i + 1
	if w.line[i] != Escape || end == w.hi {
		return end
	}

	// [^\] \ ... \ TAB+   the first TAB belongs to the word when the run
	//        ^   ^        of escapes in front of it is odd.
	run := 1
	for j := i - 1; j >= w.lo && w.line[j] == Escape; j-- {
		run++
	}
	if run&1 == 1 {
		end++
	}
	return end
}
