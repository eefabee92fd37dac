package lexer

// Wire format bytes produced by the analyzer.
const (
	WordDelim = '\t'
	TagDelim  = '/'
	Escape    = '\\'
)

// EscapeRun returns the length of the run of Escape bytes that ends
// immediately before index i.
func EscapeRun(s string, i int) int {
	n := 0
	for j := i - 1; j >= 0 && s[j] == Escape; j-- {
		n++
	}
	return n
}

// IsEscaped reports whether the byte at index i is neutralized by an odd
// run of Escape bytes. Pairs of Escape bytes cancel each other.
func IsEscaped(s string, i int) bool {
	return EscapeRun(s, i)&1 == 1
}

// IndexUnescaped returns the index of the first unescaped delim in s,
// or len(s) if there is none.
func IndexUnescaped(s string, delim byte) int {
	run := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == delim && run&1 == 0 {
			return i
		}
		if c == Escape {
			run++
		} else {
			run = 0
		}
	}
	return len(s)
}

// LastIndexUnescaped returns the index of the last unescaped delim in s,
// or -1 if there is none. It inspects the escape run in front of every
// candidate instead of replaying a forward scan.
func LastIndexUnescaped(s string, delim byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == delim && !IsEscaped(s, i) {
			return i
		}
	}
	return -1
}
