package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func forwardWords(line string) []string {
	w := NewWords(line, 0)
	var out []string
	for {
		word, ok := w.Next()
		if !ok {
			return out
		}
		out = append(out, word.Text)
	}
}

func backwardWords(line string) []string {
	w := NewWords(line, 0)
	var out []string
	for {
		word, ok := w.NextBack()
		if !ok {
			return out
		}
		out = append(out, word.Text)
	}
}

func reversed(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}

func TestEscapeRun(t *testing.T) {
	tests := []struct {
		s    string
		i    int
		want int
	}{
		{"", 0, 0},
		{"a\t", 1, 0},
		{"\\\t", 1, 1},
		{"\\\\\t", 2, 2},
		{"a\\\\\\\t", 4, 3},
		{"\\a\\\t", 3, 1},
	}
	for _, tt := range tests {
		if got := EscapeRun(tt.s, tt.i); got != tt.want {
			t.Errorf("EscapeRun(%q, %d) = %d, want %d", tt.s, tt.i, got, tt.want)
		}
		if got := IsEscaped(tt.s, tt.i); got != (tt.want%2 == 1) {
			t.Errorf("IsEscaped(%q, %d) = %v", tt.s, tt.i, got)
		}
	}
}

func TestIndexUnescaped(t *testing.T) {
	tests := []struct {
		s     string
		first int
		last  int
	}{
		{"", 0, -1},
		{"abc", 3, -1},
		{"a/b/c", 1, 3},
		{"\\/a", 3, -1},
		{"\\\\/a", 2, 2},
		{"\\\\\\/a/", 5, 5},
		{"/\\/", 0, 0},
	}
	for _, tt := range tests {
		if got := IndexUnescaped(tt.s, TagDelim); got != tt.first {
			t.Errorf("IndexUnescaped(%q) = %d, want %d", tt.s, got, tt.first)
		}
		if got := LastIndexUnescaped(tt.s, TagDelim); got != tt.last {
			t.Errorf("LastIndexUnescaped(%q) = %d, want %d", tt.s, got, tt.last)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only delimiters", "\t\t\t", nil},
		{"single", "a", []string{"a"}},
		{"collapse runs", "吾輩/名詞\tは/助詞\t\t猫/名詞\t /補助記号",
			[]string{"吾輩/名詞", "は/助詞", "猫/名詞", " /補助記号"}},
		{"escapes", "ab\t\\\t/補助記号\t\\/\\\t\t\\\\\\\t/\\\\\t",
			[]string{"ab", "\\\t/補助記号", "\\/\\\t", "\\\\\\\t/\\\\"}},
		{"leading delimiters", "\t\tab\tcd", []string{"ab", "cd"}},
		{"escaped leading delimiter", "\\\ta", []string{"\\\ta"}},
		{"even escapes before delimiter", "\\\\\ta", []string{"\\\\", "a"}},
		{"trailing escape", "a\\", []string{"a\\"}},
		{"trailing escaped delimiter", "a\\\t", []string{"a\\\t"}},
		{"escaped delimiter then delimiter", "a\\\t\tb", []string{"a\\\t", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, forwardWords(tt.input)); diff != "" {
				t.Errorf("forward mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(reversed(tt.want), backwardWords(tt.input)); diff != "" {
				t.Errorf("backward mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWords_Rev(t *testing.T) {
	got := backwardWords("\t\tab\t\\\t/補助記号\t\\/\\\t\t\\\\\\\t/\\\\\t")
	want := []string{"\\\\\\\t/\\\\", "\\/\\\t", "\\\t/補助記号", "ab"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWords_Mixed(t *testing.T) {
	w := NewWords("吾輩/名詞\tは/助詞\t\t猫/名詞\t /補助記号", 0)

	steps := []struct {
		back bool
		want string
	}{
		{false, "吾輩/名詞"},
		{true, " /補助記号"},
		{false, "は/助詞"},
		{true, "猫/名詞"},
	}
	for i, s := range steps {
		var word Word
		var ok bool
		if s.back {
			word, ok = w.NextBack()
		} else {
			word, ok = w.Next()
		}
		if !ok || word.Text != s.want {
			t.Fatalf("step %d = (%q, %v), want %q", i, word.Text, ok, s.want)
		}
	}
	if _, ok := w.Next(); ok {
		t.Error("expected front to be exhausted")
	}
	if _, ok := w.NextBack(); ok {
		t.Error("expected back to be exhausted")
	}
}

func TestWords_Offsets(t *testing.T) {
	line := "\ta/b\t\tcd\t"
	w := NewWords(line, 10)

	first, _ := w.Next()
	last, _ := w.NextBack()
	if first.Offset != 11 || first.Len() != 3 {
		t.Errorf("first = %+v, want offset 11 len 3", first)
	}
	if last.Offset != 16 || last.Len() != 2 {
		t.Errorf("last = %+v, want offset 16 len 2", last)
	}
	for _, word := range []Word{first, last} {
		if got := line[word.Offset-10 : word.Offset-10+word.Len()]; got != word.Text {
			t.Errorf("offset slice %q != %q", got, word.Text)
		}
	}
	if w.Len() != 2 || w.Rest() != "\t\t" {
		t.Errorf("remaining window = %q (len %d)", w.Rest(), w.Len())
	}
}

func TestWords_Idempotent(t *testing.T) {
	inputs := []string{
		"吾輩/名詞\tは/助詞\t\t猫/名詞\t /補助記号",
		"ab\t\\\t/補助記号\t\\/\\\t\t\\\\\\\t/\\\\\t",
		"\t\t\\\\\ta\\\t\t",
	}
	for _, in := range inputs {
		first := forwardWords(in)
		second := forwardWords(strings.Join(first, "\t"))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("resplit of %q mismatch (-first +second):\n%s", in, diff)
		}
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"abc", []string{"abc"}},
		{"abc/", []string{"abc"}},
		{"abc/def//ghi", []string{"abc", "def", "", "ghi"}},
		{"/名詞", []string{"", "名詞"}},
		{"a\\/b/c", []string{"a\\/b", "c"}},
		{"a\\\\/b", []string{"a\\\\", "b"}},
		{"a//", []string{"a", ""}},
	}
	for _, tt := range tests {
		it := NewTags(tt.input)
		var got []string
		for {
			f, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, f)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tags(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}
