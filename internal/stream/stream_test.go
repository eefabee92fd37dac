package stream

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"kytoken/internal/pos"
	"kytoken/internal/tags"
)

type surfacePoS = tags.Tuple2[tags.Surface, pos.PoS]

var surfacePoSDecoder = tags.Of2(tags.SurfaceOf, tags.PoSOf)

const multiLine = "\na/名詞\tb/形容詞\nc/d\n\ne/UNK\n"

func TestStream_MultiLine(t *testing.T) {
	s := New(multiLine, surfacePoSDecoder)

	want := []struct {
		v      surfacePoS
		length int
	}{
		{surfacePoS{V0: "a", V1: pos.Noun}, 8},
		{surfacePoS{V0: "b", V1: pos.Adjective}, 11},
		{surfacePoS{V0: "c", V1: pos.None}, 3},
		{surfacePoS{V0: "e", V1: pos.Unknown}, 5},
	}
	for i, w := range want {
		got, ok := s.Next()
		if !ok {
			t.Fatalf("item %d: stream ended early", i)
		}
		if diff := cmp.Diff(w.v, got); diff != "" {
			t.Errorf("item %d mismatch (-want +got):\n%s", i, diff)
		}
		if s.LenLastConsumed() != w.length {
			t.Errorf("item %d: LenLastConsumed = %d, want %d", i, s.LenLastConsumed(), w.length)
		}
		off := s.OffsetLastConsumed()
		if raw := multiLine[off : off+s.LenLastConsumed()]; tags.Surface(raw[:1]) != got.V0 {
			t.Errorf("item %d: raw word %q does not start with surface %q", i, raw, got.V0)
		}
	}
	if _, ok := s.Next(); ok {
		t.Error("expected end of stream")
	}
}

func TestStream_SurfaceOnly(t *testing.T) {
	s := New(multiLine, tags.SurfaceOf)
	var got []tags.Surface
	var lens []int
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, v)
		lens = append(lens, s.LenLastConsumed())
	}
	if diff := cmp.Diff([]tags.Surface{"a", "b", "c", "e"}, got); diff != "" {
		t.Errorf("surfaces mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{8, 11, 3, 5}, lens); diff != "" {
		t.Errorf("lengths mismatch (-want +got):\n%s", diff)
	}
}

func TestStream_Backward(t *testing.T) {
	s := New(multiLine, tags.SurfaceOf)
	var got []tags.Surface
	for {
		v, ok := s.NextBack()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]tags.Surface{"e", "c", "b", "a"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStream_Interleaved(t *testing.T) {
	text := "a\tb\tc\nd\te\n\nf\tg"

	tests := []struct {
		name  string
		steps string // f = front, b = back
		want  string
	}{
		{"alternate", "fbfbfbf", "agbfced"},
		{"back then front", "bbbbfff", "gfedabc"},
		{"same line from both ends", "fffffbb", "abcdegf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(text, tags.SurfaceOf)
			var got []byte
			for _, step := range tt.steps {
				var v tags.Surface
				var ok bool
				if step == 'b' {
					v, ok = s.NextBack()
				} else {
					v, ok = s.Next()
				}
				if !ok {
					t.Fatalf("stream ended early, got %q", got)
				}
				got = append(got, string(v)...)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if _, ok := s.Next(); ok {
				t.Error("front should be exhausted")
			}
			if _, ok := s.NextBack(); ok {
				t.Error("back should be exhausted")
			}
		})
	}
}

func TestStream_EscapesStayOnTheirLine(t *testing.T) {
	// A trailing escape must not swallow the newline or the next line's TAB.
	s := New("a\\\n\tb/名詞\r\nc", tags.SurfaceOf)
	var got []tags.Surface
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]tags.Surface{"a\\", "b", "c"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStream_Empty(t *testing.T) {
	for _, text := range []string{"", "\n\n", "\t\t\n\t", "\r\n"} {
		s := New(text, tags.Str)
		if v, ok := s.Next(); ok {
			t.Errorf("Next on %q = %q, want nothing", text, v)
		}
		s = New(text, tags.Str)
		if v, ok := s.NextBack(); ok {
			t.Errorf("NextBack on %q = %q, want nothing", text, v)
		}
	}
}

func TestRetag(t *testing.T) {
	s := New(multiLine, tags.SurfaceOf)
	if _, ok := s.Next(); !ok {
		t.Fatal("expected first item")
	}
	if _, ok := s.NextBack(); !ok {
		t.Fatal("expected last item")
	}

	r := Retag(s, surfacePoSDecoder)
	if r.LenLastConsumed() != 0 {
		t.Errorf("retagged stream LenLastConsumed = %d, want 0", r.LenLastConsumed())
	}

	var got []surfacePoS
	for {
		v, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []surfacePoS{{V0: "b", V1: pos.Adjective}, {V0: "c", V1: pos.None}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// The source stream keeps its own cursor.
	if v, ok := s.Next(); !ok || v != "b" {
		t.Errorf("source Next = (%q, %v), want b", v, ok)
	}
}
