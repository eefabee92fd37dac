// Package pos defines the closed part-of-speech vocabulary emitted by the
// analyzer.
package pos

import (
	"errors"
	"fmt"
)

// PoS is a part-of-speech category. Its ordinal is stable.
type PoS uint8

// Categories in ordinal order. Unknown is the analyzer's own tag for words
// it could not classify; None means no usable tag was present.
const (
	Noun                PoS = iota // 名詞
	Verb                           // 動詞
	Suffix                         // 接尾辞
	Adjective                      // 形容詞
	Pronoun                        // 代名詞
	Adverb                         // 副詞
	AdjectivalNoun                 // 形状詞
	Adnominal                      // 連体詞
	Prefix                         // 接頭辞
	Conjunction                    // 接続詞
	Interjection                   // 感動詞
	Particle                       // 助詞
	SupplementarySymbol            // 補助記号
	Ending                         // 語尾
	AuxiliaryVerb                  // 助動詞
	URL                            // URL
	Symbol                         // 記号
	Whitespace                     // 空白
	Filler                         // 言いよどみ
	EnglishWord                    // 英単語
	Unknown                        // UNK
	None
)

// Count is the number of values, sentinels included.
const Count = int(None) + 1

var names = [Count]string{
	Noun:                "名詞",
	Verb:                "動詞",
	Suffix:              "接尾辞",
	Adjective:           "形容詞",
	Pronoun:             "代名詞",
	Adverb:              "副詞",
	AdjectivalNoun:      "形状詞",
	Adnominal:           "連体詞",
	Prefix:              "接頭辞",
	Conjunction:         "接続詞",
	Interjection:        "感動詞",
	Particle:            "助詞",
	SupplementarySymbol: "補助記号",
	Ending:              "語尾",
	AuxiliaryVerb:       "助動詞",
	URL:                 "URL",
	Symbol:              "記号",
	Whitespace:          "空白",
	Filler:              "言いよどみ",
	EnglishWord:         "英単語",
	Unknown:             "UNK",
	None:                "None",
}

var byName = func() map[string]PoS {
	m := make(map[string]PoS, Count)
	for i, name := range names {
		m[name] = PoS(i)
	}
	return m
}()

// ErrUnknownTag is returned by Parse for strings outside the vocabulary.
var ErrUnknownTag = errors.New("unknown part-of-speech tag")

// Parse returns the PoS whose tag is s.
func Parse(s string) (PoS, error) {
	if p, ok := byName[s]; ok {
		return p, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// FromOrdinal converts an ordinal back to a PoS, mapping anything out of
// range to None.
func FromOrdinal(n uint8) PoS {
	if int(n) >= Count {
		return None
	}
	return PoS(n)
}

// Ordinal returns the stable ordinal of p.
func (p PoS) Ordinal() uint8 {
	return uint8(p)
}

// String returns the analyzer's tag for p.
func (p PoS) String() string {
	if int(p) >= Count {
		return names[None]
	}
	return names[p]
}

// Next returns the category after p in ordinal order, or false after None.
func (p PoS) Next() (PoS, bool) {
	if int(p)+1 >= Count {
		return None, false
	}
	return p + 1, true
}

// All returns every value in ordinal order, sentinels last.
func All() []PoS {
	all := make([]PoS, Count)
	for i := range all {
		all[i] = PoS(i)
	}
	return all
}

// AppendTo appends "/" and the tag of p to dst, the way the analyzer
// writes it after a surface.
func (p PoS) AppendTo(dst []byte) []byte {
	dst = append(dst, '/')
	return append(dst, p.String()...)
}

// MarshalText implements encoding.TextMarshaler.
func (p PoS) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PoS) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
