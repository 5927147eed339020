package opltypes

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Username is a normalized, ASCII-safe, script-independent lifter
// identifier. It is the unique key for a Lifter: two entries with the
// same normalized name but different people are disambiguated by a
// trailing decimal-digit suffix assigned by the corpus maintainer, not
// derived by this type.
type Username string

// diacriticFold strips combining marks after NFKD decomposition, e.g.
// "é" (e + combining acute) -> "e". Built once and reused because
// transform.Chain is not safe to rebuild on every call in a hot path.
var diacriticFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// directSubstitutions holds letters that NFKD decomposition does not
// reduce to a bare ASCII letter plus combining marks, so must be
// special-cased. This table is part of the public contract: do not
// paraphrase it, since changing a rule re-keys the lifter hash map.
var directSubstitutions = map[rune]string{
	'þ': "th", 'Þ': "TH",
	'ð': "d", 'Ð': "D",
	'ø': "o", 'Ø': "O",
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ı': "i", 'İ': "I",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ħ': "h", 'Ħ': "H",
	'ŋ': "n", 'Ŋ': "N",
}

// hiraganaToKatakana shifts a Hiragana code point (U+3041-U+3096) into
// the corresponding Katakana code point (U+30A1-U+30F6), a constant
// +0x60 offset. Japanese usernames are normalized to Katakana.
func hiraganaToKatakana(c rune) rune {
	if c >= 0x3041 && c <= 0x3096 {
		return c + 0x60
	}
	return c
}

// FromName normalizes a lifter's display name into a Username: lowercase,
// strip whitespace, fold Hiragana to Katakana, transliterate a curated
// set of accented/non-Latin letters to ASCII, keep Katakana as-is, and
// reject any remaining rune that is not an ASCII letter or digit.
func FromName(name string) (Username, error) {
	var b strings.Builder
	for _, c := range name {
		if unicode.IsSpace(c) {
			continue
		}
		b.WriteRune(hiraganaToKatakana(c))
	}

	folded, _, err := transform.String(diacriticFold, b.String())
	if err != nil {
		return "", fmt.Errorf("opltypes: normalizing name %q: %w", name, err)
	}
	folded = strings.ToLower(folded)

	var out strings.Builder
	for _, c := range folded {
		if c <= unicode.MaxASCII && (unicode.IsLower(c) || unicode.IsDigit(c)) {
			out.WriteRune(c)
			continue
		}
		if repl, ok := directSubstitutions[c]; ok {
			out.WriteString(strings.ToLower(repl))
			continue
		}
		// Katakana survives as-is for Japanese usernames: the corpus
		// keys Japanese lifters by their Katakana rendering rather
		// than forcing a romanization.
		if c >= 0x30A1 && c <= 0x30F6 {
			out.WriteRune(c)
			continue
		}
		return "", fmt.Errorf("opltypes: name %q contains unsupported rune %q after normalization", name, c)
	}

	return Username(out.String()), nil
}

// String returns the normalized username as a plain string.
func (u Username) String() string {
	return string(u)
}

// Contains reports whether the username contains substr as a substring,
// used by search.
func (u Username) Contains(substr string) bool {
	return strings.Contains(string(u), substr)
}
