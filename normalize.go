package syllabify

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures a Syllabifier.
type Option func(*Syllabifier)

// WithFoldCase lower-cases input words using Romanian casing rules.
// Without it, upper-case letters are reported as invalid characters.
func WithFoldCase() Option {
	return func(s *Syllabifier) {
		s.normalizers = append(s.normalizers, func() transform.Transformer {
			return cases.Lower(language.Romanian)
		})
	}
}

// WithComposedDiacritics brings input words into NFC and replaces the legacy
// cedilla letters ş and ţ by comma-below ș and ț, which is what the
// diacritic alphabets expect.
func WithComposedDiacritics() Option {
	return func(s *Syllabifier) {
		s.normalizers = append(s.normalizers, func() transform.Transformer {
			return transform.Chain(norm.NFC, runes.Map(commaBelow))
		})
	}
}

// WithStrippedDiacritics removes diacritics from input words (ă → a, ș → s),
// so that they may be segmented with the plain alphabet.
func WithStrippedDiacritics() Option {
	return func(s *Syllabifier) {
		s.normalizers = append(s.normalizers, func() transform.Transformer {
			return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		})
	}
}

func commaBelow(r rune) rune {
	switch r {
	case 'ş':
		return 'ș'
	case 'ţ':
		return 'ț'
	case 'Ş':
		return 'Ș'
	case 'Ţ':
		return 'Ț'
	}
	return r
}

// normalize applies the configured normalizers in order. Transformers are
// created per call as some of them (casers) carry state.
func (s *Syllabifier) normalize(word string) (string, error) {
	if len(s.normalizers) == 0 {
		return word, nil
	}
	chain := make([]transform.Transformer, len(s.normalizers))
	for i, mk := range s.normalizers {
		chain[i] = mk()
	}
	result, _, err := transform.String(transform.Chain(chain...), word)
	return result, err
}
