package syllabify

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Segment inserts a '-' at every syllable boundary of word, using the
// built-in plain-alphabet rules for variant.
//
// Example:
//
//	Segment("lingvistica", Orthographic) => "lin-gvis-ti-ca"
//	Segment("lingvistica", Phonological) => "ling-vi-sti-ca"
//
// An empty word is returned unchanged. Words containing characters outside
// the alphabet produce an *InvalidCharacterError.
func Segment(word string, variant Variant) (string, error) {
	if variant == Phonological {
		return phonologicalSyllabifier().HyphenationString(word)
	}
	return orthographicSyllabifier().HyphenationString(word)
}

var (
	orthographicSyllabifier = sync.OnceValue(func() *Syllabifier {
		return New(OrthographicRules())
	})
	phonologicalSyllabifier = sync.OnceValue(func() *Syllabifier {
		return New(PhonologicalRules())
	})
)

// ExceptionReader yields syllabification exceptions one-by-one.
// Boundaries are rune offsets of word in front of which a boundary is set.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, boundaries []int, err error)
}

// Syllabifier segments words into syllables according to a set of rules.
//
// A syllabifier contains:
//   - compiled rules (alphabet partition + cluster tables)
//   - explicit exceptions, which take precedence over the rules
//   - optional input normalizers (see the With… options).
//
// Segmentation does not modify the syllabifier; it is safe to use from
// several goroutines once all exceptions have been loaded.
type Syllabifier struct {
	rules       *Rules
	exceptions  map[string][]int // e.g., "copci" => [3] = "cop-ci"
	normalizers []func() transform.Transformer
	Identifier  string // Identifies the syllabifier
}

// New creates a syllabifier for rules. If rules is nil, the built-in
// orthographic rules are used.
func New(rules *Rules, opts ...Option) *Syllabifier {
	if rules == nil {
		rules = OrthographicRules()
	}
	s := &Syllabifier{
		rules:      rules,
		Identifier: fmt.Sprintf("rules: %s", rules.Name()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the rules of s.
func (s *Syllabifier) Rules() *Rules {
	return s.rules
}

// LoadExceptionReader loads exception entries from a streaming source.
func (s *Syllabifier) LoadExceptionReader(reader ExceptionReader) (err error) {
	for {
		var word string
		var boundaries []int
		word, boundaries, err = reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			break
		}
		s.AddException(word, boundaries)
	}
	return err
}

// LoadExceptionList loads explicit exception entries from an in-memory map.
func (s *Syllabifier) LoadExceptionList(exceptions map[string][]int) {
	for word, boundaries := range exceptions {
		s.AddException(word, boundaries)
	}
}

// AddException registers one explicit syllabification, overriding the rules
// for word. Boundaries outside of [1, len(word)-1] are dropped.
//
// word is stored in normalized form, so that it is found for every input
// normalizing to it. Boundaries are mapped onto the normalized word; a
// boundary falling inside a letter which normalization combines is dropped.
func (s *Syllabifier) AddException(word string, boundaries []int) {
	w, err := s.normalize(word)
	if err != nil {
		tracer().Errorf("exception %q cannot be normalized: %v", word, err)
		return
	}
	if s.exceptions == nil {
		s.exceptions = make(map[string][]int)
	}
	letters := []rune(word)
	n := utf8.RuneCountInString(w)
	bb := make([]int, 0, len(boundaries))
	for _, b := range boundaries {
		if b <= 0 || b >= len(letters) {
			continue
		}
		if w != word {
			prefix, err := s.normalize(string(letters[:b]))
			if err != nil || !strings.HasPrefix(w, prefix) {
				tracer().Errorf("exception %q: boundary %d lost in normalization", word, b)
				continue
			}
			b = utf8.RuneCountInString(prefix)
		}
		if b > 0 && b < n {
			bb = append(bb, b)
		}
	}
	slices.Sort(bb)
	s.exceptions[w] = slices.Compact(bb)
	tracer().Debugf("exception %q => %v", w, s.exceptions[w])
}

// Boundaries returns the rune offsets of word in front of which a syllable
// boundary is placed.
//
// Example:
//
//	"casa" => [2] = "ca-sa".
//
// If normalization options are active, offsets refer to the normalized word.
func (s *Syllabifier) Boundaries(word string) ([]int, error) {
	_, boundaries, err := s.segment(word)
	return boundaries, err
}

// HyphenationString returns word with '-' inserted at syllable boundaries.
// Example:
//
//	"fereastra" => "fe-rea-stra".
func (s *Syllabifier) HyphenationString(word string) (string, error) {
	w, boundaries, err := s.segment(word)
	if err != nil {
		return "", err
	}
	return strings.Join(splitAtBoundaries(w, boundaries), "-"), nil
}

// Hyphenate splits word into syllables.
//
// Example:
//
//	"fereastra" => [ "fe", "rea", "stra" ].
func (s *Syllabifier) Hyphenate(word string) ([]string, error) {
	w, boundaries, err := s.segment(word)
	if err != nil {
		return nil, err
	}
	return splitAtBoundaries(w, boundaries), nil
}

// segment normalizes word and computes its boundaries. It returns the
// normalized word.
func (s *Syllabifier) segment(word string) (string, []int, error) {
	w, err := s.normalize(word)
	if err != nil {
		return "", nil, fmt.Errorf("syllabify: cannot normalize %q: %w", word, err)
	}
	if w == "" {
		return w, nil, nil
	}
	if boundaries, found := s.exceptions[w]; found {
		return w, slices.Clone(boundaries), nil
	}
	letters := []rune(w)
	for i, r := range letters {
		if !s.rules.Contains(r) {
			return "", nil, &InvalidCharacterError{Word: w, Position: i, Char: r}
		}
	}
	return w, scan(s.rules, letters), nil
}

// Helper: split a string at rune offsets given by an ascending integer slice.
func splitAtBoundaries(word string, boundaries []int) []string {
	offsets := runeByteOffsets(word)
	runeCount := len(offsets) - 1
	var pp = make([]string, 0, len(boundaries)+1)
	prev := 0 // holds the last split index
	for _, b := range boundaries {
		if b <= 0 || b >= runeCount {
			continue
		}
		split := offsets[b]
		pp = append(pp, word[prev:split]) // append syllable
		prev = split                      // remember last split index
	}
	pp = append(pp, word[prev:]) // append last syllable
	return pp
}

func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}
