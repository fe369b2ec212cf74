package syllabify

import (
	"strings"

	"github.com/npillmayer/syllabify/classmap"
)

// shape classifies the run of letters starting at the cursor.
type shape int8

const (
	shapeVC    shape = iota // single vowel, consonant follows
	shapeVV                 // two vowels
	shapeVVV                // three vowels
	shapeVVVV               // four or more vowels
	shapeCV                 // single consonant, vowel follows
	shapeCC                 // two consonants
	shapeCCC                // three consonants
	shapeCCCC               // four consonants
	shapeCCCCC              // five or more consonants
)

const (
	maxVowelRun     = 4
	maxConsonantRun = 5
	noBoundary      = -1
)

var shapeNames = [...]string{"VC", "VV", "VVV", "VVVV", "CV", "CC", "CCC", "CCCC", "CCCCC"}

func (s shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "?"
	}
	return shapeNames[s]
}

// run is a classified run of vowels or consonants at the cursor.
type run struct {
	shape    shape
	length   int  // number of letters classified, capped at maxVowelRun/maxConsonantRun
	terminal bool // the run reaches the end of the word
}

// runAt measures the run of letters of class c starting at word[i].
func runAt(rules *Rules, word []rune, i int, c classmap.Class, limit int) run {
	n := 1
	for i+n < len(word) && n < limit && rules.Class(word[i+n]).Is(c) {
		n++
	}
	r := run{length: n, terminal: i+n == len(word)}
	if c == classmap.Vowel {
		r.shape = shapeVC + shape(n-1)
	} else {
		r.shape = shapeCV + shape(n-1)
	}
	return r
}

// scan walks the word left to right and collects the rune offsets in front of
// which a syllable boundary is to be inserted. word must consist of letters of
// the alphabet of rules. Offsets are strictly increasing and lie in
// [1, len(word)-1].
//
// Every step advances the cursor by the length of the classified run. A
// consonant is only resolved after a nucleus has been found; consonants before
// the first vowel are onset and are skipped.
func scan(rules *Rules, word []rune) []int {
	var boundaries []int
	nucleus := false
	for i := 0; i < len(word)-1; {
		var r run
		if rules.IsVowel(word[i]) {
			nucleus = true
			r = runAt(rules, word, i, classmap.Vowel, maxVowelRun)
		} else if !nucleus {
			i++ // onset before the first nucleus
			continue
		} else {
			r = runAt(rules, word, i, classmap.Consonant, maxConsonantRun)
		}
		at := rules.resolve(r, word[i:])
		if at != noBoundary {
			assert(at > 0 || i > 0, "boundary at start of word")
			boundaries = append(boundaries, i+at)
		}
		i += r.length
	}
	tracer().Debugf("syllabify %q => %s", string(word), pattern(word, boundaries))
	return boundaries
}

// resolve decides where to put a boundary for a run at the start of w.
// It returns the boundary offset relative to w, or noBoundary.
func (rules *Rules) resolve(r run, w []rune) int {
	switch r.shape {
	case shapeVC:
		return noBoundary
	case shapeVV:
		if r.terminal || rules.is(diphthong, w[:2]) {
			return noBoundary
		}
		if rules.is(hiatus, w[:2]) {
			return 1 // V-V
		}
		return noBoundary // ambiguous pair is treated as a diphthong
	case shapeVVV:
		return rules.resolveVVV(w)
	case shapeVVVV:
		return 2 // VV-VV
	case shapeCV:
		return 0 // -CV
	}
	if r.terminal { // trailing consonants stay with the last syllable
		return noBoundary
	}
	switch r.shape {
	case shapeCC:
		return rules.resolveCC(w)
	case shapeCCC:
		return rules.resolveCCC(w)
	case shapeCCCC:
		return rules.resolveCCCC(w)
	}
	return 2 // CC-CCC...
}

func (rules *Rules) resolveVVV(w []rune) int {
	if rules.is(triphthong, w[:3]) {
		return noBoundary
	}
	if rules.is(diphthong, w[1:3]) {
		return 1 // V-VV
	}
	return noBoundary // ambiguous, treated as a triphthong
}

func (rules *Rules) resolveCC(w []rune) int {
	if rules.variant == Orthographic {
		if rules.Class(w[0]).Is(classmap.Stop) && rules.Class(w[1]).Is(classmap.Liquid) {
			return 0 // -CCV
		}
		return 1 // C-CV
	}
	if rules.is(onset, w[:2]) {
		return 0
	}
	return 1
}

func (rules *Rules) resolveCCC(w []rune) int {
	if rules.is(trigraph, w[:3]) {
		return 0 // -CCC
	}
	if rules.is(onset, w[1:3]) {
		if rules.variant == Orthographic && rules.is(onsetException, w[1:3]) {
			return 2 // CC-C
		}
		return 1 // C-CC
	}
	return 2 // CC-C
}

func (rules *Rules) resolveCCCC(w []rune) int {
	if rules.is(trigraph, w[1:4]) {
		return 1 // C-CCC
	}
	if rules.is(onset, w[2:4]) {
		return 2 // CC-CC
	}
	return 3 // CCC-C
}

// pattern renders word with '-' at boundaries for tracing, e.g. "fe-rea-stra".
func pattern(word []rune, boundaries []int) string {
	var sb strings.Builder
	prev := 0
	for _, b := range boundaries {
		sb.WriteString(string(word[prev:b]))
		sb.WriteByte('-')
		prev = b
	}
	sb.WriteString(string(word[prev:]))
	return sb.String()
}
