package syllabify

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/npillmayer/syllabify/classmap"
)

// Variant selects one of the two rule configurations of the scanner.
type Variant int

const (
	// Orthographic follows end-of-line hyphenation conventions.
	Orthographic Variant = iota
	// Phonological follows the Maximal Onset Principle.
	Phonological
)

func (v Variant) String() string {
	switch v {
	case Orthographic:
		return "orthographic"
	case Phonological:
		return "phonological"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant converts "orthographic" or "phonological" (case-insensitive)
// to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orthographic", "ortho":
		return Orthographic, nil
	case "phonological", "mop":
		return Phonological, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// RuleSet is the uncompiled configuration record of the scanner: an alphabet
// partition plus the cluster tables. Call Compile to get usable Rules.
type RuleSet struct {
	Name    string
	Variant Variant

	Vowels     string // every rune is a vowel
	Consonants string // every rune is a consonant
	Liquids    string // subset of Consonants
	Stops      string // subset of Consonants

	Onsets          []string // two consonants which may begin a syllable
	Trigraphs       []string // three consonants which may begin a syllable
	OnsetExceptions []string // onsets which are split nevertheless (orthographic only)
	Diphthongs      []string // two vowels forming one nucleus
	Triphthongs     []string // three vowels forming one nucleus
	Hiatus          []string // two vowels belonging to different syllables
}

// clusterKind is a bit set of the tables a cluster is listed in.
// "ie", for example, is both a diphthong and a hiatus pair.
type clusterKind uint8

const (
	onset clusterKind = 1 << iota
	trigraph
	onsetException
	diphthong
	triphthong
	hiatus
)

// Rules is a compiled, immutable RuleSet. It is safe for concurrent use.
type Rules struct {
	name     string
	variant  Variant
	classes  classmap.Map
	clusters *trie.Trie // cluster => clusterKind
	size     int        // number of distinct clusters
}

// Compile validates the rule set and freezes it into Rules.
func (rs RuleSet) Compile() (*Rules, error) {
	if rs.Variant != Orthographic && rs.Variant != Phonological {
		return nil, ruleSetError(rs.Name, "unknown variant %d", int(rs.Variant))
	}
	if rs.Vowels == "" || rs.Consonants == "" {
		return nil, ruleSetError(rs.Name, "alphabet needs vowels and consonants")
	}
	rules := &Rules{
		name:     rs.Name,
		variant:  rs.Variant,
		clusters: trie.New(),
	}
	for _, set := range []struct {
		runes string
		class classmap.Class
	}{
		{rs.Vowels, classmap.Vowel},
		{rs.Consonants, classmap.Consonant},
	} {
		if r, ok := rules.classes.AddAll(set.runes, set.class); !ok {
			return nil, ruleSetError(rs.Name, "rune %q outside of BMP", r)
		}
	}
	for _, r := range rs.Vowels {
		if rules.classes.Lookup(r).Is(classmap.Consonant) {
			return nil, ruleSetError(rs.Name, "%q is both vowel and consonant", r)
		}
	}
	for _, set := range []struct {
		runes string
		class classmap.Class
		what  string
	}{
		{rs.Liquids, classmap.Liquid, "liquid"},
		{rs.Stops, classmap.Stop, "stop"},
	} {
		for _, r := range set.runes {
			if !rules.classes.Lookup(r).Is(classmap.Consonant) {
				return nil, ruleSetError(rs.Name, "%s %q is not a consonant", set.what, r)
			}
			rules.classes.Add(r, set.class)
		}
	}
	if rs.Variant != Orthographic && len(rs.OnsetExceptions) > 0 {
		return nil, ruleSetError(rs.Name, "onset exceptions apply to orthographic rules only")
	}
	kinds := make(map[string]clusterKind)
	for _, table := range []struct {
		entries []string
		kind    clusterKind
		length  int
		class   classmap.Class
		member  string
	}{
		{rs.Onsets, onset, 2, classmap.Consonant, "consonant"},
		{rs.Trigraphs, trigraph, 3, classmap.Consonant, "consonant"},
		{rs.OnsetExceptions, onsetException, 2, classmap.Consonant, "consonant"},
		{rs.Diphthongs, diphthong, 2, classmap.Vowel, "vowel"},
		{rs.Triphthongs, triphthong, 3, classmap.Vowel, "vowel"},
		{rs.Hiatus, hiatus, 2, classmap.Vowel, "vowel"},
	} {
		for _, cluster := range table.entries {
			if utf8.RuneCountInString(cluster) != table.length {
				return nil, ruleSetError(rs.Name, "%s cluster %q must have %d letters",
					table.kind, cluster, table.length)
			}
			for _, r := range cluster {
				if !rules.classes.Lookup(r).Is(table.class) {
					return nil, ruleSetError(rs.Name, "%s cluster %q: %q is not a %s",
						table.kind, cluster, r, table.member)
				}
			}
			kinds[cluster] |= table.kind
		}
	}
	for cluster, kind := range kinds {
		if kind&onsetException != 0 && kind&onset == 0 {
			return nil, ruleSetError(rs.Name, "onset exception %q is not a listed onset", cluster)
		}
		rules.clusters.Add(cluster, kind)
	}
	rules.size = len(kinds)
	tracer().Infof("compiled %s rules %q: %d clusters, %d class pages",
		rules.variant, rules.name, rules.size, rules.classes.NumPages())
	return rules, nil
}

func mustCompile(rs RuleSet) *Rules {
	rules, err := rs.Compile()
	assert(err == nil, fmt.Sprintf("built-in rule set does not compile: %v", err))
	return rules
}

// Name returns the identifier of the rule set.
func (rules *Rules) Name() string {
	return rules.name
}

// Variant returns the variant the rules have been compiled for.
func (rules *Rules) Variant() Variant {
	return rules.variant
}

// Class returns the character class of r. It is 0 for runes outside of the
// alphabet.
func (rules *Rules) Class(r rune) classmap.Class {
	return rules.classes.Lookup(r)
}

// IsVowel reports whether r is a vowel of the alphabet.
func (rules *Rules) IsVowel(r rune) bool {
	return rules.classes.Lookup(r).Is(classmap.Vowel)
}

// IsConsonant reports whether r is a consonant of the alphabet.
func (rules *Rules) IsConsonant(r rune) bool {
	return rules.classes.Lookup(r).Is(classmap.Consonant)
}

// Contains reports whether r is part of the alphabet.
func (rules *Rules) Contains(r rune) bool {
	return rules.classes.Lookup(r)&(classmap.Vowel|classmap.Consonant) != 0
}

// Clusters returns the clusters listed in the rule tables, sorted.
func (rules *Rules) Clusters() []string {
	keys := rules.clusters.Keys()
	sort.Strings(keys)
	return keys
}

func (rules *Rules) String() string {
	return fmt.Sprintf("Rules(%s,%s,clusters=%d)", rules.name, rules.variant, rules.size)
}

// is reports whether cluster is listed in a table of the given kind.
func (rules *Rules) is(kind clusterKind, cluster []rune) bool {
	node, ok := rules.clusters.Find(string(cluster))
	if !ok {
		return false
	}
	k, _ := node.Meta().(clusterKind)
	return k&kind != 0
}

func (k clusterKind) String() string {
	switch k {
	case onset:
		return "onset"
	case trigraph:
		return "trigraph"
	case onsetException:
		return "onset exception"
	case diphthong:
		return "diphthong"
	case triphthong:
		return "triphthong"
	case hiatus:
		return "hiatus"
	}
	return fmt.Sprintf("clusterKind(%d)", uint8(k))
}
