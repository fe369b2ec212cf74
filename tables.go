package syllabify

import "sync"

// Alphabets.
const (
	plainVowels         = "aeiouy"
	plainConsonants     = "bcdfghjklmnprstvxz"
	diacriticVowels     = "aeiouăîâ"
	diacriticConsonants = "bcdfghjklmnprsștțvxz"
	liquids             = "lr"
	stops               = "bcdfghptv"
)

// Cluster tables for the plain alphabet. The orthographic onset list adds
// "gv" and "cv" to the phonological one.
var (
	plainOrthographicOnsets = []string{"ch", "gh", "gv", "cv", "sp", "sc", "st", "sf", "zb", "zg",
		"zd", "zv", "jg", "jd", "sm", "sn", "sl", "zm", "zl", "jn", "tr", "cl", "cr", "pl", "pr",
		"dr", "gl", "gr", "br", "bl", "fl", "fr", "vl", "vr", "hr", "hl", "ml", "mr"}
	plainPhonologicalOnsets = []string{"ch", "gh", "sp", "sc", "st", "sf", "zb", "zg", "zd",
		"zv", "jg", "jd", "sm", "sn", "sl", "zm", "zl", "jn", "tr", "cl", "cr", "pl", "pr", "dr",
		"gl", "gr", "br", "bl", "fl", "fr", "vl", "vr", "hr", "hl", "ml", "mr"}
	plainTrigraphs = []string{"spl", "spr", "str", "jgh", "zdr", "scl", "scr", "zgl", "zgr",
		"sfr"}
	plainOnsetExceptions = []string{"sc", "sf", "sl", "sp"}
	plainDiphthongs      = []string{"ea", "oa", "ia", "ua", "iu", "uu", "ie", "ii"}
	triphthongs          = []string{"eoa", "eai", "eau", "iau"}
	plainHiatus          = []string{"aa", "au", "ae", "ie", "ai", "ee", "oe", "oo", "yu"}
)

// Cluster tables for the alphabet with diacritics (comma-below ș and ț).
var (
	diacriticOnsets = []string{"ch", "gh", "sp", "sc", "st", "sf", "zb", "zg", "zd", "zv",
		"șk", "șp", "șt", "șf", "șv", "jg", "jd", "sm", "sn", "sl", "șm", "șn", "șl", "zm",
		"zl", "jn", "tr", "cl", "cr", "pl", "pr", "dr", "gl", "gr", "br", "bl", "fl", "fr",
		"vl", "vr", "hr", "hl", "ml", "mr"}
	diacriticTrigraphs = []string{"spl", "spr", "șpl", "șpr", "str", "ștr", "jgh", "zdr",
		"scl", "scr", "zgl", "zgr", "sfr"}
	diacriticOnsetExceptions = []string{"sc", "sf", "sl", "sp", "tr"}
	diacriticDiphthongs      = []string{"ea", "oa", "ia", "ua", "uă", "iu", "uu", "ie"}
	diacriticHiatus          = []string{"aa", "au", "ae", "ie", "ai", "ee", "oe"}
)

var (
	orthographicRules = sync.OnceValue(func() *Rules {
		return mustCompile(RuleSet{
			Name:            "ro-orthographic",
			Variant:         Orthographic,
			Vowels:          plainVowels,
			Consonants:      plainConsonants,
			Liquids:         liquids,
			Stops:           stops,
			Onsets:          plainOrthographicOnsets,
			Trigraphs:       plainTrigraphs,
			OnsetExceptions: plainOnsetExceptions,
			Diphthongs:      plainDiphthongs,
			Triphthongs:     triphthongs,
			Hiatus:          plainHiatus,
		})
	})
	phonologicalRules = sync.OnceValue(func() *Rules {
		return mustCompile(RuleSet{
			Name:        "ro-phonological",
			Variant:     Phonological,
			Vowels:      plainVowels,
			Consonants:  plainConsonants,
			Liquids:     liquids,
			Stops:       stops,
			Onsets:      plainPhonologicalOnsets,
			Trigraphs:   plainTrigraphs,
			Diphthongs:  plainDiphthongs,
			Triphthongs: triphthongs,
			Hiatus:      plainHiatus,
		})
	})
	orthographicDiacriticRules = sync.OnceValue(func() *Rules {
		return mustCompile(RuleSet{
			Name:            "ro-orthographic-diacritics",
			Variant:         Orthographic,
			Vowels:          diacriticVowels,
			Consonants:      diacriticConsonants,
			Liquids:         liquids,
			Stops:           stops,
			Onsets:          diacriticOnsets,
			Trigraphs:       diacriticTrigraphs,
			OnsetExceptions: diacriticOnsetExceptions,
			Diphthongs:      diacriticDiphthongs,
			Triphthongs:     triphthongs,
			Hiatus:          diacriticHiatus,
		})
	})
	phonologicalDiacriticRules = sync.OnceValue(func() *Rules {
		return mustCompile(RuleSet{
			Name:        "ro-phonological-diacritics",
			Variant:     Phonological,
			Vowels:      diacriticVowels,
			Consonants:  diacriticConsonants,
			Liquids:     liquids,
			Stops:       stops,
			Onsets:      diacriticOnsets,
			Trigraphs:   diacriticTrigraphs,
			Diphthongs:  diacriticDiphthongs,
			Triphthongs: triphthongs,
			Hiatus:      diacriticHiatus,
		})
	})
)

// OrthographicRules returns the built-in orthographic rules for the plain
// alphabet (no diacritics).
func OrthographicRules() *Rules { return orthographicRules() }

// PhonologicalRules returns the built-in MOP rules for the plain alphabet.
func PhonologicalRules() *Rules { return phonologicalRules() }

// OrthographicDiacriticRules returns the orthographic rules for the alphabet
// including ă, î, â, ș and ț.
func OrthographicDiacriticRules() *Rules { return orthographicDiacriticRules() }

// PhonologicalDiacriticRules returns the MOP rules for the alphabet including
// ă, î, â, ș and ț.
func PhonologicalDiacriticRules() *Rules { return phonologicalDiacriticRules() }

// RulesFor returns the built-in plain-alphabet rules for variant v.
// Unknown variants fall back to orthographic rules.
func RulesFor(v Variant) *Rules {
	if v == Phonological {
		return phonologicalRules()
	}
	return orthographicRules()
}
