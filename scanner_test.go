package syllabify

import (
	"reflect"
	"testing"

	"github.com/npillmayer/syllabify/classmap"
)

func TestRunClassification(t *testing.T) {
	rules := OrthographicRules()
	tests := []struct {
		word     string
		at       int
		class    classmap.Class
		shape    shape
		length   int
		terminal bool
	}{
		{"casa", 1, classmap.Vowel, shapeVC, 1, false},
		{"leu", 1, classmap.Vowel, shapeVV, 2, true},
		{"pleoape", 2, classmap.Vowel, shapeVVV, 3, false},
		{"aaaaaa", 0, classmap.Vowel, shapeVVVV, 4, false},
		{"casa", 2, classmap.Consonant, shapeCV, 1, false},
		{"astm", 1, classmap.Consonant, shapeCCC, 3, true},
		{"optsprezece", 1, classmap.Consonant, shapeCCCCC, 5, false},
		{"arctst", 1, classmap.Consonant, shapeCCCCC, 5, true},
	}
	for _, tt := range tests {
		limit := maxConsonantRun
		if tt.class == classmap.Vowel {
			limit = maxVowelRun
		}
		r := runAt(rules, []rune(tt.word), tt.at, tt.class, limit)
		if r.shape != tt.shape || r.length != tt.length || r.terminal != tt.terminal {
			t.Errorf("%q@%d: got %s/%d/%v, want %s/%d/%v", tt.word, tt.at, r.shape, r.length,
				r.terminal, tt.shape, tt.length, tt.terminal)
		}
	}
}

func TestClusterResolvers(t *testing.T) {
	ortho, phon := OrthographicRules(), PhonologicalRules()
	tests := []struct {
		name  string
		rules *Rules
		fn    func(*Rules, []rune) int
		w     string
		want  int
	}{
		{"CC stop+liquid", ortho, (*Rules).resolveCC, "pra", 0},
		{"CC other", ortho, (*Rules).resolveCC, "sta", 1},
		{"CC onset", phon, (*Rules).resolveCC, "sta", 0},
		{"CC no onset", phon, (*Rules).resolveCC, "nta", 1},
		{"CCC trigraph", ortho, (*Rules).resolveCCC, "stra", 0},
		{"CCC onset", ortho, (*Rules).resolveCCC, "ntra", 1},
		{"CCC onset exception", ortho, (*Rules).resolveCCC, "nsca", 2},
		{"CCC exception ignored", phon, (*Rules).resolveCCC, "nsca", 1},
		{"CCC default", phon, (*Rules).resolveCCC, "ngva", 2},
		{"CCCC trigraph", phon, (*Rules).resolveCCCC, "nstra", 1},
		{"CCCC onset", phon, (*Rules).resolveCCCC, "mptra", 2},
		{"CCCC default", phon, (*Rules).resolveCCCC, "rctna", 3},
		{"VVV triphthong", phon, (*Rules).resolveVVV, "eoa", noBoundary},
		{"VVV diphthong", phon, (*Rules).resolveVVV, "oua", 1},
		{"VVV ambiguous", phon, (*Rules).resolveVVV, "aei", noBoundary},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.rules, []rune(tt.w)); got != tt.want {
			t.Errorf("%s: %q => %d, want %d", tt.name, tt.w, got, tt.want)
		}
	}
}

func TestScanBoundaries(t *testing.T) {
	tests := []struct {
		word string
		want []int
	}{
		{"casa", []int{2}},
		{"aer", []int{1}},
		{"stm", nil},
		{"optsprezece", []int{3, 7, 9}},
	}
	for _, tt := range tests {
		got := scan(OrthographicRules(), []rune(tt.word))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestPattern(t *testing.T) {
	if p := pattern([]rune("fereastra"), []int{2, 5}); p != "fe-rea-stra" {
		t.Errorf("unexpected pattern %q", p)
	}
	if p := pattern([]rune("ea"), nil); p != "ea" {
		t.Errorf("unexpected pattern %q", p)
	}
}
