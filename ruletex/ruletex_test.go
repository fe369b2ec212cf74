package ruletex

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/syllabify"
)

func mustLoadFixture(t *testing.T, file string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "testdata", file))
	if err != nil {
		t.Fatalf("cannot read fixture %s: %v", file, err)
	}
	return data
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(`\message{test rules}
\vowels{aei}   % comment
\onsets{
st tr
sp}
\hyphenation{
ta-ble
}
\hiatus{ae}`))
	var got []string
	for {
		name, entries, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, name+":"+strings.Join(entries, ","))
	}
	want := []string{"vowels:aei", "onsets:st,tr,sp", "hiatus:ae"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("directives mismatch: got %v, want %v", got, want)
	}
	if r.Identifier() != "test rules" {
		t.Fatalf("identifier mismatch: %q", r.Identifier())
	}
}

func TestLoadRuleSetMatchesBuiltin(t *testing.T) {
	tests := []struct {
		file    string
		builtin *syllabify.Rules
		words   []string
	}{
		{"ro-orthographic-diacritics.tex", syllabify.OrthographicDiacriticRules(),
			[]string{"fereastră", "știință", "înțelepciune", "neștiut", "lingvistică", "ouă"}},
		{"ro-phonological.tex", syllabify.PhonologicalRules(),
			[]string{"lingvistica", "transport", "obscur", "optsprezece", "pleoape", "astm"}},
	}
	for _, tt := range tests {
		rules, err := LoadRuleSet("", bytes.NewReader(mustLoadFixture(t, tt.file)))
		if err != nil {
			t.Fatalf("%s: %v", tt.file, err)
		}
		if rules.Name() != tt.builtin.Name() || rules.Variant() != tt.builtin.Variant() {
			t.Errorf("%s: got %s, want %s", tt.file, rules, tt.builtin)
		}
		if !reflect.DeepEqual(rules.Clusters(), tt.builtin.Clusters()) {
			t.Errorf("%s: cluster tables differ from built-in rules", tt.file)
		}
		loaded, builtin := syllabify.New(rules), syllabify.New(tt.builtin)
		for _, word := range tt.words {
			h1, err1 := loaded.HyphenationString(word)
			h2, err2 := builtin.HyphenationString(word)
			if err1 != nil || err2 != nil || h1 != h2 {
				t.Errorf("%s: %q: loaded %q (%v), built-in %q (%v)", tt.file, word, h1, err1, h2, err2)
			}
		}
	}
}

func TestLoadSyllabifier(t *testing.T) {
	data := mustLoadFixture(t, "ro-orthographic-diacritics.tex")
	s, err := LoadSyllabifier("ro", bytes.NewReader(data), syllabify.WithComposedDiacritics())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		word string
		want string
	}{
		{word: "orice", want: "or-ice"}, // comes from exceptions
		{word: "varice", want: "va-ri-ce"},
		{word: "ştiinţă", want: "știin-ță"},
		{word: "pădure", want: "pă-du-re"},
	}
	for _, tt := range tests {
		if got, err := s.HyphenationString(tt.word); err != nil || got != tt.want {
			t.Fatalf("syllabification mismatch for %q: got %q (%v), want %q", tt.word, got, err, tt.want)
		}
	}
	if s.Rules().Name() != "ro" {
		t.Errorf("expected explicit name to win over \\message, got %q", s.Rules().Name())
	}
}

func TestLoadSyllabifierNormalizesExceptions(t *testing.T) {
	data := mustLoadFixture(t, "ro-orthographic-diacritics.tex")
	data = append(data, "\n\\hyphenation{ş-tiinţă Ori-ce}\n"...)
	s, err := LoadSyllabifier("ro", bytes.NewReader(data),
		syllabify.WithFoldCase(), syllabify.WithComposedDiacritics())
	if err != nil {
		t.Fatal(err)
	}
	for word, want := range map[string]string{
		"ştiinţă": "ș-tiință",
		"știință": "ș-tiință",
		"orice":   "ori-ce",
	} {
		if got, err := s.HyphenationString(word); err != nil || got != want {
			t.Errorf("%q: got %q (%v), want %q", word, got, err, want)
		}
	}
}

func TestLoadRuleSetErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing variant", "\\vowels{ae}\n\\consonants{st}\n"},
		{"unknown variant", "\\variant{ipa}\n"},
		{"unknown directive", "\\variant{mop}\n\\glides{iu}\n"},
		{"stray text", "\\variant{mop}\nst tr\n"},
		{"unclosed block", "\\variant{mop}\n\\onsets{\nst tr\n"},
		{"directive after brace", "\\variant{orthographic}\n\\liquids{lr} \\stops{bcdfghptv}\n"},
		{"directive after block", "\\variant{mop}\n\\onsets{\nst tr\n} \\hiatus{ae}\n"},
		{"directive after exceptions", "\\variant{mop}\n\\hyphenation{\nor-ice\n} \\stops{p}\n"},
		{"invalid tables", "\\variant{mop}\n\\vowels{ae}\n\\consonants{st}\n\\onsets{sa}\n"},
	}
	for _, tt := range tests {
		_, err := LoadRuleSet(tt.name, strings.NewReader(tt.src))
		if !errors.Is(err, syllabify.ErrInvalidRuleSet) {
			t.Errorf("%s: expected ErrInvalidRuleSet, got %v", tt.name, err)
		}
	}
}
