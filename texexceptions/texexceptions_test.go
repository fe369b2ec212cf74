package texexceptions

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/syllabify"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`% not part of a block: ig-nored
\hyphenation{
or-ice
lin-gvis-ti-că   % trailing comment
}`)
	r := NewReader(src)
	word, boundaries, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "orice" {
		t.Fatalf("word mismatch: got %q", word)
	}
	if !reflect.DeepEqual(boundaries, []int{2}) {
		t.Fatalf("boundaries mismatch: %v", boundaries)
	}
	word, boundaries, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "lingvistică" {
		t.Fatalf("word mismatch: got %q", word)
	}
	if !reflect.DeepEqual(boundaries, []int{3, 7, 9}) {
		t.Fatalf("boundaries mismatch: %v", boundaries)
	}
	_, _, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderSingleLineBlock(t *testing.T) {
	r := NewReader(strings.NewReader(`\hyphenation{cop-ci ci-ti}`))
	var words []string
	for {
		word, _, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		words = append(words, word)
	}
	if !reflect.DeepEqual(words, []string{"copci", "citi"}) {
		t.Fatalf("unexpected words %v", words)
	}
}

func TestLoadExceptions(t *testing.T) {
	s := syllabify.New(syllabify.OrthographicRules())
	err := LoadExceptions(s, strings.NewReader(`\hyphenation{
or-ice
aer
}`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		word string
		want string
	}{
		{word: "orice", want: "or-ice"}, // from exceptions
		{word: "aer", want: "aer"},      // from exceptions
		{word: "varice", want: "va-ri-ce"},
	}
	for _, tt := range tests {
		if got, err := s.HyphenationString(tt.word); err != nil || got != tt.want {
			t.Fatalf("syllabification mismatch for %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}
