/*
Package texexceptions reads explicit syllabifications from TeX \hyphenation{...}
blocks, e.g.

	\hyphenation{
	or-ice
	cop-ci ci-ti
	}

Every entry is a word with its boundaries marked by '-'. Entries may be
separated by white space or line breaks; '%' starts a comment.
*/
package texexceptions

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/syllabify"
)

// Reader streams syllabification exceptions from TeX \hyphenation{...} blocks.
type Reader struct {
	scanner *bufio.Scanner
	inBlock bool
	pending []string // entries of the current line not yet returned
}

// LoadExceptions parses TeX exception data from reader and adds all
// \hyphenation{...} entries to syllabifier s.
func LoadExceptions(s *syllabify.Syllabifier, reader io.Reader) error {
	return s.LoadExceptionReader(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (word, boundaries), with boundaries
// given as rune offsets into word. It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []int, error) {
	for len(r.pending) == 0 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", nil, err
			}
			return "", nil, io.EOF
		}
		r.readLine(r.scanner.Text())
	}
	entry := r.pending[0]
	r.pending = r.pending[1:]
	word, boundaries := decodeEntry(entry)
	return word, boundaries, nil
}

func (r *Reader) readLine(line string) {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if !r.inBlock {
		rest, ok := strings.CutPrefix(line, "\\hyphenation{")
		if !ok {
			return
		}
		r.inBlock = true
		line = rest
	}
	if i := strings.IndexByte(line, '}'); i >= 0 {
		line = line[:i]
		r.inBlock = false
	}
	r.pending = append(r.pending, strings.Fields(line)...)
}

// decodeEntry turns "cop-ci" into ("copci", [3]).
func decodeEntry(entry string) (string, []int) {
	var word strings.Builder
	boundaries := make([]int, 0, 4)
	n := 0
	for _, ch := range entry {
		if ch == '-' {
			boundaries = append(boundaries, n)
			continue
		}
		word.WriteRune(ch)
		n++
	}
	return word.String(), boundaries
}
