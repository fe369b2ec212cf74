/*
Package ruletex loads syllabification rule tables from TeX-flavoured files.

A rule file sets up the alphabet and the cluster tables of one variant:

	% Romanian, orthographic, with diacritics
	\message{ro-orthographic-diacritics}
	\variant{orthographic}
	\vowels{aeiouăîâ}
	\consonants{bcdfghjklmnprsștțvxz}
	\liquids{lr}
	\stops{bcdfghptv}
	\onsets{
	ch gh sp sc st
	...
	}
	\trigraphs{spl spr str}
	\exceptions{sc sf sl sp tr}
	\diphthongs{ea oa ia ua uă iu uu ie}
	\triphthongs{eoa eai eau iau}
	\hiatus{aa au ae ie ai ee oe}

Blocks may span several lines and are closed by a line starting with '}'.
'%' starts a comment. \hyphenation{...} blocks are skipped; use package
texexceptions (or LoadSyllabifier) to read them.
*/
package ruletex

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/syllabify"
	"github.com/npillmayer/syllabify/texexceptions"
)

// tracer writes to trace with key 'syllabify'
func tracer() tracing.Trace {
	return tracing.Select("syllabify")
}

// Reader streams directives from a rule file.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
	entries    []string
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
		entries: make([]string, 0, 64),
	}
}

// Identifier returns the content of the last \message{...} seen.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next directive as (name, entries), e.g.
// ("diphthongs", ["ea", "oa", ...]). It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *Reader) Next() (string, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := stripComment(r.scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "\\") {
			return "", nil, r.errorf("unexpected input %q outside of a block", line)
		}
		name, body, ok := strings.Cut(line[1:], "{")
		if !ok {
			return "", nil, r.errorf("missing '{' after \\%s", line[1:])
		}
		body, closed, err := r.closeBlock(body)
		if err != nil {
			return "", nil, err
		}
		if name == "message" {
			r.identifier = strings.TrimSpace(body)
			continue
		}
		if name == "hyphenation" {
			if !closed {
				if err := r.skipBlock(); err != nil {
					return "", nil, err
				}
			}
			continue
		}
		r.entries = append(r.entries[:0], strings.Fields(body)...)
		for !closed && r.scanner.Scan() {
			r.line++
			if line, closed, err = r.closeBlock(stripComment(r.scanner.Text())); err != nil {
				return "", nil, err
			}
			r.entries = append(r.entries, strings.Fields(line)...)
		}
		if !closed {
			return "", nil, r.errorf("unexpected end of file in \\%s{...}", name)
		}
		return name, r.entries, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}

func (r *Reader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", syllabify.ErrInvalidRuleSet, r.line, fmt.Sprintf(format, args...))
}

// LoadRuleSet parses a rule file and compiles it.
//
// Every directive of the file must be known; \variant, \vowels and
// \consonants are mandatory.
func LoadRuleSet(name string, reader io.Reader) (*syllabify.Rules, error) {
	r := NewReader(reader)
	rs := syllabify.RuleSet{Name: name}
	hasVariant := false
	for {
		directive, entries, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch directive {
		case "variant":
			if rs.Variant, err = syllabify.ParseVariant(strings.Join(entries, " ")); err != nil {
				return nil, r.errorf("%v", err)
			}
			hasVariant = true
		case "vowels":
			rs.Vowels = strings.Join(entries, "")
		case "consonants":
			rs.Consonants = strings.Join(entries, "")
		case "liquids":
			rs.Liquids = strings.Join(entries, "")
		case "stops":
			rs.Stops = strings.Join(entries, "")
		case "onsets":
			rs.Onsets = clone(entries)
		case "trigraphs":
			rs.Trigraphs = clone(entries)
		case "exceptions":
			rs.OnsetExceptions = clone(entries)
		case "diphthongs":
			rs.Diphthongs = clone(entries)
		case "triphthongs":
			rs.Triphthongs = clone(entries)
		case "hiatus":
			rs.Hiatus = clone(entries)
		default:
			return nil, r.errorf("unknown directive \\%s", directive)
		}
	}
	if !hasVariant {
		return nil, r.errorf("missing \\variant{...}")
	}
	if rs.Name == "" {
		rs.Name = r.Identifier()
	}
	tracer().Infof("loaded rule file %q (%s)", rs.Name, r.Identifier())
	return rs.Compile()
}

// LoadSyllabifier loads rule tables and \hyphenation exceptions from one
// source and returns a ready-to-use syllabifier.
//
// Example usage:
//
//	f, _ := os.Open("path/to/ro-orthographic.tex")
//	defer f.Close()
//
//	s, err := ruletex.LoadSyllabifier("ro", f, syllabify.WithComposedDiacritics())
//
// This will load the whole file temporarily into memory.
func LoadSyllabifier(name string, reader io.Reader, opts ...syllabify.Option) (*syllabify.Syllabifier, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	rules, err := LoadRuleSet(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	s := syllabify.New(rules, opts...)
	err = texexceptions.LoadExceptions(s, bytes.NewReader(data))
	return s, err
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// closeBlock cuts line at a closing '}'. Every directive starts on a line of
// its own, so nothing but a comment may follow the '}'.
func (r *Reader) closeBlock(line string) (string, bool, error) {
	i := strings.IndexByte(line, '}')
	if i < 0 {
		return line, false, nil
	}
	if rest := strings.TrimSpace(line[i+1:]); rest != "" {
		return "", true, r.errorf("unexpected input %q after '}'", rest)
	}
	return line[:i], true, nil
}

func (r *Reader) skipBlock() error {
	for r.scanner.Scan() {
		r.line++
		if _, closed, err := r.closeBlock(stripComment(r.scanner.Text())); closed {
			return err
		}
	}
	return nil
}

func clone(entries []string) []string {
	return append([]string(nil), entries...)
}
