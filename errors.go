package syllabify

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is matched (with errors.Is) by every InvalidCharacterError.
var ErrInvalidCharacter = errors.New("character outside of alphabet")

// ErrInvalidRuleSet is wrapped by all errors reporting a malformed rule set.
var ErrInvalidRuleSet = errors.New("invalid rule set")

// InvalidCharacterError reports a character of an input word which is neither
// a vowel nor a consonant of the active alphabet.
type InvalidCharacterError struct {
	Word     string
	Position int // rune offset into Word
	Char     rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("syllabify: %q at position %d of %q: %v", e.Char, e.Position, e.Word,
		ErrInvalidCharacter)
}

// Is makes errors.Is(err, ErrInvalidCharacter) hold.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

func ruleSetError(name string, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidRuleSet, name, fmt.Sprintf(format, args...))
}
