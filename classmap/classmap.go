/*
Package classmap maps BMP code points to character classes for syllabification.

A Map is a two-level page table:
  - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
  - Pages is a flat array of NumPages*256 class entries.

Lookup is O(1) with two array reads and a couple of ops. Romanian needs two
pages at most (ASCII and Latin Extended-A/B), so a loaded alphabet weighs in
at about 1 KB.
*/
package classmap

// Class is a bit set of character classes.
type Class uint8

// Character classes. A rune may carry more than one class, e.g. 'l' is
// Consonant|Liquid and 'p' is Consonant|Stop.
const (
	Vowel Class = 1 << iota
	Consonant
	Liquid
	Stop
)

// Is reports whether all bits of x are set in c.
func (c Class) Is(x Class) bool {
	return x != 0 && c&x == x
}

func (c Class) String() string {
	if c == 0 {
		return "none"
	}
	s := ""
	for _, n := range []struct {
		bit  Class
		name string
	}{{Vowel, "V"}, {Consonant, "C"}, {Liquid, "L"}, {Stop, "S"}} {
		if c&n.bit != 0 {
			s += n.name
		}
	}
	return s
}

// Map maps BMP runes to classes. The zero value is an empty map.
type Map struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []Class     // flat: NumPages*256
}

// Lookup returns the class of r. Returns 0 if r is absent or outside the BMP.
func (m *Map) Lookup(r rune) Class {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := m.Top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *Map) NumPages() int { return len(m.Pages) >> 8 }

func (m *Map) ensurePage(hi rune) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]Class, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Add ORs class c into the entry for r.
// It returns false if r cannot be represented (outside the BMP).
func (m *Map) Add(r rune, c Class) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	if c == 0 {
		return true
	}
	pi := m.ensurePage(r >> 8)
	base := int(pi-1) << 8
	m.Pages[base+int(r&0xFF)] |= c
	return true
}

// AddAll adds class c for every rune of s and returns the first rune which
// could not be stored, if any.
func (m *Map) AddAll(s string, c Class) (rune, bool) {
	for _, r := range s {
		if !m.Add(r, c) {
			return r, false
		}
	}
	return 0, true
}
