/*
Package syllabify is a quick, rule-based implementation of syllabification for
Romanian words.

The algorithm scans a word left to right, keeping a cursor and a flag telling
whether a vowel nucleus has been seen. Vowel and consonant runs are classified
by length (CV, CC, CCC, CCCC, CCCCC+; VV, VVV, VVVV) and resolved with static
cluster tables: valid onset digraphs and trigraphs, diphthongs, triphthongs and
hiatus pairs. There is no learning involved and no external data.

Two rule configurations are built in:

  - Orthographic follows the end-of-line hyphenation rules of DOOM3, applied
    to the whole word. These rules sometimes violate the Maximal Onset Principle.
  - Phonological follows the Maximal Onset Principle and Ioana Chitoran's
    analysis of Romanian phonology.

Both exist for the plain alphabet (no diacritics) and for an alphabet including
ă, î, â, ș and ț.

Known weaknesses are kept on purpose: ambiguous vowel sequences are treated
as one nucleus, semivowel "i" is not told apart from vocalic "i" (copci vs.
citi, orice vs. varice) and stress is not modelled. For example, "lingvistica"
comes out as "lin-gvis-ti-ca" in orthographic mode.

Further Reading

	Liviu P. Dinu, Vlad Niculae, Octavia-Maria Sulea: Romanian Syllabication
	Using Machine Learning. TSD 2013: 450-456
	Ioana Chitoran: The Phonology of Romanian. Mouton de Gruyter 2002

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package syllabify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'syllabify'
func tracer() tracing.Trace {
	return tracing.Select("syllabify")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
