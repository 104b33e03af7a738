package ucg

// indicConjunctBreakConsonantRanges holds [lo, hi] pairs for
// Indic_Conjunct_Break=Consonant, sorted ascending and disjoint. Only the
// six scripts whose viramas are Indic_Conjunct_Break=Linker (Devanagari,
// Bengali, Gujarati, Oriya, Telugu, Malayalam) have consonants with this
// property; other Brahmic scripts never form conjuncts under the boundary
// rules and are deliberately absent.
var indicConjunctBreakConsonantRanges = [...]rune{
	0x0915, 0x0939, // Devanagari
	0x0958, 0x095F,
	0x0978, 0x097F,
	0x0995, 0x09A8, // Bengali
	0x09AA, 0x09B0,
	0x09B2, 0x09B2,
	0x09B6, 0x09B9,
	0x09DC, 0x09DD,
	0x09DF, 0x09DF,
	0x09F0, 0x09F1,
	0x0A95, 0x0AA8, // Gujarati
	0x0AAA, 0x0AB0,
	0x0AB2, 0x0AB3,
	0x0AB5, 0x0AB9,
	0x0AF9, 0x0AF9,
	0x0B15, 0x0B28, // Oriya
	0x0B2A, 0x0B30,
	0x0B32, 0x0B33,
	0x0B35, 0x0B39,
	0x0B5C, 0x0B5D,
	0x0B5F, 0x0B5F,
	0x0B71, 0x0B71,
	0x0C15, 0x0C28, // Telugu
	0x0C2A, 0x0C39,
	0x0C58, 0x0C5A,
	0x0D15, 0x0D3A, // Malayalam
}

// IsIndicConjunctBreakConsonant reports whether r is Indic_Conjunct_Break=
// Consonant.
func IsIndicConjunctBreakConsonant(r rune) bool {
	return inRanges(r, indicConjunctBreakConsonantRanges[:])
}

// IsIndicConjunctBreakExtend reports whether r is Indic_Conjunct_Break=
// Extend. The property is derived rather than tabulated: Grapheme_Extend or
// ZWJ, minus the Linker viramas and minus ZWNJ (a ZWNJ asks for the
// non-conjoined rendering, so it must not carry a conjunct forward).
func IsIndicConjunctBreakExtend(r rune) bool {
	if r == zeroWidthNonJoiner || IsIndicConjunctBreakLinker(r) {
		return false
	}
	return r == zeroWidthJoiner || IsGraphemeExtend(r)
}
