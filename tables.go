package ucg

// Small, exact hard-coded property tables: fixed sets cheap enough that a
// sorted range array would be overkill. Values below are taken directly
// from the Unicode Character Database as of Unicode 15.1.0.

// regionalIndicatorLo/Hi bound U+1F1E6..U+1F1FF, the Regional Indicator
// Symbol Letters used in flag sequences.
const (
	regionalIndicatorLo = 0x1F1E6
	regionalIndicatorHi = 0x1F1FF
)

// emojiModifierLo/Hi bound U+1F3FB..U+1F3FF, the Fitzpatrick skin-tone
// emoji modifiers.
const (
	emojiModifierLo = 0x1F3FB
	emojiModifierHi = 0x1F3FF
)

// Hangul_Syllable_Type jamo ranges (algorithmic, not derived from a
// generated table: these three blocks are the raw Jamo blocks, stable since
// Unicode 2.0).
const (
	hangulLeadingLo1 = 0x1100
	hangulLeadingHi1 = 0x115F
	hangulLeadingLo2 = 0xA960
	hangulLeadingHi2 = 0xA97C

	hangulVowelLo1 = 0x1160
	hangulVowelHi1 = 0x11A7
	hangulVowelLo2 = 0xD7B0
	hangulVowelHi2 = 0xD7C6

	hangulTrailingLo1 = 0x11A8
	hangulTrailingHi1 = 0x11FF
	hangulTrailingLo2 = 0xD7CB
	hangulTrailingHi2 = 0xD7FB
)

// indicConsonantPrecedingRepha lists the rare Indic_Syllabic_Category=
// Consonant_Preceding_Repha code points (RA-based reordering repha forms).
var indicConsonantPrecedingRepha = [...]rune{
	0x0D4E, 0x11941, 0x11D46, 0x11F02,
}

// indicConsonantPrefixedSingles/Ranges list Indic_Syllabic_Category=
// Consonant_Prefixed code points, plus the small ranges that carry the same
// property.
var indicConsonantPrefixedSingles = [...]rune{
	0x1193F, 0x11A3A,
}
var indicConsonantPrefixedRanges = [...]rune{
	0x111C2, 0x111C3,
	0x11A84, 0x11A89,
}

// indicConjunctBreakLinker lists Indic_Conjunct_Break=Linker code points:
// the virama/halant characters that join two Indic consonants into one
// grapheme cluster under GB9c.
var indicConjunctBreakLinker = [...]rune{
	0x094D, 0x09CD, 0x0ACD, 0x0B4D, 0x0C4D, 0x0D4D,
}

// prependedConcatenationMarkSingles/Ranges list
// Prepended_Concatenation_Mark=Yes code points: currency and script
// "sign" characters that prepend onto the following grapheme cluster.
var prependedConcatenationMarkSingles = [...]rune{
	0x06DD, 0x070F, 0x08E2, 0x110BD, 0x110CD,
}
var prependedConcatenationMarkRanges = [...]rune{
	0x0600, 0x0605,
	0x0890, 0x0891,
}

func inSingles(r rune, table []rune) bool {
	for _, v := range table {
		if v == r {
			return true
		}
	}
	return false
}

func inRangePairs(r rune, table []rune) bool {
	for i := 0; i+1 < len(table); i += 2 {
		if r < table[i] {
			return false
		}
		if r <= table[i+1] {
			return true
		}
	}
	return false
}

// IsControl reports whether r is a Control for the purposes of GB3/GB4/GB5:
// the C0 controls (<= U+001F) or the C1 controls/DEL range (U+007F..U+009F).
func IsControl(r rune) bool {
	return r <= 0x1F || (0x7F <= r && r <= 0x9F)
}

// IsEmojiModifier reports whether r is Emoji_Modifier=Yes.
func IsEmojiModifier(r rune) bool {
	return emojiModifierLo <= r && r <= emojiModifierHi
}

// IsRegionalIndicator reports whether r is a Regional Indicator Symbol
// Letter, U+1F1E6..U+1F1FF.
func IsRegionalIndicator(r rune) bool {
	return regionalIndicatorLo <= r && r <= regionalIndicatorHi
}

// IsHangulSyllableLeading reports whether r is Hangul_Syllable_Type=
// Leading_Jamo (L).
func IsHangulSyllableLeading(r rune) bool {
	return (hangulLeadingLo1 <= r && r <= hangulLeadingHi1) ||
		(hangulLeadingLo2 <= r && r <= hangulLeadingHi2)
}

// IsHangulSyllableVowel reports whether r is Hangul_Syllable_Type=
// Vowel_Jamo (V).
func IsHangulSyllableVowel(r rune) bool {
	return (hangulVowelLo1 <= r && r <= hangulVowelHi1) ||
		(hangulVowelLo2 <= r && r <= hangulVowelHi2)
}

// IsHangulSyllableTrailing reports whether r is Hangul_Syllable_Type=
// Trailing_Jamo (T).
func IsHangulSyllableTrailing(r rune) bool {
	return (hangulTrailingLo1 <= r && r <= hangulTrailingHi1) ||
		(hangulTrailingLo2 <= r && r <= hangulTrailingHi2)
}

// IsIndicConsonantPrecedingRepha reports whether r is
// Indic_Syllabic_Category=Consonant_Preceding_Repha.
func IsIndicConsonantPrecedingRepha(r rune) bool {
	return inSingles(r, indicConsonantPrecedingRepha[:])
}

// IsIndicConsonantPrefixed reports whether r is Indic_Syllabic_Category=
// Consonant_Prefixed.
func IsIndicConsonantPrefixed(r rune) bool {
	return inSingles(r, indicConsonantPrefixedSingles[:]) ||
		inRangePairs(r, indicConsonantPrefixedRanges[:])
}

// IsIndicConjunctBreakLinker reports whether r is Indic_Conjunct_Break=
// Linker.
func IsIndicConjunctBreakLinker(r rune) bool {
	return inSingles(r, indicConjunctBreakLinker[:])
}

// IsPrependedConcatenationMark reports whether r is
// Prepended_Concatenation_Mark=Yes.
func IsPrependedConcatenationMark(r rune) bool {
	return inSingles(r, prependedConcatenationMarkSingles[:]) ||
		inRangePairs(r, prependedConcatenationMarkRanges[:])
}

// IsGCBPrependClass is the derived GCB Prepend class: Consonant_Preceding_
// Repha, or Consonant_Prefixed, or Prepended_Concatenation_Mark.
func IsGCBPrependClass(r rune) bool {
	return IsIndicConsonantPrecedingRepha(r) ||
		IsIndicConsonantPrefixed(r) ||
		IsPrependedConcatenationMark(r)
}
