package ucg

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// zeroWidthNonJoiner is U+200C, folded into Grapheme_Extend (via
// Other_Grapheme_Extend) even though its General_Category (Cf, Format) is
// outside Mn/Mc/Me.
const zeroWidthNonJoiner = 0x200C

// otherGraphemeExtend covers Other_Grapheme_Extend=Yes: the code points
// outside Nonspacing_Mark and Enclosing_Mark that still carry
// Grapheme_Extend. Mostly spacing vowel signs and length marks that have to
// stay glued to their base for canonical equivalence, plus ZWNJ, the
// halfwidth katakana sound marks, the combining musical stems/flags, and
// the tag characters that emoji tag sequences (e.g. subdivision flags) are
// built from.
var otherGraphemeExtend = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x09BE, Hi: 0x09BE, Stride: 1},
		{Lo: 0x09D7, Hi: 0x09D7, Stride: 1},
		{Lo: 0x0B3E, Hi: 0x0B3E, Stride: 1},
		{Lo: 0x0B57, Hi: 0x0B57, Stride: 1},
		{Lo: 0x0BBE, Hi: 0x0BBE, Stride: 1},
		{Lo: 0x0BD7, Hi: 0x0BD7, Stride: 1},
		{Lo: 0x0CC2, Hi: 0x0CC2, Stride: 1},
		{Lo: 0x0CD5, Hi: 0x0CD6, Stride: 1},
		{Lo: 0x0D3E, Hi: 0x0D3E, Stride: 1},
		{Lo: 0x0D57, Hi: 0x0D57, Stride: 1},
		{Lo: 0x0DCF, Hi: 0x0DCF, Stride: 1},
		{Lo: 0x0DDF, Hi: 0x0DDF, Stride: 1},
		{Lo: 0x1715, Hi: 0x1715, Stride: 1},
		{Lo: 0x1734, Hi: 0x1734, Stride: 1},
		{Lo: 0x1B35, Hi: 0x1B35, Stride: 1},
		{Lo: 0x200C, Hi: 0x200C, Stride: 1},
		{Lo: 0x302E, Hi: 0x302F, Stride: 1},
		{Lo: 0xFF9E, Hi: 0xFF9F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1D165, Hi: 0x1D165, Stride: 1},
		{Lo: 0x1D16E, Hi: 0x1D172, Stride: 1},
		{Lo: 0xE0020, Hi: 0xE007F, Stride: 1},
	},
}

// graphemeExtend is the merged Grapheme_Extend table: Nonspacing_Mark
// (unicode.Mn) union Enclosing_Mark (unicode.Me) union
// Other_Grapheme_Extend. rangetable.Merge combines the *unicode.RangeTable
// values into one ad hoc rune class.
var graphemeExtend = rangetable.Merge(
	unicode.Mn,
	unicode.Me,
	otherGraphemeExtend,
)

// IsNonspacingMark reports whether r has General_Category=Nonspacing_Mark
// (Mn), reusing the stdlib's versioned Unicode category table.
func IsNonspacingMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// IsSpacingMark reports whether r has General_Category=Spacing_Mark (Mc).
func IsSpacingMark(r rune) bool {
	return unicode.Is(unicode.Mc, r)
}

// IsEnclosingMark reports whether r has General_Category=Enclosing_Mark
// (Me).
func IsEnclosingMark(r rune) bool {
	return unicode.Is(unicode.Me, r)
}

// IsGraphemeExtend reports whether r is Grapheme_Extend=Yes: Nonspacing_Mark,
// Enclosing_Mark, or Other_Grapheme_Extend.
func IsGraphemeExtend(r rune) bool {
	return unicode.Is(graphemeExtend, r)
}

// IsGCBExtendClass is the derived GCB Extend class: Grapheme_Extend, or
// Emoji_Modifier.
func IsGCBExtendClass(r rune) bool {
	return IsGraphemeExtend(r) || IsEmojiModifier(r)
}
