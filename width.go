package ucg

import "golang.org/x/text/width"

// Invisible joiners that are printable in General_Category terms but occupy
// no monospaced cell. U+FEFF is included for its common in-text
// interpretation as a zero-width no-break space, distinct from its
// byte-order-mark role at the start of a stream.
const (
	zeroWidthSpace  = 0x200B
	zeroWidthJoiner = 0x200D
	wordJoiner      = 0x2060
	byteOrderMark   = 0xFEFF
)

// NormalizedEastAsianWidth estimates the monospaced display width of a
// single scalar value: 0 for Control and a small set of invisible joiners,
// 1 for all scalars <= U+10FF (a fast path, since no Wide/Fullwidth code
// point exists that low), 2 for Regional Indicators, and the UAX#11 East
// Asian Width classification (2 for Wide/Fullwidth, 1 otherwise) beyond that.
//
// The classification itself is delegated to golang.org/x/text/width rather
// than a hand-rolled UAX#11 table, reusing the ecosystem's maintained,
// versioned width data.
func NormalizedEastAsianWidth(r rune) rune {
	if IsControl(r) {
		return 0
	}
	if r <= 0x10FF {
		return 1
	}

	switch r {
	case byteOrderMark, zeroWidthSpace, zeroWidthNonJoiner, zeroWidthJoiner, wordJoiner:
		return 0
	}

	// EastAsianWidth.txt classifies Regional Indicators as Neutral, but a
	// pair of them renders as a flag occupying two cells, so the first rune
	// of a flag cluster has to pay that width here.
	if IsRegionalIndicator(r) {
		return 2
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
