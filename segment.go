package ucg

// sequence is the stateful context that carries across scalar values for
// GB9c (Indic conjuncts), GB11 (emoji ZWJ sequences), and GB12/GB13
// (regional indicator pairs). Exactly one of these applies at a time.
type sequence int

const (
	sequenceNone sequence = iota
	sequenceIndic
	sequenceEmoji
	sequenceRegional
)

// Grapheme is a per-cluster record produced by Decode when a destination
// slice is supplied. ByteIndex is the offset, in bytes from the start of
// input, at which the cluster begins; RuneIndex is the cluster's first
// rune's zero-based ordinal; Width is the cluster's estimated monospaced
// cell width (0, 1, or 2).
type Grapheme struct {
	ByteIndex int
	RuneIndex int
	Width     int
}

// state holds everything the segmentation loop needs for the duration of
// one Count/Decode call. It does not outlive that call: nothing here is
// retained or shared across calls, so the zero value is always a fresh
// start.
type state struct {
	records *[]Grapheme // nil unless the caller wants per-cluster records

	runeCount     int
	graphemeCount int
	width         int

	lastRune              rune
	lastRuneBreaksForward bool

	lastWidth         int
	lastGraphemeCount int

	bypassNextRune bool

	regionalIndicatorCounter int

	currentSequence  sequence
	continueSequence bool
}

// finalize runs after every rule decision, regardless of which path was
// taken: it accounts for the very first rune opening cluster #1 (GB1/GB2),
// adds this rune's width and appends a record when a new cluster has just
// begun, advances rune bookkeeping, and resets the stateful sequence
// context unless the rule that just ran asked to keep it alive. Rule logic
// above only ever decides whether this rune opens a new cluster; this is
// the one place that bookkeeping happens, following a deferred-finalize
// pattern.
func (s *state) finalize(byteIndex int, thisRune rune) {
	// GB1/GB2: the very first rune always opens cluster #1.
	if s.runeCount == 0 && s.graphemeCount == 0 {
		s.graphemeCount++
	}

	if s.graphemeCount > s.lastGraphemeCount {
		s.width += int(NormalizedEastAsianWidth(thisRune))

		if s.records != nil {
			*s.records = append(*s.records, Grapheme{
				ByteIndex: byteIndex,
				RuneIndex: s.runeCount,
				Width:     s.width - s.lastWidth,
			})
		}

		s.lastGraphemeCount = s.graphemeCount
		s.lastWidth = s.width
	}

	s.lastRune = thisRune
	s.runeCount++

	if !s.continueSequence {
		s.currentSequence = sequenceNone
		s.regionalIndicatorCounter = 0
	}
	s.continueSequence = false
}

const (
	carriageReturn = '\r'
	lineFeed       = '\n'
)

// step evaluates the UAX#29 grapheme-cluster-boundary rules for one
// decoded scalar value, in rule order (first match wins), then runs
// finalize. Each rule decides only whether thisRune opens
// a new cluster (incrementing graphemeCount) or extends the current one;
// width accounting, record emission and sequence-state cleanup are all
// handled uniformly by finalize.
func (s *state) step(byteIndex int, thisRune rune) {
	// GB3/GB4/GB5: Control/CR/LF.
	if thisRune == lineFeed && s.lastRune == carriageReturn {
		// Keep CRLF together; this rune doesn't force anything afterward.
		s.lastRuneBreaksForward = false
		s.bypassNextRune = false
		s.finalize(byteIndex, thisRune)
		return
	}
	if IsControl(thisRune) {
		s.graphemeCount++
		s.lastRuneBreaksForward = true
		s.bypassNextRune = true
		s.finalize(byteIndex, thisRune)
		return
	}

	// Post-break passthrough: discharges GB4's "break after" on the rune
	// that follows a control/CR/LF, and skips the rest of the rules for a
	// rune that follows a GB9b Prepend.
	if s.bypassNextRune {
		if s.lastRuneBreaksForward {
			s.graphemeCount++
			s.lastRuneBreaksForward = false
		}
		s.bypassNextRune = false
		s.finalize(byteIndex, thisRune)
		return
	}

	// Low-rune fast path: below U+0300 nothing but the two
	// Extended_Pictographic legacy symbols (U+00A9, U+00AE) can possibly
	// combine with a neighbor, so everything else here is GB999.
	if thisRune <= 0x2FF && thisRune != 0xA9 && thisRune != 0xAE {
		s.graphemeCount++
		s.finalize(byteIndex, thisRune)
		return
	}

	// GB6/GB7/GB8: Hangul syllable sequences.
	if 0x1100 <= thisRune && thisRune <= 0xD7FB {
		switch {
		case IsHangulSyllableLeading(thisRune) || IsHangulSyllableLV(thisRune) || IsHangulSyllableLVT(thisRune):
			if !IsHangulSyllableLeading(s.lastRune) {
				s.graphemeCount++
			}
			s.finalize(byteIndex, thisRune)
			return
		case IsHangulSyllableVowel(thisRune):
			if IsHangulSyllableLeading(s.lastRune) || IsHangulSyllableVowel(s.lastRune) || IsHangulSyllableLV(s.lastRune) {
				s.finalize(byteIndex, thisRune)
				return
			}
			s.graphemeCount++
			s.finalize(byteIndex, thisRune)
			return
		case IsHangulSyllableTrailing(thisRune):
			if IsHangulSyllableTrailing(s.lastRune) || IsHangulSyllableLVT(s.lastRune) || IsHangulSyllableLV(s.lastRune) || IsHangulSyllableVowel(s.lastRune) {
				s.finalize(byteIndex, thisRune)
				return
			}
			s.graphemeCount++
			s.finalize(byteIndex, thisRune)
			return
		}
	}

	// GB9: do not break before Extend or ZWJ.
	if thisRune == zeroWidthJoiner {
		s.continueSequence = true
		s.finalize(byteIndex, thisRune)
		return
	}
	if IsGCBExtendClass(thisRune) {
		if s.currentSequence == sequenceIndic {
			// GB9c continuation while already inside an Indic conjunct.
			if IsIndicConjunctBreakExtend(thisRune) && (IsIndicConjunctBreakLinker(s.lastRune) || IsIndicConjunctBreakConsonant(s.lastRune)) {
				s.continueSequence = true
			} else if IsIndicConjunctBreakLinker(thisRune) && (IsIndicConjunctBreakLinker(s.lastRune) || IsIndicConjunctBreakExtend(s.lastRune) || IsIndicConjunctBreakConsonant(s.lastRune)) {
				s.continueSequence = true
			}
			s.finalize(byteIndex, thisRune)
			return
		}
		if s.currentSequence == sequenceEmoji && (IsGCBExtendClass(s.lastRune) || IsExtendedPictographic(s.lastRune)) {
			s.continueSequence = true
		}
		s.finalize(byteIndex, thisRune)
		return
	}

	// GB9a: do not break before SpacingMark.
	if IsSpacingMark(thisRune) {
		s.finalize(byteIndex, thisRune)
		return
	}

	// GB9b: do not break after Prepend.
	if IsGCBPrependClass(thisRune) {
		s.graphemeCount++
		s.bypassNextRune = true
		s.finalize(byteIndex, thisRune)
		return
	}

	// GB9c: Indic conjunct consonant.
	if IsIndicConjunctBreakConsonant(thisRune) {
		if s.currentSequence == sequenceIndic {
			if s.lastRune == zeroWidthJoiner || IsIndicConjunctBreakLinker(s.lastRune) {
				s.continueSequence = true
			} else {
				// Does not chain from the preceding context; starts a new
				// cluster. Indic state stays active regardless (see
				// DESIGN.md).
				s.graphemeCount++
				s.continueSequence = true
			}
		} else {
			s.graphemeCount++
			s.currentSequence = sequenceIndic
			s.continueSequence = true
		}
		s.finalize(byteIndex, thisRune)
		return
	}

	// InCB=Extend / InCB=Linker while already in an Indic sequence. Every
	// code point with either property is the ZWJ or in the GCB Extend
	// class, both handled above, so in practice control never reaches
	// these branches.
	if IsIndicConjunctBreakExtend(thisRune) {
		if s.currentSequence == sequenceIndic {
			if IsIndicConjunctBreakConsonant(s.lastRune) || IsIndicConjunctBreakLinker(s.lastRune) {
				s.continueSequence = true
			} else {
				s.graphemeCount++
			}
		}
		s.finalize(byteIndex, thisRune)
		return
	}
	if IsIndicConjunctBreakLinker(thisRune) {
		if s.currentSequence == sequenceIndic {
			if IsIndicConjunctBreakExtend(s.lastRune) || IsIndicConjunctBreakLinker(s.lastRune) {
				s.continueSequence = true
			} else {
				s.graphemeCount++
			}
		}
		s.finalize(byteIndex, thisRune)
		return
	}

	// (There is no GB10.)

	// GB11: emoji modifier/ZWJ sequences.
	if IsExtendedPictographic(thisRune) {
		if s.currentSequence != sequenceEmoji || s.lastRune != zeroWidthJoiner {
			s.graphemeCount++
		}
		s.currentSequence = sequenceEmoji
		s.continueSequence = true
		s.finalize(byteIndex, thisRune)
		return
	}

	// GB12/GB13: regional indicator (emoji flag) pairs.
	if IsRegionalIndicator(thisRune) {
		if s.regionalIndicatorCounter&1 == 0 {
			s.graphemeCount++
		}
		s.currentSequence = sequenceRegional
		s.continueSequence = true
		s.regionalIndicatorCounter++
		s.finalize(byteIndex, thisRune)
		return
	}

	// GB999: otherwise, break everywhere.
	s.graphemeCount++
	s.finalize(byteIndex, thisRune)
}
