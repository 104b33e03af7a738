package ucg

// Count reports the number of decoded scalar values ("runes"), the number
// of extended grapheme clusters, and the total estimated monospaced display
// width in data, without allocating any per-cluster records. It is a thin
// wrapper over Decode that passes a nil destination.
//
// On malformed UTF-8 it returns the counts accumulated through the last
// successfully decoded rune, along with a *DecodeError identifying where
// and how decoding failed.
func Count(data []byte) (runeCount, graphemeCount, width int, err error) {
	return Decode(data, nil)
}

// CountString is Count for a string argument.
func CountString(s string) (runeCount, graphemeCount, width int, err error) {
	return Count([]byte(s))
}

// Decode is the heart of the package: it segments data into extended
// grapheme clusters per UAX#29 and sums their UAX#11 display widths.
//
// If records is non-nil, one Grapheme is appended to *records per cluster,
// in strict source-byte order, as the cluster is discovered. This mirrors
// the allocator-driven recording in the original C implementation, but
// without the malloc-vocabulary allocator: Go's append already gives the
// amortized-growth behavior that allocator's realloc step existed for, and
// a caller who wants to reuse a backing array across calls can simply pass
// a slice of its own with spare capacity.
//
// If records is nil, no allocation beyond what Count/Decode's own counters
// need occurs.
//
// The returned error is nil on success. On malformed UTF-8, it is a
// *DecodeError, and all counters (and any records already appended) reflect
// progress up to, but not including, the rune that failed to decode;
// partial records are not discarded.
func Decode(data []byte, records *[]Grapheme) (runeCount, graphemeCount, width int, err error) {
	var st state
	st.records = records

	byteIndex, cursor := 0, 0
	for byteIndex < len(data) {
		cursor = byteIndex
		thisRune := DecodeRune(data, &cursor)
		if thisRune < 0 {
			return st.runeCount, st.graphemeCount, st.width, &DecodeError{
				ByteIndex: byteIndex,
				Sentinel:  thisRune,
			}
		}
		st.step(byteIndex, thisRune)
		byteIndex = cursor
	}

	return st.runeCount, st.graphemeCount, st.width, nil
}

// DecodeString is Decode for a string argument.
func DecodeString(s string, records *[]Grapheme) (runeCount, graphemeCount, width int, err error) {
	return Decode([]byte(s), records)
}
