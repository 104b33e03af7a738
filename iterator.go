package ucg

// Iterator ranges over the extended grapheme clusters of a single buffer
// that is already fully resident in memory. It does not support
// incremental segmentation across multiple, separately-refilled input
// buffers: there is exactly one buffer here, decoded once, and nothing is
// resumed across separate reads.
//
// Iterate while Next() returns true; the current cluster is available from
// Bytes() and Width(). Always check Err() after the loop ends.
type Iterator struct {
	data    []byte
	records []Grapheme
	pos     int
	err     error
}

// NewIterator segments data up front and returns an Iterator over its
// clusters. data is not copied; callers must not mutate it while iterating.
func NewIterator(data []byte) *Iterator {
	it := &Iterator{data: data, pos: -1}
	_, _, _, it.err = Decode(data, &it.records)
	return it
}

// Next advances to the next grapheme cluster, returning false at the end of
// data or after a decoding error.
func (it *Iterator) Next() bool {
	if it.pos+1 >= len(it.records) {
		it.pos = len(it.records)
		return false
	}
	it.pos++
	return true
}

// Bytes returns the current cluster's bytes. Valid only after a call to
// Next has returned true; it does not advance the iterator.
func (it *Iterator) Bytes() []byte {
	if it.pos < 0 || it.pos >= len(it.records) {
		return nil
	}
	start := it.records[it.pos].ByteIndex
	end := len(it.data)
	if it.pos+1 < len(it.records) {
		end = it.records[it.pos+1].ByteIndex
	} else if it.err != nil {
		// A decode error truncates the last cluster's bytes at the point
		// decoding failed, rather than running to the end of the (possibly
		// malformed) remainder of data.
		end = it.errorByteIndex()
	}
	return it.data[start:end]
}

// Width returns the current cluster's display width. Valid only after a
// call to Next has returned true.
func (it *Iterator) Width() int {
	if it.pos < 0 || it.pos >= len(it.records) {
		return 0
	}
	return it.records[it.pos].Width
}

// Err returns the first decoding error encountered while segmenting, or nil
// if data was well-formed UTF-8.
func (it *Iterator) Err() error {
	return it.err
}

func (it *Iterator) errorByteIndex() int {
	if de, ok := it.err.(*DecodeError); ok {
		return de.ByteIndex
	}
	return len(it.data)
}
