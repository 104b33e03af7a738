// Package ucg segments a UTF-8 byte string into extended grapheme clusters,
// conformant with Unicode Standard Annex #29 (UAX#29, revision 43, Unicode
// 15.1.0, ruleset UAX29-C1-1), and estimates the monospaced display width of
// each cluster using the East Asian Width classifications of Unicode
// Standard Annex #11 (UAX#11).
//
// For arbitrary input it reports the number of decoded scalar values
// ("runes"), the number of grapheme clusters, the total display width, and
// optionally a [Grapheme] record per cluster giving its byte offset,
// starting rune index, and width.
//
// This package does not perform line breaking (UAX#14), word or sentence
// segmentation, normalization, case mapping, collation, bidirectional
// reordering, or legacy (non-extended) grapheme cluster segmentation. It
// does not support incremental segmentation across multiple independent
// input buffers: [Iterator] ranges over one buffer already fully in memory.
//
// This is a Go port of ucg (https://github.com/Feoramund/ucg), a C library
// by Feoramund.
package ucg
