package ucg_test

import (
	"errors"
	"testing"

	"github.com/feoramund/ucg-go"
)

// TestConformanceScenarios covers a set of worked segmentation examples.
func TestConformanceScenarios(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantRunes     int
		wantGraphemes int
		wantWidth     int
	}{
		{"empty", "", 0, 0, 0},
		{"ascii", "abc", 3, 3, 3},
		{"crlf", "a\r\nb", 4, 3, 2}, // CRLF is one cluster of width 0
		{"bare crlf", "\r\n", 2, 1, 0},
		{"cr without lf", "a\rb", 3, 3, 2},
		{"combining acute", "é", 2, 1, 1},
		{"flag US", "\U0001F1FA\U0001F1F8", 2, 1, 2},
		{"two flags", "\U0001F1FA\U0001F1F8\U0001F1EB\U0001F1F7", 4, 2, 4},
		{"ZWJ emoji sequence", "\U0001F469‍\U0001F4BB", 3, 1, 2},
		{"skin tone modifier", "\U0001F44D\U0001F3FD", 2, 1, 2},
		{"tag sequence flag", "\U0001F3F4\U000E0067\U000E0062\U000E0065\U000E006E\U000E0067\U000E007F", 7, 1, 2},
		{"decomposed hangul", "각", 3, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes, graphemes, width, err := ucg.CountString(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if runes != tt.wantRunes {
				t.Errorf("runes = %d, want %d", runes, tt.wantRunes)
			}
			if graphemes != tt.wantGraphemes {
				t.Errorf("graphemes = %d, want %d", graphemes, tt.wantGraphemes)
			}
			if width != tt.wantWidth {
				t.Errorf("width = %d, want %d", width, tt.wantWidth)
			}
		})
	}
}

// TestConformanceIndicConjunct checks GB9c: a Devanagari
// consonant-virama-consonant sequence binds into a single cluster, with or
// without a ZWJ after the virama, while a ZWNJ after the virama blocks the
// conjunct and splits it in two.
func TestConformanceIndicConjunct(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantGraphemes int
	}{
		{"ka virama ssa", "क्ष", 1},
		{"ka virama zwj ssa", "क्‍ष", 1},
		{"ka virama zwnj ssa", "क्‌ष", 2},
		{"ka ssa no virama", "कष", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, graphemes, _, err := ucg.CountString(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if graphemes != tt.wantGraphemes {
				t.Errorf("graphemes = %d, want %d", graphemes, tt.wantGraphemes)
			}
		})
	}
}

func TestConformanceUTF8Errors(t *testing.T) {
	t.Run("invalid rune", func(t *testing.T) {
		_, _, _, err := ucg.Count([]byte{0xC0, 0x80})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, ucg.ErrInvalidRune) {
			t.Errorf("got %v, want ErrInvalidRune", err)
		}
	})

	t.Run("truncated sequence", func(t *testing.T) {
		_, _, _, err := ucg.Count([]byte{0xE2, 0x82})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, ucg.ErrExpectedMoreBytes) {
			t.Errorf("got %v, want ErrExpectedMoreBytes", err)
		}
	})
}

// TestErrorPreservesPartialCounts checks that counts accumulated before a
// decoding failure are still returned.
func TestErrorPreservesPartialCounts(t *testing.T) {
	data := append([]byte("ab"), 0xC0, 0x80)
	runes, graphemes, width, err := ucg.Count(data)
	if err == nil {
		t.Fatal("expected an error")
	}
	if runes != 2 || graphemes != 2 || width != 2 {
		t.Errorf("got (%d, %d, %d), want (2, 2, 2)", runes, graphemes, width)
	}

	var de *ucg.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error is not a *ucg.DecodeError: %v", err)
	}
	if de.ByteIndex != 2 {
		t.Errorf("ByteIndex = %d, want 2", de.ByteIndex)
	}
}

func TestDecodeRecordsMatchCounts(t *testing.T) {
	input := "Hello, 世界. \U0001F44D\U0001F436"

	var records []ucg.Grapheme
	runes, graphemes, width, err := ucg.DecodeString(input, &records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != graphemes {
		t.Fatalf("len(records) = %d, want %d", len(records), graphemes)
	}

	var summedWidth int
	var lastByteIndex = -1
	var lastRuneIndex = -1
	for i, rec := range records {
		if rec.ByteIndex <= lastByteIndex {
			t.Errorf("record %d: ByteIndex %d did not strictly increase from %d", i, rec.ByteIndex, lastByteIndex)
		}
		if rec.RuneIndex <= lastRuneIndex {
			t.Errorf("record %d: RuneIndex %d did not strictly increase from %d", i, rec.RuneIndex, lastRuneIndex)
		}
		lastByteIndex = rec.ByteIndex
		lastRuneIndex = rec.RuneIndex
		summedWidth += rec.Width
	}

	if records[0].ByteIndex != 0 {
		t.Errorf("first record ByteIndex = %d, want 0", records[0].ByteIndex)
	}
	if records[0].RuneIndex != 0 {
		t.Errorf("first record RuneIndex = %d, want 0", records[0].RuneIndex)
	}
	if summedWidth != width {
		t.Errorf("sum of record widths = %d, want %d (total width)", summedWidth, width)
	}

	// Results must not depend on whether records were requested.
	runes2, graphemes2, width2, err2 := ucg.CountString(input)
	if err2 != nil {
		t.Fatalf("unexpected error: %v", err2)
	}
	if runes2 != runes || graphemes2 != graphemes || width2 != width {
		t.Errorf("Count and Decode disagree: (%d,%d,%d) vs (%d,%d,%d)", runes2, graphemes2, width2, runes, graphemes, width)
	}
}

func TestGraphemeCountInvariants(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"abc",
		"Hello, 世界. \U0001F44D\U0001F436",
		"\U0001F469‍\U0001F4BB",
		"\U0001F1FA\U0001F1F8\U0001F1EB\U0001F1F7",
		"a\r\nb\r\n\r\nc",
		"क्ष",
	}

	for _, input := range inputs {
		runes, graphemes, _, err := ucg.CountString(input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		if graphemes > runes {
			t.Errorf("%q: graphemes (%d) > runes (%d)", input, graphemes, runes)
		}
		if runes > len(input) {
			t.Errorf("%q: runes (%d) > len_bytes (%d)", input, runes, len(input))
		}
		if (graphemes == 0) != (len(input) == 0) {
			t.Errorf("%q: graphemes == 0 should be equivalent to len_bytes == 0", input)
		}
	}
}

// TestConcatenationBound checks that concatenating two inputs yields at
// least count(A)+count(B)-1 clusters and at most count(A)+count(B).
// The lower bound does not hold when B itself starts with a ZWJ followed by
// a pictograph: on its own that B is two clusters (GB11 needs a pictograph
// before the ZWJ), and in AB both join A's last cluster. The ZWJ sequence
// below is therefore split with the ZWJ on A's side of the seam.
func TestConcatenationBound(t *testing.T) {
	pairs := [][2]string{
		{"abc", "def"},
		{"é", "f"},
		{"a", "́"}, // base + combining mark across the seam
		{"\U0001F1FA\U0001F1F8", "\U0001F1EB\U0001F1F7"}, // two RI pairs across the seam
		{"\U0001F469‍", "\U0001F4BB"},               // ZWJ sequence split across the seam
	}

	for _, pair := range pairs {
		_, countA, _, _ := ucg.CountString(pair[0])
		_, countB, _, _ := ucg.CountString(pair[1])
		_, countAB, _, err := ucg.CountString(pair[0] + pair[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		min, max := countA+countB-1, countA+countB
		if countAB < min || countAB > max {
			t.Errorf("%q+%q: count(AB)=%d, want in [%d, %d]", pair[0], pair[1], countAB, min, max)
		}
	}
}
