package ucg_test

import (
	"bytes"
	"testing"

	"github.com/feoramund/ucg-go"
)

func TestIteratorRoundTrip(t *testing.T) {
	input := []byte("Hello, 世界. 👍🐶 a\r\nb")

	it := ucg.NewIterator(input)
	var joined []byte
	var count int
	for it.Next() {
		joined = append(joined, it.Bytes()...)
		count++
	}
	if err := it.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(joined, input) {
		t.Errorf("clusters did not concatenate back to input: got %q, want %q", joined, input)
	}

	_, wantGraphemes, _, err := ucg.Count(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != wantGraphemes {
		t.Errorf("iterated %d clusters, want %d", count, wantGraphemes)
	}
}

func TestIteratorEmpty(t *testing.T) {
	it := ucg.NewIterator(nil)
	if it.Next() {
		t.Error("Next() should be false for empty input")
	}
	if err := it.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestIteratorWidth(t *testing.T) {
	it := ucg.NewIterator([]byte("a世"))

	if !it.Next() {
		t.Fatal("expected a cluster")
	}
	if got := string(it.Bytes()); got != "a" {
		t.Errorf("first cluster = %q, want %q", got, "a")
	}
	if got := it.Width(); got != 1 {
		t.Errorf("first cluster width = %d, want 1", got)
	}

	if !it.Next() {
		t.Fatal("expected a second cluster")
	}
	if got := string(it.Bytes()); got != "世" {
		t.Errorf("second cluster = %q, want %q", got, "世")
	}
	if got := it.Width(); got != 2 {
		t.Errorf("second cluster width = %d, want 2", got)
	}

	if it.Next() {
		t.Error("expected no third cluster")
	}
}

func TestIteratorStopsAtDecodeError(t *testing.T) {
	// "ab" followed by an overlong, invalid 2-byte sequence.
	data := append([]byte("ab"), 0xC0, 0x80)

	it := ucg.NewIterator(data)
	var joined []byte
	for it.Next() {
		joined = append(joined, it.Bytes()...)
	}
	if it.Err() == nil {
		t.Fatal("expected a decode error")
	}
	if !bytes.Equal(joined, []byte("ab")) {
		t.Errorf("clusters = %q, want %q (truncated at the error)", joined, "ab")
	}
}
