package pipeline

import (
	"strings"
	"testing"
)

func TestChunk_Empty(t *testing.T) {
	if got := Chunk("", 10); got != nil {
		t.Fatalf("Chunk(\"\") = %#v, want nil", got)
	}
}

func TestChunk_NonPositiveSize(t *testing.T) {
	got := Chunk("hola", 0)
	if len(got) != 1 || got[0] != "hola" {
		t.Fatalf("Chunk(size=0) = %#v, want single whole chunk", got)
	}
}

func TestChunk_ExactBoundary(t *testing.T) {
	got := Chunk("abcdef", 3)
	want := []string{"abc", "def"}
	if len(got) != len(want) {
		t.Fatalf("Chunk() returned %d chunks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Chunk()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChunk_Remainder(t *testing.T) {
	got := Chunk("abcdefg", 3)
	if len(got) != 3 || got[2] != "g" {
		t.Fatalf("Chunk() = %#v, want trailing chunk %q", got, "g")
	}
}

func TestChunk_RoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"hola mundo",
		strings.Repeat("dictamen de calificación ", 500),
		"Página con acentos: evaluación médica número 1",
	}
	for _, in := range inputs {
		for _, size := range []int{1, 7, 2000} {
			if got := strings.Join(Chunk(in, size), ""); got != in {
				t.Fatalf("Chunk round trip mismatch for size %d: got %d chars, want %d", size, len(got), len(in))
			}
		}
	}
}

func TestChunk_RuneBoundaries(t *testing.T) {
	// Multi-byte runes must never be split.
	in := "ñáéíóú"
	for _, chunk := range Chunk(in, 2) {
		if !strings.Contains(in, chunk) {
			t.Fatalf("chunk %q broke a rune boundary", chunk)
		}
	}
	chunks := Chunk(in, 2)
	if len(chunks) != 3 {
		t.Fatalf("Chunk() returned %d chunks, want 3", len(chunks))
	}
}
