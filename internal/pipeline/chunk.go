package pipeline

// Chunk splits text into contiguous chunks of at most size runes, in order,
// with no overlap. A chunk may cut mid-word; correction quality at the seam
// is an accepted trade-off for bounding the per-call token budget.
// Concatenating the chunks reconstructs the input exactly.
func Chunk(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}
