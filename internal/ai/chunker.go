package ai

import "strings"

// MaxChunkChars keeps a chunk under ~25K tokens to respect low
// per-minute token quotas (~4 chars/token, minus line-prefix and system
// prompt overhead).
const MaxChunkChars = 80_000

// Chunk is a line-aligned contiguous slice of the input text.
type Chunk struct {
	Text      string
	StartLine int // 1-based line number of the chunk's first line
}

// SplitIntoChunks splits text into ordered chunks under maxChars,
// breaking only at line boundaries. A chunk never splits a line, even
// when a single line exceeds the budget. Joining the chunk texts with
// newlines reproduces the input exactly.
func SplitIntoChunks(text string, maxChars int) []Chunk {
	if maxChars <= 0 {
		maxChars = MaxChunkChars
	}

	lines := strings.Split(text, "\n")

	var chunks []Chunk
	var current []string
	currentChars := 0
	startLine := 1

	for i, line := range lines {
		lineChars := len(line) + 1 // +1 for the newline
		if currentChars+lineChars > maxChars && len(current) > 0 {
			chunks = append(chunks, Chunk{
				Text:      strings.Join(current, "\n"),
				StartLine: startLine,
			})
			current = nil
			currentChars = 0
			startLine = i + 1
		}
		current = append(current, line)
		currentChars += lineChars
	}

	if len(current) > 0 {
		chunks = append(chunks, Chunk{
			Text:      strings.Join(current, "\n"),
			StartLine: startLine,
		})
	}

	return chunks
}
