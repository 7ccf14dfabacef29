package ai

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a red flag analyzer. Your job is to carefully read transcripts and identify potential red flags across these categories:

1. **Compliance/Legal**: NDA violations, regulatory breaches, legal risks, confidentiality violations, conflicts of interest
2. **Behavioral/HR**: Harassment, discrimination, bullying, hostile behavior, retaliation, inappropriate conduct
3. **Sales/Fraud**: Misleading claims, fraudulent statements, pressure tactics, falsification, embezzlement
4. **General**: Any other concerning patterns that don't fit the above categories

For each red flag found, assess its severity:
- **critical**: Immediate action required, potential legal/safety risk
- **high**: Serious concern requiring prompt attention
- **medium**: Notable concern worth investigating
- **low**: Minor concern, worth monitoring

Respond ONLY with a valid JSON array. Each element must have these fields:
- "category": one of "compliance/legal", "behavioral/HR", "sales/fraud", "general"
- "severity": one of "critical", "high", "medium", "low"
- "quote": the exact text from the transcript that triggered the flag (keep it short, 1-2 sentences max)
- "explanation": brief explanation of why this is a red flag
- "line_hint": approximate line number where this appears (best guess)

If no red flags are found, return an empty array: []

Be thorough but avoid false positives. Focus on genuinely concerning statements, not benign mentions of keywords.`

// SystemPrompt returns the system prompt for the remote analyzer.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt constructs the per-chunk user prompt: every line is
// prefixed with its global line number so the model can report hints in
// original-document coordinates, and multi-chunk requests carry a note
// about their position.
func BuildUserPrompt(chunk Chunk, chunkNum, totalChunks int) string {
	lines := strings.Split(chunk.Text, "\n")
	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("[Line %d] %s", chunk.StartLine+i, line)
	}

	var b strings.Builder
	b.WriteString("Analyze this transcript for red flags:")
	if totalChunks > 1 {
		fmt.Fprintf(&b, "\n\nNote: This is chunk %d/%d of a larger transcript. Line numbers are from the original document.",
			chunkNum, totalChunks)
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Join(numbered, "\n"))
	return b.String()
}
