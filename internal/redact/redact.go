package redact

import "regexp"

const placeholder = "[REDACTED]"

// transcriptPatterns are regex heuristics for secrets and personal data
// that routinely leak into meeting transcripts and call logs.
var transcriptPatterns = []*regexp.Regexp{
	// Generic API keys (long hex/base64 strings after common key patterns)
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`),
	// Generic secrets/tokens/passwords in assignments
	regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// Anthropic API keys
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	// US social security numbers
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	// Credit card numbers (13-16 digits, optionally separated)
	regexp.MustCompile(`\b(?:\d[ -]?){13,16}\b`),
	// Email addresses
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
}

// Transcript replaces detected secrets and personal data in transcript
// text with [REDACTED] before it leaves the process. Line structure is
// preserved so line numbers stay valid.
func Transcript(text string) string {
	result := text
	for _, pat := range transcriptPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}
