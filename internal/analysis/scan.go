package analysis

import "strings"

// Scan applies rules to text line by line and returns one finding per
// regex match. Order is rule-major, then line-major, then left-to-right
// within a line; that order decides which duplicate survives dedup
// tie-breaks. Every match carries the matched line plus one line of
// context on each side, clipped at document boundaries.
func Scan(text string, rules []Rule, source Source) []Finding {
	lines := strings.Split(text, "\n")

	var findings []Finding
	for _, rule := range rules {
		for i, line := range lines {
			for _, loc := range rule.re.FindAllStringIndex(line, -1) {
				findings = append(findings, Finding{
					Category:    rule.Category,
					Severity:    rule.Severity,
					Pattern:     rule.Pattern,
					Description: rule.Description,
					MatchedText: line[loc[0]:loc[1]],
					LineNumber:  i + 1,
					Context:     contextAround(lines, i),
					Source:      source,
				})
			}
		}
	}
	return findings
}

// contextAround joins lines[i-1..i+1], clipped to the document.
func contextAround(lines []string, i int) string {
	start := i - 1
	if start < 0 {
		start = 0
	}
	end := i + 2
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}
