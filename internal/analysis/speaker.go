package analysis

import (
	"regexp"
	"strings"
)

// Speaker label conventions, tested per line in priority order. The
// "Speaker" keyword is the only case-insensitive piece; names match
// case-sensitively but are captured verbatim.
var speakerPatterns = []*regexp.Regexp{
	// Name: said something
	regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 .'-]{0,39}?):`),
	// [Name]: said something
	regexp.MustCompile(`^\s*\[([^\]\n]+)\]:`),
	// Name - said something
	regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 .'-]{0,39}?)\s+-\s+`),
	// Speaker 1: said something
	regexp.MustCompile(`^\s*(?i:speaker)\s+(\d+):`),
}

// "speaker 3" in any case normalizes to "Speaker 3" regardless of which
// convention captured it.
var numberedSpeaker = regexp.MustCompile(`^(?i:speaker)\s+(\d+)$`)

// AttributeSpeakers maps each line of text to the speaker talking on it.
//
// A line that matches a labeling convention updates the current speaker,
// which then persists for subsequent lines until the next label. Lines
// before the first detected label map to the empty speaker. This is a
// single forward pass with no lookahead.
func AttributeSpeakers(text string) []string {
	lines := strings.Split(text, "\n")
	speakers := make([]string, len(lines))

	current := ""
	for i, line := range lines {
		for pi, pat := range speakerPatterns {
			m := pat.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := strings.TrimSpace(m[1])
			if name == "" {
				continue
			}
			if pi == 3 {
				name = "Speaker " + name
			} else if m := numberedSpeaker.FindStringSubmatch(name); m != nil {
				name = "Speaker " + m[1]
			}
			current = name
			break
		}
		speakers[i] = current
	}
	return speakers
}

// speakerForLine returns the speaker attributed to a 1-based line number,
// or "" when the line is out of range (ai line hints are untrusted).
func speakerForLine(speakers []string, lineNumber int) string {
	if lineNumber < 1 || lineNumber > len(speakers) {
		return ""
	}
	return speakers[lineNumber-1]
}
