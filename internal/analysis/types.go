package analysis

// Severity represents the urgency of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// SeverityRank returns a numeric urgency rank (lower = more urgent).
// Unknown severities rank below low.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// ValidSeverity reports whether s is one of the four defined levels.
func ValidSeverity(s Severity) bool {
	return SeverityRank(s) < 4
}

// MeetsFloor returns true if severity is at or above (at least as urgent
// as) the given floor.
func MeetsFloor(s, floor Severity) bool {
	return SeverityRank(s) <= SeverityRank(floor)
}

// Source identifies which detector produced a finding. It determines
// dedup precedence: ai findings win collisions with keyword and custom.
type Source string

const (
	SourceKeyword Source = "keyword"
	SourceCustom  Source = "custom"
	SourceAI      Source = "ai"
)

// Mode selects which detectors run during an analysis.
type Mode string

const (
	ModeHybrid    Mode = "hybrid"
	ModeRulesOnly Mode = "rules-only"
	ModeAIOnly    Mode = "ai-only"
)

// ValidMode reports whether m is a recognized analysis mode.
func ValidMode(m Mode) bool {
	switch m {
	case ModeHybrid, ModeRulesOnly, ModeAIOnly:
		return true
	}
	return false
}

// RequiresAI reports whether the mode invokes the remote analyzer.
func (m Mode) RequiresAI() bool {
	return m == ModeHybrid || m == ModeAIOnly
}

// RunsRules reports whether the mode invokes the keyword/custom scanners.
func (m Mode) RunsRules() bool {
	return m == ModeHybrid || m == ModeRulesOnly
}

// Finding is a single detected red-flag occurrence.
//
// LineNumber is 1-based and refers to a real line of the input text; 0 is
// permitted only for ai-sourced findings whose line hint was unavailable.
// Speaker is attached post-hoc by the reconciler and is otherwise empty.
type Finding struct {
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
	Pattern     string   `json:"pattern,omitempty"`
	Description string   `json:"description"`
	MatchedText string   `json:"matched_text"`
	LineNumber  int      `json:"line_number"`
	Context     string   `json:"context"`
	Source      Source   `json:"source"`
	Speaker     string   `json:"speaker,omitempty"`
}
