package analysis

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_BuiltinScenario(t *testing.T) {
	text := "We agreed to keep this quiet and off the books."

	findings := Scan(text, BuiltinRules(), SourceKeyword)

	var categories []string
	for _, f := range findings {
		categories = append(categories, f.Category)
		assert.Equal(t, 1, f.LineNumber)
	}
	assert.Contains(t, categories, "compliance/legal")
	assert.Contains(t, categories, "sales/fraud")

	for _, f := range findings {
		switch f.MatchedText {
		case "keep this quiet":
			assert.Equal(t, SeverityMedium, f.Severity)
			assert.Equal(t, "compliance/legal", f.Category)
		case "off the books":
			assert.Equal(t, SeverityHigh, f.Severity)
			assert.Equal(t, "sales/fraud", f.Category)
		}
	}
}

// Every finding's matched text must be a case-insensitive match of its
// rule pattern against the exact line it points at.
func TestScan_MatchValidity(t *testing.T) {
	text := "CONFIDENTIAL briefing\nnothing here\nthis is a LAWSUIT about harassment"

	findings := Scan(text, BuiltinRules(), SourceKeyword)
	require.NotEmpty(t, findings)

	lines := strings.Split(text, "\n")
	for _, f := range findings {
		require.GreaterOrEqual(t, f.LineNumber, 1)
		require.LessOrEqual(t, f.LineNumber, len(lines))
		line := lines[f.LineNumber-1]

		re := regexp.MustCompile(`(?i)` + f.Pattern)
		assert.True(t, re.MatchString(line),
			"pattern %q should match line %q", f.Pattern, line)
		assert.Contains(t, line, f.MatchedText)
	}
}

func TestScan_CaseInsensitive(t *testing.T) {
	rules := []Rule{mustRule("test", SeverityHigh, `\bkickback\b`, "kickback")}

	findings := Scan("KICKBACK on line one", rules, SourceKeyword)
	require.Len(t, findings, 1)
	assert.Equal(t, "KICKBACK", findings[0].MatchedText)
}

func TestScan_MultipleMatchesPerLine(t *testing.T) {
	rules := []Rule{mustRule("test", SeverityLow, `\btoxic\b`, "toxic")}

	findings := Scan("toxic culture, toxic team, toxic manager", rules, SourceKeyword)
	assert.Len(t, findings, 3, "no per-line match cap")
}

func TestScan_Ordering(t *testing.T) {
	rules := []Rule{
		mustRule("a", SeverityLow, `\bfirst\b`, "rule one"),
		mustRule("b", SeverityLow, `\bsecond\b`, "rule two"),
	}
	text := "second then first\nfirst then second"

	findings := Scan(text, rules, SourceKeyword)
	require.Len(t, findings, 4)

	// Rule-major, then line-major.
	assert.Equal(t, "a", findings[0].Category)
	assert.Equal(t, 1, findings[0].LineNumber)
	assert.Equal(t, "a", findings[1].Category)
	assert.Equal(t, 2, findings[1].LineNumber)
	assert.Equal(t, "b", findings[2].Category)
	assert.Equal(t, 1, findings[2].LineNumber)
	assert.Equal(t, "b", findings[3].Category)
	assert.Equal(t, 2, findings[3].LineNumber)
}

func TestScan_Context(t *testing.T) {
	rules := []Rule{mustRule("test", SeverityLow, `\bflag\b`, "flag")}

	tests := []struct {
		name    string
		text    string
		context string
	}{
		{"middle line", "before\nthe flag line\nafter", "before\nthe flag line\nafter"},
		{"first line", "flag here\nsecond\nthird", "flag here\nsecond"},
		{"last line", "first\nsecond\nflag here", "second\nflag here"},
		{"single line", "only flag line", "only flag line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Scan(tt.text, rules, SourceKeyword)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.context, findings[0].Context)
		})
	}
}

func TestScan_SourceTag(t *testing.T) {
	rules := []Rule{mustRule("custom/x", SeverityLow, `\bthing\b`, "thing")}

	findings := Scan("a thing", rules, SourceCustom)
	require.Len(t, findings, 1)
	assert.Equal(t, SourceCustom, findings[0].Source)
}

func TestBuiltinRules_AllValid(t *testing.T) {
	rules := BuiltinRules()
	assert.Len(t, rules, 57)
	for _, r := range rules {
		assert.True(t, ValidSeverity(r.Severity), "rule %q severity %q", r.Pattern, r.Severity)
		assert.NotEmpty(t, r.Category)
		assert.NotEmpty(t, r.Description)
	}
}
