package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRulesFile_JSON(t *testing.T) {
	path := writeRulesFile(t, "rules.json", `[
		{"category": "custom/codenames", "severity": "critical", "pattern": "\\bproject falcon\\b", "description": "Codename leak"},
		{"pattern": "\\bacme corp\\b"}
	]`)

	rules, err := LoadRulesFile(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "custom/codenames", rules[0].Category)
	assert.Equal(t, SeverityCritical, rules[0].Severity)

	// Omitted fields take defaults.
	assert.Equal(t, "custom", rules[1].Category)
	assert.Equal(t, SeverityMedium, rules[1].Severity)
	assert.Equal(t, "Custom rule match", rules[1].Description)
}

func TestLoadRulesFile_YAML(t *testing.T) {
	path := writeRulesFile(t, "rules.yaml", `
- category: custom/competitors
  severity: high
  pattern: \bglobex\b
  description: Competitor mention
- pattern: \binitech\b
`)

	rules, err := LoadRulesFile(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "custom/competitors", rules[0].Category)
	assert.Equal(t, SeverityHigh, rules[0].Severity)
	assert.Equal(t, "custom", rules[1].Category)
}

func TestLoadRulesFile_LoadedRulesScan(t *testing.T) {
	path := writeRulesFile(t, "rules.json",
		`[{"pattern": "\\bglobex\\b", "severity": "low"}]`)

	rules, err := LoadRulesFile(path)
	require.NoError(t, err)

	findings := Scan("call GLOBEX tomorrow", rules, SourceCustom)
	require.Len(t, findings, 1)
	assert.Equal(t, "GLOBEX", findings[0].MatchedText)
}

func TestLoadRulesFile_Missing(t *testing.T) {
	_, err := LoadRulesFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadRulesFile_NoPattern(t *testing.T) {
	path := writeRulesFile(t, "rules.json", `[{"category": "custom"}]`)
	_, err := LoadRulesFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pattern")
}

func TestLoadRulesFile_BadRegex(t *testing.T) {
	path := writeRulesFile(t, "rules.json", `[{"pattern": "[unclosed"}]`)
	_, err := LoadRulesFile(path)
	assert.Error(t, err)
}

func TestLoadRulesFile_Malformed(t *testing.T) {
	path := writeRulesFile(t, "rules.json", `{not json`)
	_, err := LoadRulesFile(path)
	assert.Error(t, err)
}

func TestRuleCompile_CaseInsensitive(t *testing.T) {
	r := Rule{Pattern: `\bhello\b`}
	require.NoError(t, r.Compile())
	assert.NotEmpty(t, r.re.FindAllStringIndex("HELLO there", -1))
}
