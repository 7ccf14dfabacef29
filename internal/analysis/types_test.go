package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank(t *testing.T) {
	assert.Equal(t, 0, SeverityRank(SeverityCritical))
	assert.Equal(t, 1, SeverityRank(SeverityHigh))
	assert.Equal(t, 2, SeverityRank(SeverityMedium))
	assert.Equal(t, 3, SeverityRank(SeverityLow))
	assert.Equal(t, 4, SeverityRank("weird"), "unknown severities sink to the bottom")
}

func TestMeetsFloor(t *testing.T) {
	assert.True(t, MeetsFloor(SeverityCritical, SeverityHigh))
	assert.True(t, MeetsFloor(SeverityHigh, SeverityHigh))
	assert.False(t, MeetsFloor(SeverityMedium, SeverityHigh))
	assert.True(t, MeetsFloor(SeverityLow, SeverityLow))
	assert.False(t, MeetsFloor("weird", SeverityLow))
}

func TestModePredicates(t *testing.T) {
	assert.True(t, ModeHybrid.RunsRules())
	assert.True(t, ModeHybrid.RequiresAI())

	assert.True(t, ModeRulesOnly.RunsRules())
	assert.False(t, ModeRulesOnly.RequiresAI())

	assert.False(t, ModeAIOnly.RunsRules())
	assert.True(t, ModeAIOnly.RequiresAI())

	assert.False(t, ValidMode("turbo"))
}
