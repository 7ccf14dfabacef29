package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeSpeakers_Basic(t *testing.T) {
	speakers := AttributeSpeakers("Alice: hello\nhow are you\nBob: fine")
	require.Len(t, speakers, 3)
	assert.Equal(t, "Alice", speakers[0])
	assert.Equal(t, "Alice", speakers[1], "current speaker persists")
	assert.Equal(t, "Bob", speakers[2])
}

func TestAttributeSpeakers_Conventions(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"name colon", "Alice: hello", "Alice"},
		{"bracketed", "[Bob Smith]: hello there", "Bob Smith"},
		{"dash", "Carol - I disagree", "Carol"},
		{"speaker numbered", "Speaker 2: next point", "Speaker 2"},
		{"speaker lowercase", "speaker 3: and another", "Speaker 3"},
		{"two word name", "Mary Anne: so anyway", "Mary Anne"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speakers := AttributeSpeakers(tt.line)
			require.Len(t, speakers, 1)
			assert.Equal(t, tt.want, speakers[0])
		})
	}
}

func TestAttributeSpeakers_BeforeFirstLabel(t *testing.T) {
	speakers := AttributeSpeakers("no label here\nstill none\nDave: now labeled")
	assert.Equal(t, "", speakers[0])
	assert.Equal(t, "", speakers[1])
	assert.Equal(t, "Dave", speakers[2])
}

func TestAttributeSpeakers_UnlabeledTextKeepsSpeaker(t *testing.T) {
	text := "Eve: first point\ncontinuing the thought\nand more\nFrank - rebuttal\nmore rebuttal"
	speakers := AttributeSpeakers(text)
	assert.Equal(t, []string{"Eve", "Eve", "Eve", "Frank", "Frank"}, speakers)
}

func TestAttributeSpeakers_HyphenatedWordIsNotALabel(t *testing.T) {
	// "well-known" must not read as a "Name - " label.
	speakers := AttributeSpeakers("Greta: intro\nwell-known fact follows")
	assert.Equal(t, "Greta", speakers[1])
}

func TestSpeakerForLine_OutOfRange(t *testing.T) {
	speakers := AttributeSpeakers("Ann: hi")
	assert.Equal(t, "", speakerForLine(speakers, 0), "ai hint 0 attributes to no one")
	assert.Equal(t, "", speakerForLine(speakers, 99))
	assert.Equal(t, "Ann", speakerForLine(speakers, 1))
}
