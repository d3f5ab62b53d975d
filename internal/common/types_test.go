package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeRing(t *testing.T) {
	assert.Equal(t, ModePlaybook, ModeFiles.Next())
	assert.Equal(t, ModeUsage, ModePlaybook.Next())
	assert.Equal(t, ModeFiles, ModeUsage.Next())

	assert.Equal(t, ModeUsage, ModeFiles.Prev())
	assert.Equal(t, ModeFiles, ModePlaybook.Prev())
	assert.Equal(t, ModePlaybook, ModeUsage.Prev())
}

func TestModeRing_FullCycle(t *testing.T) {
	for _, meta := range AllModes {
		m := meta.Mode
		for range AllModes {
			m = m.Next()
		}
		assert.Equal(t, meta.Mode, m)
		for range AllModes {
			m = m.Prev()
		}
		assert.Equal(t, meta.Mode, m)
	}
}

func TestModeRing_InvalidWraps(t *testing.T) {
	assert.Equal(t, ModeFiles, Mode(0).Next())
	assert.Equal(t, ModeFiles, Mode(42).Next())
	assert.Equal(t, ModeUsage, Mode(0).Prev())
}

func TestModeFromOrdinal(t *testing.T) {
	for i, meta := range AllModes {
		m, ok := ModeFromOrdinal(i + 1)
		assert.True(t, ok)
		assert.Equal(t, meta.Mode, m)
	}
	_, ok := ModeFromOrdinal(0)
	assert.False(t, ok)
	_, ok = ModeFromOrdinal(4)
	assert.False(t, ok)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "FilePicker", ModeFiles.String())
	assert.Equal(t, "Playbook", ModePlaybook.String())
	assert.Equal(t, "Usage", ModeUsage.String())
	assert.Equal(t, "Unknown", Mode(9).String())
}

func TestModes(t *testing.T) {
	assert.Equal(t, []Mode{ModeFiles, ModePlaybook, ModeUsage}, Modes())
}
