package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeHeldRevoicesDetectedChord(t *testing.T) {
	assert := assert.New(t)

	line, ok := describeHeld([]int{60, 64, 67})
	assert.True(ok)
	assert.Equal("C [60 64 67] -> [G3 C4 E4]", line)

	line, ok = describeHeld([]int{50, 53, 57, 60})
	assert.True(ok)
	assert.Equal("Dm7 [50 53 57 60] -> [A3 C4 D4 F4]", line)
}

func TestDescribeHeldUnknownChord(t *testing.T) {
	assert := assert.New(t)

	line, ok := describeHeld([]int{60, 61, 62, 63})
	assert.True(ok)
	assert.Equal("? [60 61 62 63]", line)
}

func TestDescribeHeldNeedsTwoNotes(t *testing.T) {
	assert := assert.New(t)

	_, ok := describeHeld([]int{60})
	assert.False(ok)
	_, ok = describeHeld(nil)
	assert.False(ok)
}
