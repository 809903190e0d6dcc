package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "React, Node.js, Go", []string{"React", "Node.js", "Go"}},
		{"blank entries dropped", "React, Node.js,  , Go", []string{"React", "Node.js", "Go"}},
		{"trailing comma", "Go,", []string{"Go"}},
		{"empty", "", []string{}},
		{"only separators", " , ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCommaList(tt.in))
		})
	}
}

func TestJoinCommaList_RoundTrip(t *testing.T) {
	list := []string{"React", "Node.js", "Go"}

	joined := joinCommaList(list)
	assert.Equal(t, "React, Node.js, Go", joined)
	assert.Equal(t, list, splitCommaList(joined))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "Led team\nShipped v2", []string{"Led team", "Shipped v2"}},
		{"blank lines dropped", "Led team\nShipped v2\n\n", []string{"Led team", "Shipped v2"}},
		{"windows line endings", "Led team\r\nShipped v2", []string{"Led team", "Shipped v2"}},
		{"whitespace only lines", "  \nLed team\n   ", []string{"Led team"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.in))
		})
	}
}

func TestJoinLines_RoundTrip(t *testing.T) {
	list := []string{"Led team", "Shipped v2"}

	joined := joinLines(list)
	assert.Equal(t, "Led team\nShipped v2", joined)
	assert.Equal(t, list, splitLines(joined))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "long te...", fitText("long text that overflows", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "unbounded", fitText("unbounded", 0))
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("   "))
	assert.Equal(t, "value", valueOrDash("value"))
}
