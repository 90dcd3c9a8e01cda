package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLines(t *testing.T) {
	b := KeyBinding{
		Keys:    []string{"ctrl+k", "ctrl+b"},
		Package: "Default",
		Command: "toggle_side_bar",
	}
	assert.Equal(t, []string{
		"ctrl+k, ctrl+b",
		"Package: Default",
		"Command: toggle_side_bar",
	}, DisplayLines(b))

	b.Args = map[string]any{"forward": true, "by": "lines"}
	assert.Equal(t, []string{
		"ctrl+k, ctrl+b",
		"Package: Default",
		"Command: toggle_side_bar",
		`Args: {"by":"lines","forward":true}`,
	}, DisplayLines(b))
}

func TestIgnoreSet(t *testing.T) {
	s := NewIgnoreSet([]string{"Vintage", ""}, []string{"Markdown", "Vintage"})
	assert.Len(t, s, 2)
	assert.True(t, s.Contains("Vintage"))
	assert.True(t, s.Contains("Markdown"))
	assert.False(t, s.Contains(""))

	var none IgnoreSet
	assert.False(t, none.Contains("Vintage"))
}
