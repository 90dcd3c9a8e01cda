package navigate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorArgs(t *testing.T) {
	loc := &Location{Line: 12, Column: 5}
	tests := []struct {
		name    string
		editor  string
		loc     *Location
		program string
		args    []string
	}{
		{"vim", "vim", loc, "vim", []string{"+12", "file"}},
		{"nvim path", "/usr/bin/nvim", loc, "/usr/bin/nvim", []string{"+12", "file"}},
		{"subl", "subl", loc, "subl", []string{"file:12:5"}},
		{"code with flags", "code --wait", loc, "code", []string{"--wait", "-g", "file:12:5"}},
		{"unknown editor", "ed", loc, "ed", []string{"file"}},
		{"no location", "vim", nil, "vim", []string{"file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, args, err := EditorArgs(tt.editor, "file", tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.program, program)
			assert.Equal(t, tt.args, args)
		})
	}

	_, _, err := EditorArgs("   ", "file", nil)
	assert.Error(t, err)
}

func TestEditorCommand(t *testing.T) {
	cmd, err := EditorCommand("subl -n", "file", &Location{Line: 1, Column: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"subl", "-n", "file:1:2"}, cmd.Args)
}

func TestDefaultEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", DefaultEditor())

	t.Setenv("VISUAL", "code --wait")
	assert.Equal(t, "code --wait", DefaultEditor())

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, "vim", DefaultEditor())
}
