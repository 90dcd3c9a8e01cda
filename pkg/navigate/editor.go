package navigate

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultEditor returns $VISUAL, then $EDITOR, then "vim".
func DefaultEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vim"
}

// EditorArgs returns the program and arguments that open path in editor, positioned
// at loc when it is non-nil. editor may carry its own arguments, e.g. "code --wait".
func EditorArgs(editor, path string, loc *Location) (string, []string, error) {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("no editor configured")
	}

	program := fields[0]
	args := append([]string{}, fields[1:]...)

	if loc == nil {
		return program, append(args, path), nil
	}

	position := fmt.Sprintf("%s:%d:%d", path, loc.Line, loc.Column)
	switch strings.TrimSuffix(filepath.Base(program), ".exe") {
	case "subl", "sublime_text", "zed", "hx", "helix", "micro":
		args = append(args, position)
	case "code", "code-insiders", "codium", "cursor":
		args = append(args, "-g", position)
	case "vi", "vim", "nvim", "nano", "emacs", "emacsclient", "kak", "joe", "mg":
		args = append(args, fmt.Sprintf("+%d", loc.Line), path)
	default:
		args = append(args, path)
	}
	return program, args, nil
}

// EditorCommand builds the command that opens path in editor at loc.
func EditorCommand(editor, path string, loc *Location) (*exec.Cmd, error) {
	program, args, err := EditorArgs(editor, path, loc)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}
