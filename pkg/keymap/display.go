package keymap

import (
	"encoding/json"
	"strings"
)

// KeysText returns the binding's chords joined for display, e.g. "ctrl+k, ctrl+b".
func (b KeyBinding) KeysText() string {
	return strings.Join(b.Keys, ", ")
}

// ArgsText returns the args as compact JSON, or "" when there are none.
func (b KeyBinding) ArgsText() string {
	if b.Args == nil {
		return ""
	}
	out, err := json.Marshal(b.Args)
	if err != nil {
		return ""
	}
	return string(out)
}

// DisplayLines returns the lines a selection list shows for the binding: the chords,
// the package, the command and, when present, the args.
func DisplayLines(b KeyBinding) []string {
	lines := []string{
		b.KeysText(),
		"Package: " + b.Package,
		"Command: " + b.Command,
	}
	if args := b.ArgsText(); args != "" {
		lines = append(lines, "Args: "+args)
	}
	return lines
}
