package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/grovetools/core/cli"
	"github.com/grovetools/keyview/pkg/keymap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by 'keyview list'.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// bindingsDocument wraps the bindings so they encode as a TOML array of tables.
type bindingsDocument struct {
	Bindings []keymap.KeyBinding `toml:"bindings"`
}

func newListCmd() *cobra.Command {
	var format string

	cmd := cli.NewStandardCommand("list", "Print all keybindings without the interactive picker")
	cmd.Long = `Scan the installed packages and print every keybinding.

Formats:
  text  one binding per line: keys, package, command, args
  json  array of {keys, package, command, args}
  yaml  same fields as json
  toml  [[bindings]] tables`

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, yaml or toml")
	cmd.Args = cobra.NoArgs

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		bindings, err := newScanner(logger).Scan(s.root, s.ignore, s.platform)
		if err != nil {
			return fmt.Errorf("failed to scan keymaps: %w", err)
		}

		if cli.GetOptions(cmd).JSONOutput {
			format = formatJSON
		}
		return writeBindings(cmd.OutOrStdout(), bindings, format)
	}

	return cmd
}

// writeBindings encodes bindings to w in the given format.
func writeBindings(w io.Writer, bindings []keymap.KeyBinding, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		out, err := json.MarshalIndent(bindings, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	case formatYAML:
		out, err := yaml.Marshal(bindings)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err

	case formatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(bindingsDocument{Bindings: bindings}); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err

	case formatText, "":
		return writeBindingsText(w, bindings)

	default:
		return fmt.Errorf("unknown format %q (want text, json, yaml or toml)", format)
	}
}

func writeBindingsText(w io.Writer, bindings []keymap.KeyBinding) error {
	keysWidth, packageWidth := 0, 0
	for _, b := range bindings {
		keysWidth = max(keysWidth, len(b.KeysText()))
		packageWidth = max(packageWidth, len(b.Package))
	}

	for _, b := range bindings {
		// Pad before styling to maintain alignment
		line := fmt.Sprintf("%s  %s  %s",
			keysStyle.Render(fmt.Sprintf("%-*s", keysWidth, b.KeysText())),
			packageStyle.Render(fmt.Sprintf("%-*s", packageWidth, b.Package)),
			b.Command)
		if args := b.ArgsText(); args != "" {
			line += "  " + faintStyle.Render(args)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
