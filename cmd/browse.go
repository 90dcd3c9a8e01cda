package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/keyview/pkg/keymap"
	"github.com/grovetools/keyview/pkg/navigate"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newBrowseCmd creates the 'keyview browse' command.
func newBrowseCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("browse", "Pick a keybinding and open the file that defines it")

	cmd.Long = `List every keybinding from the installed packages in an interactive,
filterable picker. Each entry shows the key chords, the package and the
command (and its args, when present).

Selecting an entry opens the package's keymap file in your editor,
positioned at the bound command. When stdout is not a terminal the
bindings are printed instead.`

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	}

	return cmd
}

func runBrowse(cmd *cobra.Command) error {
	s, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	bindings, err := newScanner(logger).Scan(s.root, s.ignore, s.platform)
	if err != nil {
		return fmt.Errorf("failed to scan keymaps: %w", err)
	}

	if !isInteractive() {
		return writeBindings(cmd.OutOrStdout(), bindings, formatText)
	}

	if len(bindings) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No keybindings found in %s\n", s.root)
		return nil
	}

	entries := make([][]string, len(bindings))
	for i, b := range bindings {
		entries[i] = keymap.DisplayLines(b)
	}

	idx, err := pick(fmt.Sprintf("Keybindings (%d)", len(bindings)), entries)
	if err != nil {
		return err
	}
	if idx == cancelled {
		return nil
	}

	return openBinding(cmd.Context(), s, bindings[idx], logger)
}

// openBinding opens the keymap file that defines b, at the first mention of its
// command when one can be found.
func openBinding(ctx context.Context, s settings, b keymap.KeyBinding, logger *logrus.Logger) error {
	path, err := s.keymapPath(b.Package)
	if err != nil {
		return err
	}

	loc, err := locateCommand(ctx, path, b.Command)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"file":    path,
			"command": b.Command,
			"error":   err,
		}).Debug("Opening keymap without a position")
		return openInEditor(s.editor, path, nil)
	}
	return openInEditor(s.editor, path, &loc)
}

// locateCommand finds the command as a JSON string first, then as plain text.
func locateCommand(ctx context.Context, path, command string) (navigate.Location, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	loc, err := navigate.Locate(ctx, path, `"`+command+`"`, navigate.DefaultPollConfig())
	if err == nil {
		loc.Column++ // skip the opening quote
		loc.Offset++
		return loc, nil
	}
	return navigate.Locate(ctx, path, command, navigate.DefaultPollConfig())
}

func openInEditor(editor, path string, loc *navigate.Location) error {
	editorCmd, err := navigate.EditorCommand(editor, path, loc)
	if err != nil {
		return err
	}
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
