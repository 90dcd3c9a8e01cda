package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/keyview/pkg/keymap"
	"github.com/spf13/cobra"
)

// newCheckCmd creates the 'keyview check' command.
func newCheckCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("check", "Report key sequences claimed by more than one package")

	cmd.Long = `Scan all packages and report key sequences that different packages bind
to different commands.

Duplicates inside one package are NOT reported because the editor usually
separates them with context rules.`

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd)
	}

	return cmd
}

func runCheck(cmd *cobra.Command) error {
	s, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	t := theme.DefaultTheme
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, t.Header.Render(theme.IconGear+" Keybindings Check"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, t.Muted.Render("Scanning "+s.root+"..."))

	bindings, err := newScanner(logger).Scan(s.root, s.ignore, s.platform)
	if err != nil {
		return fmt.Errorf("failed to scan keymaps: %w", err)
	}

	counts := keymap.CountByPackage(bindings)
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out)
	for _, name := range names {
		fmt.Fprintf(out, "  %-30s %d bindings\n", name, counts[name])
	}
	fmt.Fprintln(out)

	conflicts := keymap.DetectConflicts(bindings)
	if len(conflicts) == 0 {
		fmt.Fprintln(out, t.Success.Render(theme.IconSuccess+" No key sequence is claimed by more than one package"))
		return nil
	}

	fmt.Fprintf(out, "%s %s\n",
		t.Error.Render(theme.IconError),
		t.Error.Render(fmt.Sprintf("%d conflict(s)", len(conflicts))))
	for _, c := range conflicts {
		var uses []string
		for _, b := range c.Bindings {
			uses = append(uses, b.Package+": "+b.Command)
		}
		fmt.Fprintf(out, "     %s: %s\n",
			t.Highlight.Render(c.Keys),
			strings.Join(uses, ", "))
	}

	return nil
}
