package cmd

import (
	"fmt"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// newPackagesCmd creates the 'keyview packages' command.
func newPackagesCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("packages", "Pick a package with a keymap and open it")

	cmd.Long = `List the installed packages that ship a keymap for the current platform
and open the chosen package's keymap file. Keymap files are not parsed,
so packages with malformed keymaps are listed too.`

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		packages, err := newScanner(logger).ListPackagesWithKeymap(s.root, s.ignore, s.platform)
		if err != nil {
			return fmt.Errorf("failed to list packages: %w", err)
		}

		if !isInteractive() {
			for _, p := range packages {
				fmt.Fprintln(cmd.OutOrStdout(), p.Name)
			}
			return nil
		}

		if len(packages) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No packages with a keymap found in %s\n", s.root)
			return nil
		}

		entries := make([][]string, len(packages))
		for i, p := range packages {
			entries[i] = []string{p.Name, p.KeymapFilePath}
		}

		idx, err := pick(fmt.Sprintf("Packages (%d)", len(packages)), entries)
		if err != nil {
			return err
		}
		if idx == cancelled {
			return nil
		}

		path, err := s.keymapPath(packages[idx].Name)
		if err != nil {
			return err
		}
		return openInEditor(s.editor, path, nil)
	}

	return cmd
}
