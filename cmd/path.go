package cmd

import (
	"fmt"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// newPathCmd creates the 'keyview path' command.
func newPathCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("path <package>", "Print the keymap file path of a package")
	cmd.Long = `Print where the keymap of <package> lives for the selected platform.
The file is not required to exist.`
	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		path, err := s.keymapPath(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	return cmd
}
