package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

var rootCmd = cli.NewStandardCommand("keyview", "Browse and jump to the keybindings installed editor packages define")

// flags holds the persistent flags shared by all subcommands.
var flags flagValues

func init() {
	rootCmd.Long = `Browse every keybinding defined by the packages installed in the editor.

keyview scans the Packages directory, reads each package's
'Default (<Platform>).sublime-keymap' file (comments allowed), and lists the
bindings. Selecting one opens its keymap file at the bound command.

When run without a subcommand, opens the interactive binding browser.`

	rootCmd.PersistentFlags().StringVar(&flags.packagesPath, "packages-path", "", "Packages directory to scan (default: the editor's standard location)")
	rootCmd.PersistentFlags().StringSliceVar(&flags.ignore, "ignore", nil, "Package names to skip (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flags.platform, "platform", "", "Keymap platform to read: osx, linux or windows (default: host)")
	rootCmd.PersistentFlags().StringVar(&flags.editor, "editor", "", "Editor command used to open keymap files")
	rootCmd.PersistentFlags().BoolVar(&flags.noPreferences, "no-preferences", false, "Ignore ignored_packages from the editor's user preferences")

	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	}

	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newPackagesCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSchemaCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
