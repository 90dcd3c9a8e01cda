package cmd

import (
	"fmt"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/keyview/pkg/config"
	"github.com/spf13/cobra"
)

// newSchemaCmd creates the 'keyview schema' command.
func newSchemaCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("schema", "Print the JSON schema of the keyview config section")
	cmd.Args = cobra.NoArgs

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		data, err := config.SchemaJSON()
		if err != nil {
			return fmt.Errorf("failed to generate schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	return cmd
}
