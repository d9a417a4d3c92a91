package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/internal/cli/ui"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a registration file",
		Long: `Load a registration file and report what the engine would see: duplicate or
cyclic type declarations, malformed quantifiers, and missing required fields
are all load errors.`,
		Example: `  attrkit check -r attrkit.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, path, err := loadRegistry(cmd)
			if err != nil {
				ui.PrintError(cmd.OutOrStdout(), err)
				return err
			}

			out := cmd.OutOrStdout()
			ui.Success(out, "%s is valid", path)
			fmt.Fprintf(out, "  %d dedicated registration(s)\n", res.Registry.NumDedicated())
			fmt.Fprintf(out, "  %d type editor(s)\n", res.Registry.NumType())
			fmt.Fprintf(out, "  %d type(s) in the hierarchy\n", len(res.Hierarchy.Types()))
			return nil
		},
	}
}
