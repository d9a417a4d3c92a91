// Package commands wires the attrkit command tree.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "attrkit",
		Short: "Attribute editor resolution engine and tooling",
		Long: color.CyanString(`AttrKit - attribute editor resolution

AttrKit resolves which registered editor is responsible for a component
attribute: dedicated registrations (component + attribute) take precedence,
then type registrations filtered by type compatibility and constraint
satisfaction.

Registrations are declared in a YAML or JSON file and loaded once at startup;
resolution is a pure in-memory computation.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("registry", "r", "", "Registration file (default from .attrkit.yaml or attrkit.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log loader diagnostics to stderr")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewInspectCommand())
	rootCmd.AddCommand(NewResolveCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewNewCommand())

	return rootCmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			title := color.New(color.FgCyan, color.Bold)
			title.Fprint(cmd.OutOrStdout(), "AttrKit version: ")
			cmd.Println(Version)
			title.Fprint(cmd.OutOrStdout(), "Git commit: ")
			cmd.Println(GitCommit)
			title.Fprint(cmd.OutOrStdout(), "Build date: ")
			cmd.Println(BuildDate)
			title.Fprint(cmd.OutOrStdout(), "Go version: ")
			cmd.Println(runtime.Version())
		},
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errColor := color.New(color.FgRed, color.Bold)
		errColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
