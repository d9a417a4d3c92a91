package commands

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/internal/cli/ui"
)

const starterTemplate = `version: 1

# Nominal types. Ancestor chains are assembled from extends links.
types:
  - name: %[1]s
  - name: %[2]s
    extends: %[1]s

# Dedicated editors: one component type + attribute key pair each.
# First match in registration order wins.
dedicated:
  - component: %[2]s
    attribute: %[3]s
    factory: example.dedicated

# Type editors: matched by attribute value type, then ranked. Editors that
# declare constraint support outrank those that do not when the attribute is
# constrained.
editors:
  - type: core.Double
    constraints: [range]
    quantifier: all
    factory: example.range
  - type: core.Double
    factory: example.plain
`

// NewNewCommand creates the new command.
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Scaffold a starter registration file",
		Long: `Create a registration file with a commented starter layout: a two-type
hierarchy, one dedicated registration, and a constrained/unconstrained type
editor pair.`,
		Example: `  attrkit new
  attrkit new registrations.yaml --component acme.Clustering`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNewCommand,
	}

	cmd.Flags().String("component", "", "Component type for the dedicated example")
	cmd.Flags().String("base", "", "Base type the component extends")
	cmd.Flags().String("attribute", "", "Attribute key for the dedicated example")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")

	return cmd
}

func runNewCommand(cmd *cobra.Command, args []string) error {
	path := "attrkit.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	component, _ := cmd.Flags().GetString("component")
	base, _ := cmd.Flags().GetString("base")
	attribute, _ := cmd.Flags().GetString("attribute")

	// Prompt for anything not given as a flag.
	if component == "" {
		prompt := &survey.Input{Message: "Component type:", Default: "acme.Clustering"}
		if err := survey.AskOne(prompt, &component, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	if base == "" {
		prompt := &survey.Input{Message: "Base type it extends:", Default: "acme.ProcessingComponent"}
		if err := survey.AskOne(prompt, &base, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	if attribute == "" {
		prompt := &survey.Input{Message: "Attribute key for the dedicated example:", Default: "threshold"}
		if err := survey.AskOne(prompt, &attribute, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		overwrite := false
		prompt := &survey.Confirm{Message: fmt.Sprintf("%s exists. Overwrite?", path)}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("%s already exists", path)
		}
	}

	content := fmt.Sprintf(starterTemplate, base, component, attribute)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	ui.Success(cmd.OutOrStdout(), "created %s", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Validate it with: attrkit check -r %s\n", path)
	return nil
}
