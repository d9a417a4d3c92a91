package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/editors"
	"github.com/attrkit/attrkit/internal/cli/ui"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <owner-type> <attribute-key>",
		Short: "Resolve which editor registration serves an attribute",
		Long: `Run the resolution algorithm for a single attribute and report the winning
registration. Dedicated registrations win outright; otherwise type
registrations are filtered by compatibility and constraint satisfaction and
ranked.`,
		Example: `  # Unconstrained double attribute
  attrkit resolve acme.Clustering threshold --type core.Double

  # Constrained attribute
  attrkit resolve acme.Clustering threshold --type core.Double --constraint range

  # JSON output
  attrkit resolve acme.Clustering threshold --type core.Double --format json`,
		Args: cobra.ExactArgs(2),
		RunE: runResolveCommand,
	}

	cmd.Flags().StringP("type", "t", "", "Declared value type of the attribute (required)")
	cmd.Flags().StringArrayP("constraint", "c", nil, "Constraint kind on the attribute (repeatable)")
	cmd.Flags().StringP("format", "f", "", "Output format: table or json")
	cmd.MarkFlagRequired("type")

	return cmd
}

func runResolveCommand(cmd *cobra.Command, args []string) error {
	res, _, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	declaredType, _ := cmd.Flags().GetString("type")
	constraints, _ := cmd.Flags().GetStringArray("constraint")

	kinds := make([]editors.ConstraintKind, 0, len(constraints))
	for _, c := range constraints {
		kinds = append(kinds, editors.ConstraintKind(c))
	}

	ownerType := args[0]
	attr := editors.AttributeDescriptor{
		Key:          args[1],
		DeclaredType: declaredType,
		Constraints:  editors.NewConstraintSet(kinds...),
	}

	resolver := editors.NewResolver(res.Registry, res.Hierarchy)
	sel, err := resolver.Select(ownerType, attr)
	if err != nil {
		if outputFormat(cmd) == "json" {
			if werr := writeJSON(cmd, map[string]string{"error": err.Error()}); werr != nil {
				return werr
			}
			return err
		}
		ui.PrintError(cmd.OutOrStdout(), err)
		return err
	}

	if outputFormat(cmd) == "json" {
		return writeJSON(cmd, resolutionReport(ownerType, attr, sel))
	}

	out := cmd.OutOrStdout()
	label := color.New(color.Bold, color.FgCyan)
	if sel.Dedicated != nil {
		ui.Success(out, "dedicated editor for %s.%s", sel.Dedicated.ComponentType, sel.Dedicated.AttributeKey)
		label.Fprint(out, "Registration: ")
		fmt.Fprintln(out, shortID(sel.Dedicated.ID))
	} else {
		ui.Success(out, "type editor for %s", sel.Type.ValueType)
		label.Fprint(out, "Registration: ")
		fmt.Fprintln(out, shortID(sel.Type.ID))
		label.Fprint(out, "Supported constraints: ")
		fmt.Fprintln(out, sel.Type.SupportedConstraints)
		label.Fprint(out, "Quantifier: ")
		fmt.Fprintln(out, sel.Type.Quantifier)
	}
	return nil
}

func resolutionReport(ownerType string, attr editors.AttributeDescriptor, sel editors.Selection) interface{} {
	report := struct {
		OwnerType string                         `json:"owner_type"`
		Attribute editors.AttributeDescriptor    `json:"attribute"`
		Kind      string                         `json:"kind"`
		Dedicated *editors.DedicatedRegistration `json:"dedicated,omitempty"`
		Type      *jsonTypeRegistration          `json:"type,omitempty"`
	}{OwnerType: ownerType, Attribute: attr}

	if sel.Dedicated != nil {
		report.Kind = "dedicated"
		report.Dedicated = sel.Dedicated
	} else {
		report.Kind = "type"
		regs := jsonTypeRegs([]editors.TypeRegistration{*sel.Type})
		report.Type = &regs[0]
	}
	return report
}
