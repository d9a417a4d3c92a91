package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/editors"
	"github.com/attrkit/attrkit/internal/cli/ui"
)

// NewInspectCommand creates the inspect command group.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a loaded editor registry",
		Long: `Inspect the contents of a registration file as the engine sees it.

Useful for verifying registration order (which drives tie-breaks), declared
constraint support, and the assembled type hierarchy.`,
		Example: `  # List all registrations
  attrkit inspect registrations -r attrkit.yaml

  # Show the type hierarchy
  attrkit inspect types -r attrkit.yaml

  # JSON output for tooling
  attrkit inspect registrations --format json`,
	}

	cmd.PersistentFlags().StringP("format", "f", "", "Output format: table or json")

	cmd.AddCommand(newInspectRegistrationsCommand())
	cmd.AddCommand(newInspectTypesCommand())

	return cmd
}

func newInspectRegistrationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "registrations",
		Short: "List dedicated and type registrations in registration order",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, path, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			dedicated := res.Registry.Dedicated()
			typed := res.Registry.TypeEditors()

			if outputFormat(cmd) == "json" {
				payload := struct {
					Source    string                          `json:"source"`
					Dedicated []editors.DedicatedRegistration `json:"dedicated"`
					Editors   []jsonTypeRegistration          `json:"editors"`
				}{Source: path, Dedicated: dedicated, Editors: jsonTypeRegs(typed)}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Registrations from %s\n\n", path)

			table := ui.NewTable(out, "#", "COMPONENT", "ATTRIBUTE", "ID")
			for i, reg := range dedicated {
				table.AddRow(fmt.Sprintf("%d", i+1), reg.ComponentType, reg.AttributeKey, shortID(reg.ID))
			}
			fmt.Fprintf(out, "Dedicated (%d):\n", len(dedicated))
			table.Render()

			fmt.Fprintf(out, "\nType editors (%d):\n", len(typed))
			table = ui.NewTable(out, "#", "TYPE", "CONSTRAINTS", "QUANTIFIER", "ID")
			for i, reg := range typed {
				table.AddRow(fmt.Sprintf("%d", i+1), reg.ValueType,
					reg.SupportedConstraints.String(), reg.Quantifier.String(), shortID(reg.ID))
			}
			table.Render()
			return nil
		},
	}
}

func newInspectTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Show the assembled type hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, path, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			names := res.Hierarchy.Types()
			sort.Strings(names)

			if outputFormat(cmd) == "json" {
				payload := make(map[string][]string, len(names))
				for _, name := range names {
					payload[name] = res.Hierarchy.Ancestors(name)
				}
				return writeJSON(cmd, struct {
					Source string              `json:"source"`
					Types  map[string][]string `json:"types"`
				}{Source: path, Types: payload})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Types from %s\n\n", path)
			table := ui.NewTable(out, "TYPE", "ANCESTORS")
			for _, name := range names {
				table.AddRow(name, joinOrDash(res.Hierarchy.Ancestors(name)))
			}
			table.Render()
			return nil
		},
	}
}

// jsonTypeRegistration flattens constraint sets for stable JSON output.
type jsonTypeRegistration struct {
	ID          string   `json:"id"`
	ValueType   string   `json:"value_type"`
	Constraints []string `json:"constraints"`
	Quantifier  string   `json:"quantifier"`
}

func jsonTypeRegs(regs []editors.TypeRegistration) []jsonTypeRegistration {
	out := make([]jsonTypeRegistration, 0, len(regs))
	for _, reg := range regs {
		constraints := make([]string, 0, reg.SupportedConstraints.Len())
		for _, k := range reg.SupportedConstraints.Kinds() {
			constraints = append(constraints, string(k))
		}
		out = append(out, jsonTypeRegistration{
			ID:          reg.ID,
			ValueType:   reg.ValueType,
			Constraints: constraints,
			Quantifier:  reg.Quantifier.String(),
		})
	}
	return out
}

func writeJSON(cmd *cobra.Command, payload interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinOrDash(parts []string) string {
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " → ")
}
