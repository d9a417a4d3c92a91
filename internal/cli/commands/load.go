package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/attrkit/attrkit/internal/cli/config"
	"github.com/attrkit/attrkit/loader"
)

// loadRegistry reads the registration file named by the --registry flag or
// the CLI config and builds the registry from it. Factories are stubbed: the
// CLI only ever reports which registration wins, it never renders an editor.
func loadRegistry(cmd *cobra.Command) (*loader.Result, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	path, _ := cmd.Flags().GetString("registry")
	if path == "" {
		path = cfg.Registry
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || cfg.NoColor {
		color.NoColor = true
	}

	logger := zap.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			return nil, "", fmt.Errorf("create logger: %w", err)
		}
		defer devLogger.Sync()
		logger = devLogger
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read registrations %s: %w", path, err)
	}

	res, err := loader.LoadBytes(data, loader.Options{
		AllowMissingFactories: true,
		Logger:                logger,
	})
	if err != nil {
		return nil, "", fmt.Errorf("load registrations %s: %w", path, err)
	}
	return res, path, nil
}

// outputFormat returns the effective output format for a command.
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	if format != "" {
		return format
	}
	if cfg, err := config.Load(); err == nil {
		return cfg.Output
	}
	return "table"
}
