package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/ghlink/internal/domain/commands"
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// ParseController handles the "parse" subcommand.
type ParseController struct {
	command commands.Parse
}

// NewParseController creates a new ParseController.
func NewParseController(command commands.Parse) *ParseController {
	return &ParseController{command: command}
}

// GetBind returns the Cobra command metadata for the parse controller.
func (it *ParseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "parse <url>...",
		Short: "Resolve Git remote URLs to GitHub repositories",
		Long: `Resolve one or more Git remote URLs to the host, owner and name
of the repository they point to. Both HTTPS and SCP-like URLs are accepted.`,
	}
}

// Execute prints the repository of every URL given as argument.
func (it *ParseController) Execute(cmd *cobra.Command, args []string) {
	setVerbosity(cmd)
	output, _ := cmd.Flags().GetString("output")

	results := it.command.Execute(context.Background(), args)

	if output == outputYAML {
		if err := writeYAML(cmd, results); err != nil {
			logger.Errorf("Parse failed: %v", err)
		}
		return
	}

	for _, result := range results {
		if result.Repository == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tnot a GitHub repository URL\n", result.URL)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", result.URL, result.Repository)
	}
}

// AddFlags adds the parse-specific flags to the given Cobra command.
func (it *ParseController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", outputText, "Output format (text, yaml)")
}
