package controllers

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/ghlink/internal/domain/commands"
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// ReportController handles the "report" subcommand.
type ReportController struct {
	command commands.Report
}

// NewReportController creates a new ReportController.
func NewReportController(command commands.Report) *ReportController {
	return &ReportController{command: command}
}

// GetBind returns the Cobra command metadata for the report controller.
func (it *ReportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "report",
		Short: "Report GitHub repositories and their OAuth connections",
		Long: `Walk the projects of the configured server snapshot, resolve the GitHub
repository behind every Git VCS root, and list the OAuth connections
usable against each repository host.

Roots whose URL references build parameters are reported as unresolved.`,
	}
}

// Execute runs the report.
func (it *ReportController) Execute(cmd *cobra.Command, _ []string) {
	setVerbosity(cmd)
	projectID, _ := cmd.Flags().GetString("project")
	recursive, _ := cmd.Flags().GetBool("recursive")
	archived, _ := cmd.Flags().GetBool("archived")
	output, _ := cmd.Flags().GetString("output")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	reports, err := it.command.Execute(context.Background(), settings, commands.ReportOptions{
		ProjectID:       projectID,
		Recursive:       recursive,
		IncludeArchived: archived,
	})
	if err != nil {
		logger.Errorf("Report failed: %v", err)
		return
	}

	if output == outputYAML {
		if writeErr := writeYAML(cmd, reports); writeErr != nil {
			logger.Errorf("Report failed: %v", writeErr)
		}
		return
	}

	for _, report := range reports {
		fmt.Fprintln(cmd.OutOrStdout(), formatReport(report))
	}
	logger.Infof("Report complete: %d VCS roots inspected", len(reports))
}

// AddFlags adds the report-specific flags to the given Cobra command.
func (it *ReportController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "Only inspect this project (default: every project)")
	cmd.Flags().Bool("recursive", false, "Include subprojects of --project")
	cmd.Flags().Bool("archived", false, "Include archived projects (requires --project)")
	cmd.Flags().StringP("output", "o", outputText, "Output format (text, yaml)")
}

func formatReport(report entities.RootReport) string {
	repository := "-"
	if report.Repository != nil {
		repository = report.Repository.String()
	}
	connections := "-"
	if len(report.Connections) > 0 {
		connections = strings.Join(report.Connections, ",")
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
		report.BuildTypeID, report.RootID, repository, report.Status, connections)
}
