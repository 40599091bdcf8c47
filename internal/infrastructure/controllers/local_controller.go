package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/ghlink/internal/domain/commands"
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// LocalController handles the "local" subcommand.
type LocalController struct {
	command commands.Local
}

// NewLocalController creates a new LocalController.
func NewLocalController(command commands.Local) *LocalController {
	return &LocalController{command: command}
}

// GetBind returns the Cobra command metadata for the local controller.
func (it *LocalController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "local [path]",
		Short: "Resolve the GitHub repository of a local clone",
		Long: `Resolve the GitHub repository a remote of a local Git clone fetches from.
When a config file is available, the OAuth connections usable against the
repository host are listed too.`,
	}
}

// Execute runs the local mode.
func (it *LocalController) Execute(cmd *cobra.Command, args []string) {
	setVerbosity(cmd)
	remote, _ := cmd.Flags().GetString("remote")
	projectID, _ := cmd.Flags().GetString("project")
	output, _ := cmd.Flags().GetString("output")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
			logger.Errorf("failed to load config: %v", err)
			return
		}
		logger.Debugf("Matching no connections: %v", err)
		settings = nil
	}

	report, err := it.command.Execute(context.Background(), commands.LocalOptions{
		RepoDir:   repoDir,
		Remote:    remote,
		Settings:  settings,
		ProjectID: projectID,
	})
	if err != nil {
		logger.Errorf("Local resolution failed: %v", err)
		return
	}

	if output == outputYAML {
		if writeErr := writeYAML(cmd, report); writeErr != nil {
			logger.Errorf("Local resolution failed: %v", writeErr)
		}
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatReport(*report))
}

// AddFlags adds the local-specific flags to the given Cobra command.
func (it *LocalController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("remote", "origin", "Remote to resolve")
	cmd.Flags().String("project", "", "Only match connections available to this project")
	cmd.Flags().StringP("output", "o", outputText, "Output format (text, yaml)")
}
