package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// loadSettings loads the settings file named by --config, falling back to the
// default locations.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w\nSpecify one with --config or create ghlink.yaml",
				err,
			)
		}
	}

	logger.Infof("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}

// setVerbosity switches to debug logging when --verbose is set.
func setVerbosity(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
}

// writeYAML marshals value to the command's output stream.
func writeYAML(cmd *cobra.Command, value any) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	defer encoder.Close()
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
