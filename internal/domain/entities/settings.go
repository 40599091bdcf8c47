package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is a snapshot of the server configuration: the project tree with
// its VCS roots, and the OAuth connections registered in it.
type Settings struct {
	Connections []ConnectionSettings `yaml:"connections"`
	Projects    []ProjectSettings    `yaml:"projects"`
}

// ConnectionSettings describes a single OAuth connection.
type ConnectionSettings struct {
	ID         string            `yaml:"id"`
	Project    string            `yaml:"project"`  // Owning project; empty means the root project
	Provider   string            `yaml:"provider"` // "GitHub", "GHE", ...
	Name       string            `yaml:"name"`
	Parameters map[string]string `yaml:"parameters"` // Inline, ${ENV_VAR}, or file path for the secret
}

// ProjectSettings describes a project and its nested projects.
type ProjectSettings struct {
	ID         string              `yaml:"id"`
	Archived   bool                `yaml:"archived"`
	BuildTypes []BuildTypeSettings `yaml:"build_types"`
	Projects   []ProjectSettings   `yaml:"projects"`
}

// BuildTypeSettings describes a build configuration.
type BuildTypeSettings struct {
	ID       string            `yaml:"id"`
	VcsRoots []VcsRootSettings `yaml:"vcs_roots"`
}

// VcsRootSettings describes a VCS root attached to a build configuration.
type VcsRootSettings struct {
	ID         string            `yaml:"id"`
	VcsName    string            `yaml:"vcs_name"`
	Properties map[string]string `yaml:"properties"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file, expanding environment variables
// in connection parameters and reading client secrets from files.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for i := range settings.Connections {
		params := settings.Connections[i].Parameters
		for key, value := range params {
			params[key] = expandEnv(value)
		}
		if secret, ok := params[ParamClientSecret]; ok {
			params[ParamClientSecret] = readSecretFile(secret)
		}
	}

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".ghlink.yaml",
		".ghlink.yml",
		"ghlink.yaml",
		"ghlink.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv expands ${ENV_VAR} references. Unset variables expand to "".
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// readSecretFile returns the trimmed content of the file at value if it
// exists, otherwise value itself.
func readSecretFile(value string) string {
	if value == "" {
		return value
	}

	info, statErr := os.Stat(value)
	if statErr != nil || info.IsDir() {
		return value
	}

	data, readErr := os.ReadFile(value)
	if readErr != nil {
		logger.Warnf("Failed to read secret file %q: %v", value, readErr)
		return value
	}
	logger.Infof("Read client secret from file %q", value)
	return strings.TrimSpace(string(data))
}

// validate checks for required settings values.
func validate(settings *Settings) error {
	for i, c := range settings.Connections {
		if c.ID == "" {
			return fmt.Errorf("connections[%d].id is required", i)
		}
		if c.Provider == "" {
			return fmt.Errorf("connections[%d].provider is required", i)
		}
	}

	seen := make(map[string]bool)
	return validateProjects(settings.Projects, "projects", seen)
}

func validateProjects(projects []ProjectSettings, path string, seen map[string]bool) error {
	for i, p := range projects {
		at := fmt.Sprintf("%s[%d]", path, i)
		if p.ID == "" {
			return fmt.Errorf("%s.id is required", at)
		}
		if seen[p.ID] {
			return fmt.Errorf("%s.id %q is duplicated", at, p.ID)
		}
		seen[p.ID] = true

		for j, bt := range p.BuildTypes {
			if bt.ID == "" {
				return fmt.Errorf("%s.build_types[%d].id is required", at, j)
			}
			for k, root := range bt.VcsRoots {
				if root.ID == "" {
					return fmt.Errorf("%s.build_types[%d].vcs_roots[%d].id is required", at, j, k)
				}
			}
		}

		if err := validateProjects(p.Projects, at+".projects", seen); err != nil {
			return err
		}
	}
	return nil
}
