package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const FilePath = "configuration/configuration.yaml"

type Config struct {
	ScannerSettings ScannerSettings `yaml:"scanner"`
	CommandSettings CommandSettings `yaml:"commands"`
	ExportSettings  ExportSettings  `yaml:"export"`
}

type ScannerSettings struct {
	ProjectDirs []string `yaml:"project_dirs"`
}

// A zero Timeout lets external commands run until they exit.
type CommandSettings struct {
	Npm              string        `yaml:"npm"`
	Next             string        `yaml:"next"`
	Timeout          time.Duration `yaml:"timeout"`
	FailureThreshold uint32        `yaml:"failure_threshold"`
}

type ExportSettings struct {
	Directory string `yaml:"directory"`
}

func Default() *Config {
	return &Config{
		ScannerSettings: ScannerSettings{
			ProjectDirs: []string{"."},
		},
		CommandSettings: CommandSettings{
			Npm:              "npm",
			Next:             "next",
			FailureThreshold: 5,
		},
		ExportSettings: ExportSettings{
			Directory: "./export",
		},
	}
}

// Load reads the configuration at path. An empty path falls back to FilePath and
// tolerates the file being absent.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = FilePath
	}

	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if len(c.ScannerSettings.ProjectDirs) == 0 {
		c.ScannerSettings.ProjectDirs = defaults.ScannerSettings.ProjectDirs
	}
	if c.CommandSettings.Npm == "" {
		c.CommandSettings.Npm = defaults.CommandSettings.Npm
	}
	if c.CommandSettings.Next == "" {
		c.CommandSettings.Next = defaults.CommandSettings.Next
	}
	if c.CommandSettings.FailureThreshold == 0 {
		c.CommandSettings.FailureThreshold = defaults.CommandSettings.FailureThreshold
	}
	if c.ExportSettings.Directory == "" {
		c.ExportSettings.Directory = defaults.ExportSettings.Directory
	}
}
