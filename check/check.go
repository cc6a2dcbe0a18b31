// Package check wires the formula engine to the filesystem: configuration
// loading, batch processing of files and directories, and the result cache.
package check

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/formalverse/flin/internal"
	tt "github.com/formalverse/flin/internal/types"
)

// DefaultConfigPath is consulted when no configuration path is given.
const DefaultConfigPath = ".flin.yaml"

// Config is the on-disk configuration for flin.
type Config struct {
	Name       string                   `yaml:"name"`
	Notation   string                   `yaml:"notation"`
	Extensions []string                 `yaml:"extensions"`
	Basis      []string                 `yaml:"basis"`
	Rewrites   map[string]string        `yaml:"rewrites"`
	MaxDepth   int                      `yaml:"max-depth"`
	Rules      map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig returns the configuration used when no file is present:
// infix notation, .prop files, and no basis or depth restrictions.
func DefaultConfig() Config {
	return Config{
		Name:       "flin",
		Notation:   internal.NotationInfix,
		Extensions: internal.DefaultExtensions,
		Rules:      map[string]tt.ConfigRule{},
	}
}

// CheckEngine is the part of the engine the processing functions need.
type CheckEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
}

// New builds an engine from the configuration file at configurationPath.
// A missing file is not an error; defaults apply.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}

	engine, err := internal.NewEngine(internal.Options{
		Notation:   config.Notation,
		Basis:      config.Basis,
		Rewrites:   config.Rewrites,
		MaxDepth:   config.MaxDepth,
		Extensions: config.Extensions,
	})
	if err != nil {
		return nil, err
	}

	for name, rule := range config.Rules {
		if rule.Disabled {
			engine.IgnoreRule(name)
		}
	}
	return engine, nil
}

func parseConfigurationFile(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if len(config.Extensions) == 0 {
		config.Extensions = internal.DefaultExtensions
	}
	return config, nil
}
