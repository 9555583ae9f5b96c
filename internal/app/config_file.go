package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags and env.
type FileConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	From string `yaml:"from"`
	To   string `yaml:"to"`

	Assistant struct {
		Name string `yaml:"name"`
	} `yaml:"assistant"`

	Verbose bool `yaml:"verbose"`
}

// LoadFileConfig reads a YAML config file. A missing path returns a zero
// config and no error so the file stays optional.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig populates unset fields of cfg from fc. Explicit cfg values
// take precedence over the file.
func ApplyFileConfig(fc FileConfig, cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.From == "" {
		cfg.From = fc.From
	}
	if cfg.To == "" {
		cfg.To = fc.To
	}
	if cfg.AssistantName == "" {
		cfg.AssistantName = fc.Assistant.Name
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
