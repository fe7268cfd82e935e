package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// configFile is looked up in the current directory. All fields are optional
// and flags override them.
const configFile = ".yaidip.yml"

// Config holds the tool settings a project can pin in .yaidip.yml.
type Config struct {
	Convention string `yaml:"convention"`  // "dollar" (default) or "brace"
	HeaderCall string `yaml:"header_call"` // template name for the header argument
	NoHeader   bool   `yaml:"no_header"`   // omit the synthesized header argument
}

// loadConfig reads .yaidip.yml if present. A missing file is not an error.
func loadConfig() (Config, error) {
	var cfg Config
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", configFile, err)
	}
	return cfg, nil
}
