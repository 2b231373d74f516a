package urlcomplete

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk catalog configuration
type Config struct {
	TLDs           []string `yaml:"tlds"`
	MaxSuggestions int      `yaml:"max_suggestions,omitempty"`
	MinInputLength int      `yaml:"min_input_length,omitempty"`
}

// DefaultConfig is used to fill options that were not set explicitly
var DefaultConfig = Config{
	TLDs:           DefaultTLDs(),
	MaxSuggestions: DefaultMaxSuggestions,
	MinInputLength: DefaultMinInputLength,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
