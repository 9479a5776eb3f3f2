package eventmodels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ScreenerConfigYAML struct {
	Thresholds          CandidateThresholds `yaml:"thresholds"`
	OptionType          OptionType          `yaml:"optionType"`
	MaxDaysToExpiration int                 `yaml:"maxDaysToExpiration"`
	RequestsPerSecond   float64             `yaml:"requestsPerSecond"`
	MaxConcurrency      int                 `yaml:"maxConcurrency"`
	DefaultWatchlist    []string            `yaml:"defaultWatchlist"`
}

func (c *ScreenerConfigYAML) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("ScreenerConfigYAML: %w", err)
	}

	if err := c.OptionType.Validate(); err != nil {
		return fmt.Errorf("ScreenerConfigYAML: %w", err)
	}

	if c.MaxDaysToExpiration <= 0 {
		return fmt.Errorf("ScreenerConfigYAML: maxDaysToExpiration must be positive")
	}

	return nil
}

func DefaultScreenerConfig() ScreenerConfigYAML {
	return ScreenerConfigYAML{
		Thresholds:          DefaultCandidateThresholds(),
		OptionType:          OptionTypePut,
		MaxDaysToExpiration: 45,
		RequestsPerSecond:   5,
		MaxConcurrency:      4,
	}
}

// LoadScreenerConfig overlays the YAML file on top of the defaults.
func LoadScreenerConfig(path string) (ScreenerConfigYAML, error) {
	config := DefaultScreenerConfig()

	bytes, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("LoadScreenerConfig: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return config, fmt.Errorf("LoadScreenerConfig: failed to unmarshal %s: %w", path, err)
	}

	config.OptionType = NewOptionType(string(config.OptionType))

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("LoadScreenerConfig: %w", err)
	}

	return config, nil
}
