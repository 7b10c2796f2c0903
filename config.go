package recanon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration read from a .recanon.yaml file.
type Config struct {
	Name   string       `yaml:"name"`
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls how command output is rendered.
type OutputConfig struct {
	Color bool `yaml:"color"`
	JSON  bool `yaml:"json"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Name: "recanon",
		Output: OutputConfig{
			Color: true,
		},
	}
}

// LoadConfig reads the configuration file at path. A missing file is not an
// error: the defaults are returned so commands work out of the box.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	config := DefaultConfig()
	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}

// WriteConfig writes config to path in YAML form, creating or truncating the
// file.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
