package config

import (
	"errors"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ConfigDir string `yaml:"config_dir"`

	// Address of the workload migrator daemon. Empty means the local unix
	// socket.
	Server string `yaml:"workload_migrator_server"`
}

func NewConfig(configDir string) *Config {
	return &Config{
		ConfigDir: configDir,
	}
}

func LoadConfig(configDir string) (*Config, error) {
	ret := NewConfig(configDir)

	contents, err := os.ReadFile(path.Join(configDir, "config.yml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ret, nil
		}

		return ret, err
	}

	err = yaml.Unmarshal(contents, &ret)
	if err != nil {
		return ret, err
	}

	ret.ConfigDir = configDir

	return ret, nil
}

func (c *Config) SaveConfig() error {
	contents, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path.Join(c.ConfigDir, "config.yml"), contents, 0o644)
}
