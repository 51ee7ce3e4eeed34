package config

import (
	"errors"
	"fmt"
	"net"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FuturFusion/workload-migrator/internal/util"
)

// DefaultDelayMinutes is the simulated transfer time used when a start
// request does not specify one.
const DefaultDelayMinutes = 0.1

// DaemonConfig holds the daemon settings read from config.yml in the var
// directory.
type DaemonConfig struct {
	Network struct {
		// Address the daemon listens on in addition to the local unix
		// socket. Empty disables the TCP listener.
		Address string `yaml:"address"`
	} `yaml:"network"`

	Migration struct {
		// Simulated transfer time in minutes applied when a start request
		// does not provide one.
		DefaultDelayMinutes float64 `yaml:"default_delay_minutes"`
	} `yaml:"migration"`
}

func LoadConfig() (*DaemonConfig, error) {
	c := &DaemonConfig{}
	c.Migration.DefaultDelayMinutes = DefaultDelayMinutes

	contents, err := os.ReadFile(util.VarPath("config.yml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}

		return nil, err
	}

	err = yaml.Unmarshal(contents, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func SaveConfig(c DaemonConfig) error {
	contents, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(util.VarPath("config.yml"), contents, 0o644)
}

func Validate(c DaemonConfig) error {
	if c.Network.Address != "" {
		host, _, err := net.SplitHostPort(c.Network.Address)
		if err != nil {
			return fmt.Errorf("Listen address %q is invalid: %w", c.Network.Address, err)
		}

		if host != "" {
			ip := net.ParseIP(host)
			if ip == nil {
				return fmt.Errorf("Listen address %q is invalid", c.Network.Address)
			}
		}
	}

	if c.Migration.DefaultDelayMinutes < 0 {
		return fmt.Errorf("Default delay %f is invalid, must not be negative", c.Migration.DefaultDelayMinutes)
	}

	return nil
}
