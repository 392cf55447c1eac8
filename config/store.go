//go:build !tinygo

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads the config file at path, then applies environment overrides.
// A missing file is created with the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	bytes, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Printf("Config %s not found, writing defaults\r\n", path)
		if err := c.Save(path); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(bytes, c); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

// Save writes the config as JSON
func (c *Config) Save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0600)
}
