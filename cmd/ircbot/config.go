package main

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/spirilis/ircbot"
)

// config is the on-disk bot configuration: the engine settings plus what the
// built-in commands need.
type config struct {
	ircbot.Config `yaml:",inline"`

	// Admins may run say and quit.
	Admins []string `yaml:"admins"`

	// LogLevel is an hclog level name.
	LogLevel string `yaml:"log_level"`
}

func parseConfig(data []byte) (*config, error) {
	var c config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if c.Nick == "" || c.Server == "" {
		return nil, fmt.Errorf("parse config: server and nick are required")
	}

	c.Config = c.Config.WithDefaults()
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	return &c, nil
}

func loadConfig(path string) (*config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return parseConfig(data)
}
