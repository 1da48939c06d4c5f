package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/mrjoshuak/go-tgif/tgif"
)

// Config holds codec defaults from the config file
// (~/.config/tgif/config.yaml unless --config overrides the path).
// Fields are pointers so "not set" is distinguishable from zero.
type Config struct {
	RemainderBits *int `yaml:"remainder_bits"`
	ChunkSize     *int `yaml:"chunk_size"`
	Workers       *int `yaml:"workers"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tgif", "config.yaml")
}

// loadConfig reads the config file named by the global --config flag, or
// the default location. A missing or unreadable file yields a zero Config.
func loadConfig(cmd *cli.Command) Config {
	path := cmd.String("config")
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	return parseConfig(data)
}

func parseConfig(data []byte) Config {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// apply fills opts with config-file defaults for flags the user did not
// set explicitly. Explicit flags always win.
func (cfg Config) apply(cmd *cli.Command, opts *tgif.Options) {
	if cfg.RemainderBits != nil && !cmd.IsSet("remainder-bits") {
		opts.RemainderBits = *cfg.RemainderBits
	}
	if cfg.ChunkSize != nil && !cmd.IsSet("chunk-size") {
		opts.ChunkSize = *cfg.ChunkSize
	}
	if cfg.Workers != nil && !cmd.IsSet("workers") {
		opts.Workers = *cfg.Workers
	}
}
