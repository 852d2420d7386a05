package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"atomc/common"
	"atomc/report"
	"atomc/util"

	"github.com/pelletier/go-toml"
)

// Config is the checker configuration as it is encoded in TOML.  A project
// keeps it in an `atomc.toml` file next to its sources.
type Config struct {
	// LogLevel is the name of the reporter log level.
	LogLevel string `toml:"log-level"`

	// Color enables colored output.
	Color bool `toml:"color"`

	// WarningsAsErrors makes any warning fail the check.
	WarningsAsErrors bool `toml:"warnings-as-errors"`

	// DumpSymbols prints the global symbol table after a successful check.
	DumpSymbols bool `toml:"dump-symbols"`

	// MaxErrors is the number of files with errors after which a multi-file
	// check stops.  Zero means no limit.
	MaxErrors int `toml:"max-errors"`

	// Version is the atomc version the file was written for.
	Version string `toml:"atomc-version"`
}

// logLevelNames lists the log levels a config file may select.
var logLevelNames = []string{"silent", "error", "warn", "verbose"}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		LogLevel: "verbose",
		Color:    true,
		Version:  common.AtomCVersion,
	}
}

// Load loads and validates the config file at path.  Options missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	conf := Default()
	if err := toml.Unmarshal(buff, conf); err != nil {
		return nil, fmt.Errorf("error decoding %s: %s", filepath.Base(path), err)
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %s", filepath.Base(path), err)
	}

	return conf, nil
}

// Find loads the config file in dir if it has one.  Otherwise, the default
// configuration is returned.
func Find(dir string) (*Config, error) {
	path := filepath.Join(dir, common.ConfigFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// validate checks that the config values are usable.
func (c *Config) validate() error {
	if !util.Contains(logLevelNames, c.LogLevel) {
		return fmt.Errorf("unknown log level `%s`", c.LogLevel)
	}

	if c.MaxErrors < 0 {
		return errors.New("max-errors cannot be negative")
	}

	if c.Version != common.AtomCVersion {
		report.ReportWarning(
			"config",
			fmt.Sprintf("config file was written for atomc v%s but this is v%s", c.Version, common.AtomCVersion),
		)
	}

	return nil
}

// Init creates a config file with the default values in dir.  An existing
// config file is never overwritten.
func Init(dir string) (string, error) {
	path := filepath.Join(dir, common.ConfigFileName)

	_, err := os.Stat(path)
	if err == nil {
		return "", errors.New("config file already exists")
	}

	if !os.IsNotExist(err) {
		return "", fmt.Errorf("config file error: %s", err.Error())
	}

	return path, Default().Save(path)
}

// Save encodes the config to the file at path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}

// ReporterLogLevel returns the reporter log level the config selects.
func (c *Config) ReporterLogLevel() int {
	level, _ := report.LogLevelByName(c.LogLevel)
	return level
}
