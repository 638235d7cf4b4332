// Package config holds the paths and logging settings shared by the dataset
// builder and the trainer. Defaults reproduce the fixed layout
// data/emissions.csv -> output/; an optional HCL file can override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/logging"
)

// DefaultFile is read from the working directory when it exists and no
// explicit path is given.
const DefaultFile = "enginefit.hcl"

const (
	DefaultRawCSV    = "data/emissions.csv"
	DefaultOutputDir = "output"
	DefaultCleanCSV  = "clean_engine_perf.csv"
)

// Config holds all settings for one pipeline run.
type Config struct {
	RawCSV       string
	OutputDir    string
	CleanCSV     string // file name inside OutputDir, or an absolute/relative path with a directory
	WriteParquet bool
	LogLevel     string
	LogFormat    string
}

// fileConfig mirrors Config for HCL decoding; absent attributes keep defaults.
type fileConfig struct {
	RawCSV       string `hcl:"raw_csv,optional"`
	OutputDir    string `hcl:"output_dir,optional"`
	CleanCSV     string `hcl:"clean_csv,optional"`
	WriteParquet bool   `hcl:"write_parquet,optional"`
	LogLevel     string `hcl:"log_level,optional"`
	LogFormat    string `hcl:"log_format,optional"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RawCSV:    DefaultRawCSV,
		OutputDir: DefaultOutputDir,
		CleanCSV:  DefaultCleanCSV,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load returns the defaults overlaid with the HCL file at path. An empty path
// means DefaultFile, which is optional; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config file: %w", err)
	}

	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.merge(fc)
	return cfg, cfg.Validate()
}

func (c *Config) merge(fc fileConfig) {
	if fc.RawCSV != "" {
		c.RawCSV = fc.RawCSV
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.CleanCSV != "" {
		c.CleanCSV = fc.CleanCSV
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	c.WriteParquet = c.WriteParquet || fc.WriteParquet
}

// Validate rejects empty paths and unknown logging settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RawCSV) == "" {
		return errors.New("config: raw_csv cannot be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("config: output_dir cannot be empty")
	}
	if strings.TrimSpace(c.CleanCSV) == "" {
		return errors.New("config: clean_csv cannot be empty")
	}
	if err := logging.Validate(c.LogLevel, c.LogFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// CleanCSVPath resolves the clean dataset location. A bare file name lives
// in OutputDir.
func (c Config) CleanCSVPath() string {
	if filepath.Base(c.CleanCSV) == c.CleanCSV {
		return filepath.Join(c.OutputDir, c.CleanCSV)
	}
	return c.CleanCSV
}

// ParquetPath is the clean dataset path with a .parquet extension, or empty
// when the Parquet copy is disabled.
func (c Config) ParquetPath() string {
	if !c.WriteParquet {
		return ""
	}
	p := c.CleanCSVPath()
	return strings.TrimSuffix(p, filepath.Ext(p)) + ".parquet"
}
