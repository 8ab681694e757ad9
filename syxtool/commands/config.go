package commands

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds syxtool settings. Values come from DefaultConfig, then the
// optional TOML file, then command line flags.
type Config struct {
	LogLevel    string
	OutputDir   string
	SplitDigits int
	DumpFormat  string
}

type fileConfig struct {
	LogLevel    string `toml:"log_level"`
	OutputDir   string `toml:"output_dir"`
	SplitDigits int    `toml:"split_digits"`
	DumpFormat  string `toml:"dump_format"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    "warn",
		OutputDir:   ".",
		SplitDigits: 3,
		DumpFormat:  "text",
	}
}

// LoadConfig overlays the keys present in the TOML file at path on the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("output_dir") {
		if dir := strings.TrimSpace(raw.OutputDir); dir != "" {
			cfg.OutputDir = dir
		}
	}
	if meta.IsDefined("split_digits") {
		if raw.SplitDigits < 1 || raw.SplitDigits > 9 {
			return Config{}, fmt.Errorf("load config: split_digits must be 1-9, got %d", raw.SplitDigits)
		}
		cfg.SplitDigits = raw.SplitDigits
	}
	if meta.IsDefined("dump_format") {
		format := strings.ToLower(strings.TrimSpace(raw.DumpFormat))
		if !validDumpFormat(format) {
			return Config{}, fmt.Errorf("load config: unsupported dump_format %q", raw.DumpFormat)
		}
		cfg.DumpFormat = format
	}

	return cfg, nil
}
