package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/kernelmeta/internal/convert"
	"github.com/danmuck/kernelmeta/internal/logging"
)

// Config is the optional metadata2md config file.
type Config struct {
	OutputSuffix string `toml:"output_suffix"`
	Title        string `toml:"title"`
	LogLevel     string `toml:"log_level"`
}

func Default() Config {
	return Config{OutputSuffix: convert.DefaultOutputSuffix}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("output_suffix") {
		cfg.OutputSuffix = strings.TrimSpace(raw.OutputSuffix)
	}
	if meta.IsDefined("title") {
		cfg.Title = strings.TrimSpace(raw.Title)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.OutputSuffix) == "" {
		return fmt.Errorf("config output_suffix must not be empty")
	}
	if strings.ContainsAny(cfg.Title, "`\n") {
		return fmt.Errorf("config title must not contain backticks or newlines")
	}
	if cfg.LogLevel != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("config log_level unknown: %q", cfg.LogLevel)
		}
	}
	return nil
}

// ConvertOptions maps the file config onto pipeline options.
func (c Config) ConvertOptions() convert.Options {
	return convert.Options{OutputSuffix: c.OutputSuffix, Title: c.Title}
}
