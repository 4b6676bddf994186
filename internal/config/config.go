package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where the listing dataset lives and which columns the
// engine derives from.
type Config struct {
	DataPath   string
	ModelField string
	PriceField string
	ExportPath string
	Watch      bool
}

const (
	defaultConfigPath = "~/.config/lotview/config.toml"
	defaultModelField = "Model"
	defaultPriceField = "Price"
	defaultExportPath = "./lotview-export.csv"
)

// Load locates and parses the lotview config, falling back to defaults
// when the file is missing. A present-but-broken config is an error; a
// missing one is not.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ModelField: defaultModelField,
		PriceField: defaultPriceField,
		ExportPath: defaultExportPath,
		Watch:      true,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataPath   string `toml:"data_path"`
		ModelField string `toml:"model_field"`
		PriceField string `toml:"price_field"`
		ExportPath string `toml:"export_path"`
		Watch      *bool  `toml:"watch"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DataPath); v != "" {
		cfg.DataPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.ModelField); v != "" {
		cfg.ModelField = v
	}
	if v := strings.TrimSpace(raw.PriceField); v != "" {
		cfg.PriceField = v
	}
	if v := strings.TrimSpace(raw.ExportPath); v != "" {
		cfg.ExportPath = mustExpand(v)
	}
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
