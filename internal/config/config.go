package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Layout describes where each channel block sits in a worksheet.
type Layout struct {
	// Orientation is condition-sheets or weighting-sheets.
	Orientation string `toml:"orientation"`
	// Empty column ranges and a zero header depth use the orientation's defaults.
	BackColumns  string `toml:"back_columns"`
	MADLSColumns string `toml:"madls_columns"`
	HeaderRows   int    `toml:"header_rows"`
	AutoDetect   bool   `toml:"auto_detect"`
	// IgnoreDefinedNames disables BackScatter/MADLS defined-name overrides.
	IgnoreDefinedNames bool `toml:"ignore_defined_names"`
}

// Axis holds the chart window and optional title for one channel.
type Axis struct {
	XMin  float64 `toml:"x_min"`
	XMax  float64 `toml:"x_max"`
	Title string  `toml:"title"`
}

// Render contains the default render selection.
type Render struct {
	Mode       string   `toml:"mode"`
	Channels   []string `toml:"channels"`
	Weightings []string `toml:"weightings"`
	LogX       bool     `toml:"log_x"`
	WidthIn    float64  `toml:"width_in"`
	HeightIn   float64  `toml:"height_in"`
	Back       Axis     `toml:"back"`
	MADLS      Axis     `toml:"madls"`
}

// Output contains artifact locations.
type Output struct {
	Dir  string `toml:"dir"`
	Zip  bool   `toml:"zip"`
	Grid bool   `toml:"grid"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for dlsplot.
//
// Configuration sections:
//   - Layout: column blocks and header depth of each worksheet
//   - Render: normalization mode, selection, chart size and x windows
//   - Output: artifact directory and optional ZIP/grid exports
//   - Logging: log format and level
type Config struct {
	Layout  Layout  `toml:"layout"`
	Render  Render  `toml:"render"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/dlsplot/config.toml")
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the resolved path, and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("dlsplot.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
