// Package config loads wordsearch settings from a TOML file.
//
// The file is optional. Missing keys keep their defaults, so a config file
// only needs the values it changes:
//
//	[ocr]
//	language = "eng"
//	threshold = 140
//
//	[render]
//	color = "#FF0000"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config is the full set of settings.
type Config struct {
	OCR     OCRConfig     `toml:"ocr"`
	Display DisplayConfig `toml:"display"`
	Render  RenderConfig  `toml:"render"`
	Log     LogConfig     `toml:"log"`
}

// OCRConfig controls the Tesseract pass.
type OCRConfig struct {
	Language    string `toml:"language"`
	Whitelist   string `toml:"whitelist"`
	PageSegMode int    `toml:"page_seg_mode"`
	// Threshold binarizes the crop before OCR; 0 disables it.
	Threshold int `toml:"threshold"`
}

// DisplayConfig sizes the display surface when the caller does not.
type DisplayConfig struct {
	// Height is the display height in pixels; width follows the image aspect.
	Height int `toml:"height"`
}

// RenderConfig styles solution lines.
type RenderConfig struct {
	// LineWidth in display pixels. 0 sizes lines from the grid cell.
	LineWidth float64 `toml:"line_width"`
	// Color is a fixed "#RRGGBB[AA]" color. Empty colors each word from a palette.
	Color string `toml:"color"`
	// Alpha applies to palette colors.
	Alpha int `toml:"alpha"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		OCR: OCRConfig{
			Language:    "eng",
			Whitelist:   "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1",
			PageSegMode: 6,
			Threshold:   128,
		},
		Display: DisplayConfig{Height: 800},
		Render:  RenderConfig{Alpha: 200},
		Log:     LogConfig{Level: "warn"},
	}
}

// DefaultPath returns ~/.wordsearch/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wordsearch", FileName), nil
}

// Load reads the config at path over the defaults. An empty path means
// DefaultPath. A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var problems []string
	if c.OCR.PageSegMode < 0 || c.OCR.PageSegMode > 13 {
		problems = append(problems, fmt.Sprintf("ocr.page_seg_mode %d out of range 0-13", c.OCR.PageSegMode))
	}
	if c.OCR.Threshold < 0 || c.OCR.Threshold > 255 {
		problems = append(problems, fmt.Sprintf("ocr.threshold %d out of range 0-255", c.OCR.Threshold))
	}
	if c.Display.Height <= 0 {
		problems = append(problems, fmt.Sprintf("display.height must be positive, got %d", c.Display.Height))
	}
	if c.Render.LineWidth < 0 {
		problems = append(problems, fmt.Sprintf("render.line_width must not be negative, got %g", c.Render.LineWidth))
	}
	if c.Render.Alpha < 0 || c.Render.Alpha > 255 {
		problems = append(problems, fmt.Sprintf("render.alpha %d out of range 0-255", c.Render.Alpha))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Save writes the config as TOML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
