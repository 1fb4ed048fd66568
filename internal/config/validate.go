package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	minFontSize = 8
	maxFontSize = 96
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateDocument(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	name := c.Output.FileName
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("output.file_name must be a bare file name, got %q", name)
	}
	if !strings.EqualFold(filepath.Ext(name), ".pptx") {
		return fmt.Errorf("output.file_name must end in .pptx, got %q", name)
	}
	return nil
}

func (c *Config) validateDocument() error {
	if c.Document.Title == "" {
		return errors.New("document.title must be set")
	}
	if err := ensureFontSizes(map[string]int{
		"document.title_font_size":    c.Document.TitleFontSize,
		"document.subtitle_font_size": c.Document.SubtitleFontSize,
		"document.heading_font_size":  c.Document.HeadingFontSize,
		"document.body_font_size":     c.Document.BodyFontSize,
	}); err != nil {
		return err
	}
	if !validARGB(c.Document.AccentColor) {
		return fmt.Errorf("document.accent_color must be RRGGBB or AARRGGBB hex, got %q", c.Document.AccentColor)
	}
	if !validARGB(c.Document.TextColor) {
		return fmt.Errorf("document.text_color must be RRGGBB or AARRGGBB hex, got %q", c.Document.TextColor)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

func ensureFontSizes(values map[string]int) error {
	for key, value := range values {
		if value < minFontSize || value > maxFontSize {
			return fmt.Errorf("%s must be between %d and %d points", key, minFontSize, maxFontSize)
		}
	}
	return nil
}

func validARGB(value string) bool {
	if len(value) != 8 {
		return false
	}
	for _, r := range value {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return false
		}
	}
	return true
}
