package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeDocument()
	if err := c.normalizeLock(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.normalizeHistory()
}

func (c *Config) normalizeOutput() error {
	c.Output.FileName = strings.TrimSpace(c.Output.FileName)
	if c.Output.FileName == "" {
		c.Output.FileName = Default().Output.FileName
	}
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir == "" {
		return nil
	}
	var err error
	if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDocument() {
	c.Document.Title = strings.TrimSpace(c.Document.Title)
	c.Document.Creator = strings.TrimSpace(c.Document.Creator)
	c.Document.AccentColor = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c.Document.AccentColor), "#"))
	c.Document.TextColor = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c.Document.TextColor), "#"))
	// Six-digit RGB values get an opaque alpha channel.
	if len(c.Document.AccentColor) == 6 {
		c.Document.AccentColor = "FF" + c.Document.AccentColor
	}
	if len(c.Document.TextColor) == 6 {
		c.Document.TextColor = "FF" + c.Document.TextColor
	}
}

func (c *Config) normalizeLock() error {
	c.Lock.Dir = strings.TrimSpace(c.Lock.Dir)
	if c.Lock.Dir == "" {
		c.Lock.Dir = os.TempDir()
	}
	var err error
	if c.Lock.Dir, err = expandPath(c.Lock.Dir); err != nil {
		return fmt.Errorf("lock.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File == "" {
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath()
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}
