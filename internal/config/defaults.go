package config

import (
	"os"

	"agrideck/internal/deck"
)

const (
	defaultConfigPath       = "~/.config/agrideck/config.toml"
	projectConfigName       = "agrideck.toml"
	defaultCreator          = deck.Team
	defaultTitleFontSize    = 44
	defaultSubtitleFontSize = 24
	defaultHeadingFontSize  = 36
	defaultBodyFontSize     = 24
	defaultAccentColor      = "FF2E7D32"
	defaultTextColor        = "FF1F2937"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			FileName: deck.OutputFileName,
		},
		Document: Document{
			Title:            deck.Title,
			Creator:          defaultCreator,
			TitleFontSize:    defaultTitleFontSize,
			SubtitleFontSize: defaultSubtitleFontSize,
			HeadingFontSize:  defaultHeadingFontSize,
			BodyFontSize:     defaultBodyFontSize,
			AccentColor:      defaultAccentColor,
			TextColor:        defaultTextColor,
		},
		Lock: Lock{
			Dir: os.TempDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Path: defaultHistoryPath(),
		},
	}
}
