package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
)

// Environment keys recognized in configuration files and the process
// environment.
const (
	KeyEncoding   = "SESSFILE_ENCODING"
	KeyAllowAny   = "SESSFILE_ALLOW_ANY"
	KeyJSONIndent = "SESSFILE_JSON_INDENT"
	KeyLogLevel   = "SESSFILE_LOG_LEVEL"
	KeyUI         = "SESSFILE_UI"
)

// DefaultJSONIndent is the indentation width JSON documents are written
// with when no configuration overrides it.
const DefaultJSONIndent = 4

// Settings is the principal structure holding the application configuration.
type Settings struct {
	Encoding   string
	AllowAny   bool
	JSONIndent int
	LogLevel   slog.Level
	UIEnabled  bool
}

// DefaultSettings returns a pointer to a new [Settings] with the documented
// defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Encoding:   "",
		AllowAny:   false,
		JSONIndent: DefaultJSONIndent,
		LogLevel:   slog.LevelInfo,
		UIEnabled:  false,
	}
}

// Load layers the given configuration files and the process environment
// over [DefaultSettings], later sources overriding earlier ones. Files that
// do not exist are skipped without error, so optional configuration paths
// can be passed unconditionally.
func (c *ConfigProviderImpl) Load(filenames ...string) (*Settings, error) {
	settings := DefaultSettings()

	envMap := map[string]string{}
	for _, filename := range filenames {
		if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		fileMap, err := c.ReadGeneric(filename)
		if err != nil {
			return nil, fmt.Errorf("(config-load) %w", err)
		}

		maps.Copy(envMap, fileMap)
	}

	for _, key := range []string{KeyEncoding, KeyAllowAny, KeyJSONIndent, KeyLogLevel, KeyUI} {
		if value, exists := os.LookupEnv(key); exists {
			envMap[key] = value
		}
	}

	if value := c.MapKeyToString(envMap, KeyEncoding); value != "" {
		settings.Encoding = value
	}

	if value := c.MapKeyToInt(envMap, KeyJSONIndent); value >= 0 {
		settings.JSONIndent = value
	}

	if value := c.MapKeyToString(envMap, KeyLogLevel); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return nil, fmt.Errorf("(config-load) failed to parse log level: %w", err)
		}

		settings.LogLevel = level
	}

	settings.AllowAny = c.MapKeyToBool(envMap, KeyAllowAny, settings.AllowAny)
	settings.UIEnabled = c.MapKeyToBool(envMap, KeyUI, settings.UIEnabled)

	return settings, nil
}
