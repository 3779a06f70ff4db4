// Package configuration reads the application configuration from dotenv
// files, with environment variables taking precedence over file values.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// KeyOutput is the default output directory for titled content.
	KeyOutput = "FICHIER_OUTPUT"

	// KeyTransliterate enables transliteration of titles by default.
	KeyTransliterate = "FICHIER_TRANSLITERATE"

	// KeyMinFree is the free space to keep on a destination, as a human
	// readable size (e.g. "512 MiB").
	KeyMinFree = "FICHIER_MIN_FREE"

	// KeyLogLevel is the minimum level of logs (debug, info, warn, error).
	KeyLogLevel = "FICHIER_LOG_LEVEL"
)

// DefaultFile is the configuration file that is read if no other is given.
// It is not an error if it does not exist.
const DefaultFile = ".fichier.env"

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
	LookupEnv(key string) (string, bool)
}

// AppConfiguration is the principal structure holding the application
// configuration.
type AppConfiguration struct {
	Output        string
	Transliterate bool
	MinFreeSpace  uint64
	LogLevel      slog.Level
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] holding
// the defaults.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		Output:        "",
		Transliterate: false,
		MinFreeSpace:  0,
		LogLevel:      slog.LevelInfo,
	}
}

// Handler is the principal implementation for the configuration functions.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// Load reads the given configuration files into an [AppConfiguration]. If no
// files are given, [DefaultFile] is read if it exists. Any key that is set as
// an environment variable overrides the value from the files.
func (c *Handler) Load(filenames ...string) (*AppConfiguration, error) {
	envMap, err := c.readFiles(filenames...)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{KeyOutput, KeyTransliterate, KeyMinFree, KeyLogLevel} {
		if value, exists := c.GenericHandler.LookupEnv(key); exists {
			envMap[key] = value
		}
	}

	config := NewAppConfiguration()

	config.Output = c.MapKeyToString(envMap, KeyOutput)

	if config.Transliterate, err = c.MapKeyToBool(envMap, KeyTransliterate); err != nil {
		return nil, err
	}

	if config.MinFreeSpace, err = c.MapKeyToBytes(envMap, KeyMinFree); err != nil {
		return nil, err
	}

	if config.LogLevel, err = c.MapKeyToLevel(envMap, KeyLogLevel); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Handler) readFiles(filenames ...string) (map[string]string, error) {
	if len(filenames) == 0 {
		envMap, err := c.GenericHandler.Read(DefaultFile)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return make(map[string]string), nil
			}

			return nil, fmt.Errorf("(config-load) %w", err)
		}

		return envMap, nil
	}

	envMap, err := c.GenericHandler.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-load) %w", err)
	}

	return envMap, nil
}

// MapKeyToString returns the value of a key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToBool returns the value of a key as a boolean, or false if unset.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) (bool, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("(config-bool) %w: %s=%q", ErrInvalidValue, key, value)
	}

	return boolValue, nil
}

// MapKeyToBytes returns the value of a key as a number of bytes, or 0 if
// unset. Plain numbers and human readable sizes (e.g. "1.5 GB", "512MiB") are
// accepted.
func (c *Handler) MapKeyToBytes(envMap map[string]string, key string) (uint64, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return 0, nil
	}

	bytes, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, fmt.Errorf("(config-bytes) %w: %s=%q", ErrInvalidValue, key, value)
	}

	return bytes, nil
}

// MapKeyToLevel returns the value of a key as a [slog.Level], or
// [slog.LevelInfo] if unset.
func (c *Handler) MapKeyToLevel(envMap map[string]string, key string) (slog.Level, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo, fmt.Errorf("(config-level) %w: %s=%q", ErrInvalidValue, key, value)
	}

	return level, nil
}
