package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvPrefix = "DATASTREAMS_"

	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	MinWindowWidth      = 400
	MinWindowHeight     = 300
)

// Config holds the runtime settings read from the environment
type Config struct {
	LogLevel     string
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
	ConfirmQuit  bool
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load seeds the environment from the given .env files (missing files are
// ignored, existing variables win) and builds a Config from it.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(os.Getenv), nil
}

// FromEnv builds a Config from a lookup function. Invalid values fall back to defaults.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()

	if level := strings.ToLower(strings.TrimSpace(getenv(EnvPrefix + "LOG_LEVEL"))); level != "" {
		cfg.LogLevel = level
	}
	if getenv("DEBUG") == "1" {
		cfg.LogLevel = "debug"
	}

	cfg.JSONLogs = parseBool(getenv(EnvPrefix+"JSON_LOGS"), false)
	cfg.ConfirmQuit = parseBool(getenv(EnvPrefix+"CONFIRM_QUIT"), false)
	cfg.WindowWidth = parseSize(getenv(EnvPrefix+"WINDOW_WIDTH"), DefaultWindowWidth, MinWindowWidth)
	cfg.WindowHeight = parseSize(getenv(EnvPrefix+"WINDOW_HEIGHT"), DefaultWindowHeight, MinWindowHeight)

	return cfg
}

func parseBool(value string, fallback bool) bool {
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}

func parseSize(value string, fallback, minimum float32) float32 {
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil || f <= 0 {
		return fallback
	}
	if float32(f) < minimum {
		return minimum
	}
	return float32(f)
}
