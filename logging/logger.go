// Package logging builds the hclog loggers used across bootsplash-setup.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

const (
	EnvLevel = "BOOTSPLASH_LOG_LEVEL"
	EnvJSON  = "BOOTSPLASH_JSON_LOG"
)

// NewLogger creates a logger writing to output (stderr when nil). An empty
// level falls back to Level().
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	if level == "" {
		level = Level()
	}

	return hclog.New(loggerOptions(name, level, output))
}

// loggerOptions colours text output on a terminal only. JSON lines stay
// free of escape sequences so they can be piped into other tools.
func loggerOptions(name, level string, output io.Writer) *hclog.LoggerOptions {
	jsonFormat := os.Getenv(EnvJSON) == "1"
	color := hclog.AutoColor
	if jsonFormat {
		color = hclog.ColorOff
	}
	return &hclog.LoggerOptions{
		Name:        name,
		Level:       hclog.LevelFromString(level),
		JSONFormat:  jsonFormat,
		Output:      output,
		DisableTime: true,
		Color:       color,
	}
}

// Level returns the level configured in the environment, info by default.
func Level() string {
	if level := os.Getenv(EnvLevel); level != "" {
		return level
	}
	return "info"
}
