// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogOutputWriter is the default output writer for all loggers
var LogOutputWriter io.Writer = os.Stderr

// UseJSONLogging switches the global logger to plain json output
func UseJSONLogging(out io.Writer) {
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// CliCompactLogger configures the global logger with the compact console
// writer, which hides timestamps and shortens level indicators
func CliCompactLogger(out io.Writer) {
	log.Logger = NewConsoleWriter(out, true)
}

// Set the global log level: error, warn, info, debug, trace
func Set(level string) {
	switch strings.ToLower(level) {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	default:
		log.Warn().Str("level", level).Msg("unknown log level, fallback to info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// GetEnvLogLevel returns the log level set via environment variables
func GetEnvLogLevel() (string, bool) {
	if level, ok := os.LookupEnv("GPOREPORT_LOG_LEVEL"); ok {
		return level, true
	}
	if _, ok := os.LookupEnv("DEBUG"); ok {
		return "debug", true
	}
	if _, ok := os.LookupEnv("TRACE"); ok {
		return "trace", true
	}
	return "", false
}

// InitTestEnv will set all log configurations for a test environment
// verbose and colorful
func InitTestEnv() {
	Set("debug")
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
