// Package logging configures the process-wide zerolog logger: a console
// writer for interactive runs and an optional size-rotated file sink.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the global logger. level is a zerolog level name ("debug",
// "info", ...); file, when non-empty, adds a rotated log file next to the
// console output.
func Setup(level, file string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}

	var sink io.Writer = console
	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		sink = zerolog.MultiLevelWriter(console, rotated)
	}

	log.Logger = zerolog.New(sink).Level(lvl).With().Timestamp().Logger()
}
