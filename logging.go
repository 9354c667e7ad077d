package linkprobe

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/cueyang/linkprobe/config"
)

// NewLogger builds the process logger: console output by default, a rotated
// file when one is configured.
func NewLogger(conf config.Log) zerolog.Logger {
	level, errLevel := zerolog.ParseLevel(conf.Level)
	if errLevel != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if conf.File != "" {
		w = &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
