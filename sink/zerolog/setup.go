package zerologsink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/lambdalog"
)

// Config is an explicit, code-first configuration for a zerolog-backed sink.
type Config struct {
	Writer            io.Writer       // default: os.Stdout
	Level             lambdalog.Level // zerolog level every line is written at; default Info
	Console           bool            // pretty console output instead of JSON
	ConsoleTimeFormat string          // only used if Console==true; default time.RFC3339Nano
	Timestamp         bool            // add zerolog's own timestamp field
}

// Use builds a zerolog.Logger according to Config and wraps it in a Sink.
func Use(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}

	return New(zl, cfg.Level)
}
