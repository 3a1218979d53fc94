package zapsink

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/lambdalog"
)

// Config is an explicit, code-first configuration for a zap-backed sink.
type Config struct {
	Writer        io.Writer             // default: os.Stdout
	Level         lambdalog.Level       // zap level every line is written at; default Info
	Console       bool                  // console encoder instead of JSON
	EncoderConfig zapcore.EncoderConfig // if zero, a message-only default is used
}

// Use builds a zap core from Config and wraps it in a Sink.
func Use(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// The line already carries logger name and level; by default zap only adds
	// time and message.
	encCfg := cfg.EncoderConfig
	if encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "ts",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	level := toZapLevel(cfg.Level)
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1))

	return &Sink{l: zl, level: level}
}
