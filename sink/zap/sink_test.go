package zapsink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/lambdalog"
)

func newTestZap(buf *bytes.Buffer, min zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		LevelKey:    "level",
		MessageKey:  "message",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(buf), min)
	return zap.New(core)
}

func TestZapSink_WritesLineAsMessage(t *testing.T) {
	var buf bytes.Buffer
	s := New(newTestZap(&buf, zapcore.DebugLevel), lambdalog.LevelWarn)

	s.WriteLine("[svc] ERROR  failed\ntrace")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["level"] != "warn" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "[svc] ERROR  failed\ntrace" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("expected one JSON record: %q", buf.String())
	}
}

func TestZapSink_BackendFilter(t *testing.T) {
	var buf bytes.Buffer
	s := New(newTestZap(&buf, zapcore.ErrorLevel), lambdalog.LevelInfo)

	s.WriteLine("[svc] INFO  filtered by zap")

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestUse_ConsoleDefaults(t *testing.T) {
	var buf bytes.Buffer
	s := Use(Config{Writer: &buf, Console: true})

	s.WriteLine("[a] INFO  hello")

	if !strings.Contains(buf.String(), "[a] INFO  hello") {
		t.Fatalf("missing line: %q", buf.String())
	}
}

func TestToZapLevel(t *testing.T) {
	cases := map[lambdalog.Level]zapcore.Level{
		lambdalog.LevelTrace: zapcore.DebugLevel,
		lambdalog.LevelDebug: zapcore.DebugLevel,
		lambdalog.LevelInfo:  zapcore.InfoLevel,
		lambdalog.LevelWarn:  zapcore.WarnLevel,
		lambdalog.LevelError: zapcore.ErrorLevel,
		lambdalog.LevelOff:   zapcore.ErrorLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("%s: got %v want %v", in, got, want)
		}
	}
}
