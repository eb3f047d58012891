package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_Defaults(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != DefaultLevel {
		t.Errorf("level = %v, want %v", logger.Level(), DefaultLevel)
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("format = %v, want %v", logger.Format(), DefaultFormat)
	}

	logger.Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("info should be filtered at the default level, got %q", buf.String())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		log   func(Logger)
		want  bool
	}{
		{"trace at trace", LevelTrace, func(l Logger) { l.Trace("m") }, true},
		{"debug at info", LevelInfo, func(l Logger) { l.Debug("m") }, false},
		{"info at info", LevelInfo, func(l Logger) { l.Info("m") }, true},
		{"warn at error", LevelError, func(l Logger) { l.Warn("m") }, false},
		{"error at error", LevelError, func(l Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.log(Make(&buf, WithLevel(tt.level)))

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithLevel(LevelTrace),
		WithTimeLayout("none"),
	)
	logger.Trace("recognized", slog.String("name", "DJANGO_DEBUG"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if rec["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", rec["level"])
	}

	if rec["name"] != "DJANGO_DEBUG" {
		t.Errorf("name = %v, want DJANGO_DEBUG", rec["name"])
	}

	if _, ok := rec["time"]; ok {
		t.Error("time should be omitted with layout none")
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo), WithFormat(FormatText)).
		With(slog.String("component", "envvar"))
	logger.Info("hello")

	if !strings.Contains(buf.String(), "component=envvar") {
		t.Errorf("missing attribute in %q", buf.String())
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithLevel(LevelInfo), WithCaller(true)).Info("where")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller should point at the test file, got %q", buf.String())
	}
}

func TestLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelDebug),
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout(""),
	).With(slog.String("file", "settings.py"))

	logger.Debug("parsed", slog.Int("bytes", 42), slog.Group("pos", slog.Int("line", 3)))

	out := buf.String()
	for _, want := range []string{"DEBUG", "parsed", "settings.py", "42", "pos.line"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output %q missing %q", out, want)
		}
	}

	if strings.Contains(out, "time=") {
		t.Errorf("time should be omitted, got %q", out)
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Info("nothing")
	l.ErrorContext(context.Background(), "nothing")
	_ = l.With(slog.String("k", "v"))

	if l.Level() != DefaultLevel {
		t.Errorf("zero logger level = %v", l.Level())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat(" JSON ") != FormatJSON {
		t.Error("JSON not recognized")
	}

	if ParseFormat("text") != FormatText {
		t.Error("text not recognized")
	}

	if ParseFormat("xml") != DefaultFormat {
		t.Error("unknown format should fall back to default")
	}
}

func TestLevels_Formats(t *testing.T) {
	var levels []string
	for l := range Levels() {
		levels = append(levels, l)
	}

	if strings.Join(levels, ",") != "trace,debug,info,warn,error" {
		t.Errorf("levels = %v", levels)
	}

	var formats []string
	for f := range Formats() {
		formats = append(formats, f)
	}

	if strings.Join(formats, ",") != "json,text" {
		t.Errorf("formats = %v", formats)
	}
}
