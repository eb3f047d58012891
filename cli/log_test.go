package cli

import (
	"testing"

	"github.com/ardnew/gendotenv/log"
)

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(nil)) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"--log-level", "debug", "--log-format", "json"},
			want: logConfig{Level: "debug", Format: "json"},
		},
		{
			name: "assigned values",
			args: []string{"--log-level=error", "--log-time-layout=none"},
			want: logConfig{Level: "error", TimeLayout: "none"},
		},
		{
			name: "booleans",
			args: []string{"--log-caller", "--log-pretty=true", "--no-log-pretty"},
			want: logConfig{Caller: true},
		},
		{
			name: "negated assignment",
			args: []string{"--no-log-caller=false", "--log-pretty=bogus"},
			want: logConfig{Caller: true},
		},
		{
			name: "flag value is not consumed",
			args: []string{"--log-level", "--sort"},
			want: logConfig{},
		},
		{
			name: "stops at terminator",
			args: []string{"--sort", "--", "--log-level=trace"},
			want: logConfig{},
		},
		{
			name: "other flags ignored",
			args: []string{"-i", "settings.py", "--logger=x", "--no-sort"},
			want: logConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got logConfig

			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestLogConfig_ScanConfiguresLogger(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(nil)) })

	var f logConfig

	f.scan([]string{"--log-level=trace", "--log-format=json"})

	if got := log.Default().Level(); got != log.LevelTrace {
		t.Errorf("level = %v, want %v", got, log.LevelTrace)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("format = %v, want %v", got, log.FormatJSON)
	}
}

func TestLogConfig_Vars(t *testing.T) {
	vars := (*logConfig)(nil).vars()

	if vars["logLevelEnum"] != "trace,debug,info,warn,error" {
		t.Errorf("logLevelEnum = %q", vars["logLevelEnum"])
	}

	if vars["logFormatEnum"] != "json,text" {
		t.Errorf("logFormatEnum = %q", vars["logFormatEnum"])
	}
}
