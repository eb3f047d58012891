package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

type initCLI struct {
	Level  string `default:"warn"`
	Pretty bool
	Empty  string

	Gen struct {
		Sort   bool
		Prefix string `default:"DJANGO"`
	} `cmd:"" default:"1"`

	Init Init `cmd:""`
}

// initContext parses args against initCLI with the configuration file at
// path.
func initContext(t *testing.T, path string, args ...string) context.Context {
	t.Helper()

	var cli initCLI

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: path})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx)
}

func TestInit_Run(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create new config"},
		{name: "overwrite existing with force", force: true, exists: true},
		{name: "fail without force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")

			if tt.exists {
				if err := os.WriteFile(path, []byte("existing: content\n"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			ctx := initContext(t, path, "--level=debug")

			err := (&Init{Force: tt.force}).Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteConfig) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			var got map[string]any
			if err := yaml.Unmarshal(data, &got); err != nil {
				t.Fatalf("generated config is not YAML: %v\n%s", err, data)
			}

			if got["level"] != "debug" {
				t.Errorf("level = %v, want debug\n%s", got["level"], data)
			}

			if got["sort"] != false || got["pretty"] != false {
				t.Errorf("boolean flags missing:\n%s", data)
			}

			for _, key := range []string{"help", "empty", "existing"} {
				if _, ok := got[key]; ok {
					t.Errorf("unexpected key %q:\n%s", key, data)
				}
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	type named string

	tests := []struct {
		name   string
		value  any
		want   any
		wantOK bool
	}{
		{"nil", nil, nil, false},
		{"bool", true, true, true},
		{"int", 3, 3, true},
		{"string", "x", "x", true},
		{"empty string", "", "", false},
		{"empty slice", []string{}, []string{}, false},
		{"named string", named("warn"), "warn", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := flagValue(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("flagValue(%v) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}

			if s, isSlice := got.([]string); isSlice {
				if len(s) != 0 {
					t.Errorf("flagValue(%v) = %v", tt.value, got)
				}

				return
			}

			if ok && got != tt.want {
				t.Errorf("flagValue(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
