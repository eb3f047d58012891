package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

type resolverCLI struct {
	LogLevel string `default:"warn"`
	Sort     bool
	MaxDepth int    `default:"3"`
	Prefix   string `default:"DJANGO"`
}

func parseWithConfig(t *testing.T, config string, args ...string) resolverCLI {
	t.Helper()

	res, err := load(context.Background())(strings.NewReader(config))
	if err != nil {
		t.Fatal(err)
	}

	var cli resolverCLI

	parser, err := kong.New(&cli, kong.Resolvers(res))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(args); err != nil {
		t.Fatal(err)
	}

	return cli
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		want   resolverCLI
	}{
		{
			name:   "empty file",
			config: "",
			want:   resolverCLI{LogLevel: "warn", MaxDepth: 3, Prefix: "DJANGO"},
		},
		{
			name:   "values",
			config: "log-level: debug\nsort: true\nmax-depth: 5\nprefix: APP\n",
			want:   resolverCLI{LogLevel: "debug", Sort: true, MaxDepth: 5, Prefix: "APP"},
		},
		{
			name:   "underscore keys",
			config: "log_level: info\nmax_depth: 0\n",
			want:   resolverCLI{LogLevel: "info", MaxDepth: 0, Prefix: "DJANGO"},
		},
		{
			name:   "flags override",
			config: "prefix: APP\nsort: true\n",
			args:   []string{"--prefix=CLI"},
			want:   resolverCLI{LogLevel: "warn", Sort: true, MaxDepth: 3, Prefix: "CLI"},
		},
		{
			name:   "invalid file is ignored",
			config: "- not\n- a mapping\n",
			want:   resolverCLI{LogLevel: "warn", MaxDepth: 3, Prefix: "DJANGO"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseWithConfig(t, tt.config, tt.args...); got != tt.want {
				t.Errorf("parsed %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMakeConfig(t *testing.T) {
	c := makeConfig(map[string]any{
		"log_level": "debug",
		"depth":     uint64(2),
		"ratio":     0.5,
		"hosts":     []any{"a", uint64(1)},
		"unset":     nil,
	})

	want := config{
		"log-level": "debug",
		"depth":     "2",
		"ratio":     "0.5",
		"hosts":     "a,1",
		"unset":     nil,
	}

	for key, value := range want {
		if c[key] != value {
			t.Errorf("config[%q] = %#v, want %#v", key, c[key], value)
		}
	}
}
