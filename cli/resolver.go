package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/gendotenv/log"
)

// load returns a [kong.ConfigurationLoader] for YAML configuration files.
//
// The file is a single mapping from flag names to values:
//
//	log-level: debug
//	log-format: json
//	sort: true
//	prefix: MYAPP
//
// Keys may use underscores in place of hyphens ("log_level"). A file that
// cannot be decoded is logged and ignored. Command-line flags override
// configuration values.
func load(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var m map[string]any
		if err := yaml.UnmarshalContext(ctx, data, &m); err != nil {
			log.WarnContext(ctx, "ignoring invalid configuration file",
				slog.String("cause", err.Error()),
			)

			return config{}, nil
		}

		return makeConfig(m), nil
	}
}

// config implements [kong.Resolver] over decoded YAML values.
type config map[string]any

// makeConfig normalizes decoded YAML values into the forms kong's mappers
// accept. Numbers become strings, sequences become comma-separated lists.
func makeConfig(m map[string]any) config {
	c := make(config, len(m))

	for key, value := range m {
		c[strings.ReplaceAll(key, "_", "-")] = native(value)
	}

	return c
}

func native(value any) any {
	switch v := value.(type) {
	case nil, bool, string:
		return v

	case []any:
		s := make([]string, len(v))
		for i, e := range v {
			s[i] = fmt.Sprint(native(e))
		}

		return strings.Join(s, ",")

	default:
		return fmt.Sprint(v)
	}
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	// Not found: kong falls back to the default.
	return nil, nil
}
