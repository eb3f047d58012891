package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/gendotenv/log"
	"github.com/ardnew/gendotenv/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// configFileMode is the permission mode of a created configuration file.
const configFileMode os.FileMode = 0o600

// Init generates a configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, i.values(ktx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	if err := os.WriteFile(confPath, data, configFileMode); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.InfoContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// values collects the current value of each configurable flag of every
// command in declaration order. Help, version, force and profiling flags are
// left out, as are empty strings.
func (*Init) values(ktx *kong.Context) yaml.MapSlice {
	ignore := []string{"help", "version", "force", profile.Tag}

	var items yaml.MapSlice

	seen := make(map[string]bool)

	for _, flag := range allFlags(ktx.Model.Node) {
		if flag.Hidden || seen[flag.Name] || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		seen[flag.Name] = true

		if value, ok := flagValue(ktx.FlagValue(flag)); ok {
			items = append(items, yaml.MapItem{Key: flag.Name, Value: value})
		}
	}

	return items
}

// allFlags returns the flags of n and its descendants, parents first.
func allFlags(n *kong.Node) []*kong.Flag {
	out := slices.Clone(n.Flags)
	for _, child := range n.Children {
		out = append(out, allFlags(child)...)
	}

	return out
}

// flagValue converts a parsed flag value to its YAML form.
func flagValue(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false

	case bool, int, int64, uint, uint64, float64:
		return v, true

	case string:
		return v, v != ""

	case []string:
		return v, len(v) > 0

	default:
		s := fmt.Sprint(v)

		return s, s != ""
	}
}
