// Package cmd implements the gendotenv subcommands.
//
// Each command is a kong command struct whose Run method receives a
// [context.Context]. The context carries the parsed [kong.Context] (see
// [WithContext]) and, for tests, alternate standard streams (see [WithInput]
// and [WithOutput]).
package cmd

import (
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/gendotenv/envvar"
)

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)

// Vars returns the kong variables referenced by command flag defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"defaultPrefix":   envvar.DefaultPrefix,
		"defaultMaxDepth": strconv.Itoa(envvar.DefaultMaxDepth),
	}
}
