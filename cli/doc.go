// Package cli contains the command line interface for gendotenv.
//
// # Usage
//
// Without a subcommand, gendotenv runs generate, reading a settings module
// from stdin and writing a dotenv template to stdout:
//
//	gendotenv < settings.py > .env.template
//	gendotenv --input settings.py --sort --format yaml
//	gendotenv --filter 'Type == "List" || !HasDefault' < settings.py
//	gendotenv tree settings.py
//
// # Configuration
//
// Flag values may also come from a YAML file in the configuration directory
// (see [pkg.ConfigPath]). Each key is a flag name:
//
//	log-level: info
//	prefix: MYAPP
//	sort: true
//
// "gendotenv init" writes the current values to that file. Command-line
// flags override configuration values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text log output
//
// Logs are written to stderr.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/gendotenv/pprof)
package cli
