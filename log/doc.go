// Package log provides a small structured logging layer over [log/slog].
//
// Loggers are immutable values configured with functional options at
// creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Debug("recognized declaration", slog.String("name", "DJANGO_DEBUG"))
//
// Every level has a context-aware variant ([Logger.DebugContext] and so on).
// Context-unaware variants use [DefaultContextProvider].
//
// Package-level functions such as [Info] and [Error] write to a default
// logger that is replaced atomically by [Config]. The default logger writes
// to standard error so log output never mixes with generated templates on
// standard output.
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Trace sits below slog's debug level and is rendered as "TRACE".
//
// # Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty] enabled the
// text format is colourized for terminals; JSON output is never colourized
// so it stays machine readable.
package log
