// Package profile wraps [github.com/pkg/profile] so gendotenv can record
// runtime profiles of an analysis run.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	gendotenv --pprof-mode cpu --pprof-dir ./profiles < settings.py
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op
// [Stopper], so callers never need their own build constraints.
//
// Profiles are written below [Profiler.Dir] using the file names chosen by
// pkg/profile (cpu.pprof, mem.pprof, trace.out, ...) and can be inspected
// with:
//
//	go tool pprof -http=: ./profiles/cpu.pprof
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
