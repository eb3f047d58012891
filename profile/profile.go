package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler describes a single profiling session.
type Profiler struct {
	// Mode is one of [Modes]. An empty or unsupported mode disables profiling.
	Mode string
	// Dir receives the profile output. Empty selects the pkg/profile default,
	// a temporary directory.
	Dir string
	// Quiet suppresses the start and stop messages pkg/profile writes to the
	// standard logger.
	Quiet bool
}

// Start begins profiling. Start and the returned Stopper are always safe to
// call, whether or not profiling is compiled in.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

// Enabled reports whether p would record anything when started.
func (p Profiler) Enabled() bool {
	for _, m := range Modes() {
		if m == p.Mode {
			return true
		}
	}

	return false
}

type ignore struct{}

func (ignore) Stop() {}
