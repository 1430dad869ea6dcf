package domain

// CycleStatus is the outcome of one compilation cycle.
type CycleStatus string

const (
	// CycleCompleted means the document compiled and at least one dependency changed since the last manifest.
	CycleCompleted CycleStatus = "completed"
	// CycleCached means the document compiled and every dependency matched the last manifest.
	CycleCached CycleStatus = "cached"
	// CycleFailed means the compilation returned an error.
	CycleFailed CycleStatus = "failed"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
