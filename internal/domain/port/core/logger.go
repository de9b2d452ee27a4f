package core

// LogLevel orders logging severities from most to least verbose
type LogLevel int

const (
	// LogLevelDebug for per-donation diagnostic detail
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for recorded donations and lifecycle events
	LogLevelInfo
	// LogLevelWarn for rejected requests and recoverable faults
	LogLevelWarn
	// LogLevelError for persistence and confirmation failures
	LogLevelError
)

// Logger is the structured logging port. Fields are free-form key/value
// pairs; adapters decide the encoding.
type Logger interface {
	// SetLevel sets the minimum level that will be emitted
	SetLevel(level LogLevel)
	// GetLevel reports the current minimum level
	GetLevel() LogLevel
	// Debug logs diagnostic messages
	Debug(message string, fields map[string]any)
	// Info logs operational messages
	Info(message string, fields map[string]any)
	// Warn logs recoverable problems
	Warn(message string, fields map[string]any)
	// Error logs failures
	Error(message string, fields map[string]any)
	// Flush writes any buffered entries before shutdown
	Flush() error
}
