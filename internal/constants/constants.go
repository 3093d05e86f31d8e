package constants

// Exit codes returned by the launcher
const (
	ExitSuccess = 0
	ExitFailure = -1
)

// MaxMessageLength bounds the rendered system error message, in characters
const MaxMessageLength = 2048

// BelowNormalNice is the Unix niceness used for "below normal" priority.
// It mirrors BELOW_NORMAL_PRIORITY_CLASS on Windows.
const BelowNormalNice = 10

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
