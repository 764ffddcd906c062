package client

// Logger receives non-fatal transfer warnings, e.g. a failed mirror or a
// version probe that returned garbage. Fatal conditions travel as errors,
// never through the logger.
type Logger interface {
	// Warnf logs one formatted warning.
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}
