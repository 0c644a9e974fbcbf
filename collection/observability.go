package collection

// Logger is the optional logging hook for collection diagnostics. The
// signature is slog-compatible (message plus alternating key/value args),
// so *slog.Logger satisfies it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

func (c *Collection[T]) logDebug(msg string, args ...any) {
	if c.cfg.logger != nil {
		c.cfg.logger.Debug(msg, args...)
	}
}
