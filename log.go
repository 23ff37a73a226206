package tufte

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger directs the debug output of the rendering steps to l.
// A nil l discards all output (the default).
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return logger }
