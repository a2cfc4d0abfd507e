package ai

import "sync/atomic"

// debugLogs гейтит отладочные логи на пути тика врагов: проверка атомарного
// флага дешевле, чем slog.Enabled для каждого врага в каждом тике.
var debugLogs atomic.Bool

// EnableDebugLogging turns per-tick enemy debug logs on or off.
// Called once at startup from the configured log level.
func EnableDebugLogging(enabled bool) {
	debugLogs.Store(enabled)
}

// IsDebugEnabled reports whether per-tick enemy debug logs are on.
func IsDebugEnabled() bool {
	return debugLogs.Load()
}
