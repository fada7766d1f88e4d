// Package logging provides the structured logger used across the module.
//
// A Logger wraps one of three backends: log/slog, go.uber.org/zap, or a
// no-op sink. Packages that log hold a *Logger and default to the no-op
// backend, so nothing is written unless the application installs a logger.
package logging
