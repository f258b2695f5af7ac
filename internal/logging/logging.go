// Package logging constructs the zap logger used across the watcher.
package logging

import "go.uber.org/zap"

// New returns a configured logger: human-readable development output when
// debug is set, JSON production output otherwise.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
