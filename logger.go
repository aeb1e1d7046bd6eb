package soa

import (
	"github.com/oliverbestmann/soa/spoke"
	"go.uber.org/zap"
)

// Logger returns the logger used by tables that were not configured
// using WithLogger.
func Logger() *zap.Logger {
	return spoke.Logger()
}

// SetLogger replaces the package wide logger. Nothing is logged by default.
func SetLogger(l *zap.Logger) {
	spoke.SetLogger(l)
}
