package notify

import (
	"log/slog"
	"sync/atomic"
)

// pkgLogger is the logger used by the notify package and, unless
// overridden per instance, by every notifier it constructs.
var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the package logger. Passing nil restores the slog
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		pkgLogger.Store(nil)
		return
	}
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default().With("service", "notify")
}
