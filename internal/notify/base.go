package notify

import (
	"log/slog"
)

// defaultAppID identifies this application to notification services when
// the caller does not supply one.
const defaultAppID = "gonotify"

// Env bundles the shared collaborators a notifier is built with. The zero
// value is usable: icons are skipped, the package logger and a
// per-instance throttler are used.
type Env struct {
	// AppID is the application identifier used as the desktop app id and
	// the HTTP User-Agent.
	AppID string

	// Assets resolves icon files for desktop providers. Nil disables
	// icon lookup.
	Assets ImageSource

	// Throttle overrides the per-instance throttler; mainly for tests
	// that assert hook ordering.
	Throttle Throttler

	// Logger overrides the package logger for this instance.
	Logger *slog.Logger
}

func (e *Env) appID() string {
	if e != nil && e.AppID != "" {
		return e.AppID
	}
	return defaultAppID
}

func (e *Env) logger(service string) *slog.Logger {
	if e != nil && e.Logger != nil {
		return e.Logger.With("service", service)
	}
	return logger().With("service", service)
}

func (e *Env) throttler(tr Traits) Throttler {
	if e != nil && e.Throttle != nil {
		return e.Throttle
	}
	return NewThrottler(tr.RequestRate)
}

// base carries the state shared by every notifier implementation.
type base struct {
	cfg      *Config
	appID    string
	throttle Throttler
	log      *slog.Logger
}

func newBase(cfg *Config, env *Env, tr Traits, service string) base {
	return base{
		cfg:      cfg,
		appID:    env.appID(),
		throttle: env.throttler(tr),
		log:      env.logger(service),
	}
}
