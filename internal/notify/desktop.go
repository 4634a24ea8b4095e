package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

const desktopSchema = "desktop"

// notifyFunc matches beeep.Notify; swapped out in tests.
type notifyFunc func(title, message, appIcon string) error

// Desktop delivers a best-effort cross-platform desktop notification. It
// has no host-specific capability gate: the underlying library degrades
// per platform on its own.
type Desktop struct {
	base
	assets ImageSource
	notify notifyFunc
}

// DesktopOption customizes a Desktop notifier at construction time.
type DesktopOption func(*Desktop)

// WithNotifyFunc substitutes the platform notification call, for tests.
func WithNotifyFunc(fn notifyFunc) DesktopOption {
	return func(d *Desktop) { d.notify = fn }
}

func init() {
	register(Service{
		Name:    "Desktop Notification",
		Schemes: []string{desktopSchema},
		Factory: func(cfg *Config, env *Env) (Notifier, error) {
			return NewDesktop(cfg, env)
		},
	})
}

// NewDesktop builds the cross-platform desktop notifier. Like the gnome
// provider, the URL carries no meaningful host or credentials.
func NewDesktop(cfg *Config, env *Env, opts ...DesktopOption) (*Desktop, error) {
	if cfg == nil {
		cfg = newConfig()
	}
	cfg.Schema = desktopSchema
	cfg.Host = "localhost"
	cfg.Port = 0
	cfg.User = ""
	cfg.Password = ""

	d := &Desktop{notify: func(title, message, appIcon string) error {
		return beeep.Notify(title, message, appIcon)
	}}
	d.base = newBase(cfg, env, d.Traits(), desktopSchema)
	if env != nil {
		d.assets = env.Assets
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Traits keeps a title slot; the platform facilities render titles
// natively.
func (d *Desktop) Traits() Traits {
	tr := Traits{
		ServiceName:  "Desktop Notification",
		TitleMaxLen:  250,
		BodyMaxLines: 10,
		Format:       FormatText,
		Overflow:     OverflowUpstream,
		RequestRate:  0,
	}
	if d.cfg != nil {
		tr.Format = d.cfg.Format
		tr.Overflow = d.cfg.Overflow
	}
	return tr
}

// Send performs one desktop notification attempt via the platform
// facility.
func (d *Desktop) Send(ctx context.Context, body, title string, notifyType Type) bool {
	iconPath := ""
	if d.assets != nil {
		if path, ok := d.assets.Path(notifyType, ImageSizeXY128, ".png"); ok {
			iconPath = path
		}
	}

	// Always call throttle before any external i/o is made.
	d.throttle.Throttle(ctx)

	if err := d.notify(title, body, iconPath); err != nil {
		d.log.Warn("failed to send desktop notification")
		d.log.Debug("desktop exception", "error", err)
		return false
	}

	d.log.Info("sent desktop notification")
	return true
}

// URL serializes back to the bare scheme; this provider takes no
// parameters.
func (d *Desktop) URL() string {
	return desktopSchema + "://"
}
