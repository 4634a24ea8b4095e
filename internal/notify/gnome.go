package notify

import (
	"context"
)

// Urgency is the desktop-notification priority hint, ordered LOW through
// HIGH as the freedesktop urgency byte.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyHigh
)

// normalizeUrgency maps anything outside the three valid levels to
// NORMAL. Invalid input is deliberately not an error; existing URLs
// depend on this leniency.
func normalizeUrgency(u Urgency) Urgency {
	if u < UrgencyLow || u > UrgencyHigh {
		return UrgencyNormal
	}
	return u
}

const gnomeSchema = "gnome"

// Gnome delivers notifications to the local desktop session. There is no
// network I/O; the one external call is the session-bus notification.
type Gnome struct {
	base
	urgency Urgency
	enabled bool
	backend DesktopBackend
	assets  ImageSource
}

// GnomeOption customizes a Gnome notifier at construction time.
type GnomeOption func(*Gnome)

// WithUrgency sets the urgency level. Values outside LOW/NORMAL/HIGH
// silently normalize to NORMAL.
func WithUrgency(u Urgency) GnomeOption {
	return func(g *Gnome) { g.urgency = u }
}

// WithDesktopBackend substitutes the desktop facility, for tests.
func WithDesktopBackend(b DesktopBackend) GnomeOption {
	return func(g *Gnome) { g.backend = b }
}

// WithCapability forces the capability gate, so both the available and
// unavailable paths can be exercised on any host.
func WithCapability(enabled bool) GnomeOption {
	return func(g *Gnome) { g.enabled = enabled }
}

func init() {
	register(Service{
		Name:    "Gnome Notification",
		Schemes: []string{gnomeSchema},
		Factory: func(cfg *Config, env *Env) (Notifier, error) {
			return NewGnome(cfg, env)
		},
	})
}

// NewGnome builds the desktop notifier. The URL carries no meaningful
// host, credentials or port; whatever was parsed is overridden with the
// fixed local target.
func NewGnome(cfg *Config, env *Env, opts ...GnomeOption) (*Gnome, error) {
	if cfg == nil {
		cfg = newConfig()
	}
	cfg.Schema = gnomeSchema
	cfg.Host = "localhost"
	cfg.Port = 0
	cfg.User = ""
	cfg.Password = ""

	g := &Gnome{
		urgency: UrgencyNormal,
		enabled: desktopSupported(),
		backend: defaultDesktopBackend,
	}
	g.base = newBase(cfg, env, g.Traits(), gnomeSchema)
	if env != nil {
		g.assets = env.Assets
	}

	for _, opt := range opts {
		opt(g)
	}
	g.urgency = normalizeUrgency(g.urgency)

	return g, nil
}

// Urgency returns the configured urgency level.
func (g *Gnome) Urgency() Urgency {
	return g.urgency
}

// Traits declares no title slot (titles fold into the body upstream), a
// ten line clamp, and no provider-side request rate since delivery is
// local.
func (g *Gnome) Traits() Traits {
	tr := Traits{
		ServiceName:  "Gnome Notification",
		TitleMaxLen:  0,
		BodyMaxLines: 10,
		Format:       FormatText,
		Overflow:     OverflowUpstream,
		RequestRate:  0,
	}
	if g.cfg != nil {
		tr.Format = g.cfg.Format
		tr.Overflow = g.cfg.Overflow
	}
	return tr
}

// Send performs one desktop notification attempt. The title argument is
// ignored: this provider declares a zero title length, so any title has
// already been folded into the body.
func (g *Gnome) Send(ctx context.Context, body, _ string, notifyType Type) bool {
	if !g.enabled {
		g.log.Warn("gnome notifications are not supported by this system")
		return false
	}

	if err := g.backend.Init(g.appID); err != nil {
		g.log.Warn("failed to send gnome notification")
		g.log.Debug("gnome init exception", "error", err)
		return false
	}

	note := &DesktopNote{
		Body:    body,
		Urgency: g.urgency,
	}

	// Always call throttle before any external i/o is made.
	g.throttle.Throttle(ctx)

	if iconPath, ok := g.iconPath(notifyType); ok {
		if icon, err := g.backend.LoadIcon(iconPath); err != nil {
			// Icon attachment is best-effort; the send continues.
			g.log.Warn("could not load gnome notification icon",
				"path", iconPath, "error", err)
		} else {
			note.Icon = icon
		}
	}

	if err := g.backend.Show(note); err != nil {
		g.log.Warn("failed to send gnome notification")
		g.log.Debug("gnome exception", "error", err)
		return false
	}

	g.log.Info("sent gnome notification")
	return true
}

func (g *Gnome) iconPath(notifyType Type) (string, bool) {
	if g.assets == nil {
		return "", false
	}
	return g.assets.Path(notifyType, ImageSizeXY128, ".ico")
}

// URL serializes back to the bare scheme; this provider takes no
// parameters.
func (g *Gnome) URL() string {
	return gnomeSchema + "://"
}
