package notify

import (
	"context"
	"io"
	"log"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	router "github.com/nicholas-fedor/shoutrrr/pkg/router"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"

	"github.com/tphakala/gonotify/internal/errors"
)

// Bridge forwards delivery to the shoutrrr service router, giving URL
// schemes this package has no native provider for a second chance. It is
// not registered in the scheme table; FromURL falls back to it when no
// registered provider claims a scheme.
type Bridge struct {
	base
	rawURL string
	sender *router.ServiceRouter
}

// newBridge validates rawURL against the shoutrrr router and wraps it as
// a Notifier.
func newBridge(rawURL string, env *Env) (*Bridge, error) {
	sender, err := shoutrrr.CreateSender(rawURL)
	if err != nil {
		return nil, errors.New(err).
			Component("bridge").Category(errors.CategoryConfiguration).
			Build()
	}
	sender.SetLogger(log.New(io.Discard, "", 0))

	b := &Bridge{
		rawURL: rawURL,
		sender: sender,
	}
	b.base = newBase(newConfig(), env, b.Traits(), "bridge")
	return b, nil
}

// Traits uses conventional remote-service limits.
func (b *Bridge) Traits() Traits {
	return Traits{
		ServiceName: "Shoutrrr Bridge",
		TitleMaxLen: 250,
		Format:      FormatText,
		Overflow:    OverflowUpstream,
		RequestRate: 0,
	}
}

// Send forwards one delivery attempt through the router.
func (b *Bridge) Send(ctx context.Context, body, title string, notifyType Type) bool {
	params := stypes.Params{}
	if title != "" {
		params.SetTitle(title)
	}

	// Always call throttle before any remote server i/o is made.
	b.throttle.Throttle(ctx)

	errs := b.sender.Send(body, &params)
	for _, err := range errs {
		if err != nil {
			b.log.Warn("failed to send bridged notification", "type", string(notifyType))
			b.log.Debug("bridge exception", "error", err)
			return false
		}
	}

	b.log.Info("sent bridged notification")
	return true
}

// URL returns the URL the bridge was built from.
func (b *Bridge) URL() string {
	return b.rawURL
}
