// Package notify implements URL-configured notification plugins: each
// provider parses a provider-specific URL into configuration, formats a
// payload and performs a single best-effort delivery attempt.
package notify

import (
	"context"
	"time"
)

// Type classifies a notification's semantic severity. It selects the icon
// for desktop providers and tags the payload for remote ones.
type Type string

const (
	// TypeInfo indicates an informational notification
	TypeInfo Type = "info"
	// TypeSuccess indicates a successful operation
	TypeSuccess Type = "success"
	// TypeWarning indicates a warning notification
	TypeWarning Type = "warning"
	// TypeFailure indicates a failed operation
	TypeFailure Type = "failure"
)

// Types lists all valid notification types.
var Types = []Type{TypeInfo, TypeSuccess, TypeWarning, TypeFailure}

// Valid reports whether t is one of the known notification types.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeFailure:
		return true
	}
	return false
}

// Format identifies the markup convention of a message body.
type Format string

const (
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatHTML, FormatMarkdown:
		return true
	}
	return false
}

// Overflow controls what happens when a message exceeds a provider's
// length limits.
type Overflow string

const (
	// OverflowUpstream leaves length handling to the remote service.
	OverflowUpstream Overflow = "upstream"
	// OverflowTruncate cuts the body at the provider limit.
	OverflowTruncate Overflow = "truncate"
	// OverflowSplit delivers the body as multiple chunked sends.
	OverflowSplit Overflow = "split"
)

// Valid reports whether o is a known overflow mode.
func (o Overflow) Valid() bool {
	switch o {
	case OverflowUpstream, OverflowTruncate, OverflowSplit:
		return true
	}
	return false
}

// ImageSize is a requested icon size tier, formatted as WxH.
type ImageSize string

const (
	ImageSizeXY32  ImageSize = "32x32"
	ImageSizeXY72  ImageSize = "72x72"
	ImageSizeXY128 ImageSize = "128x128"
	ImageSizeXY256 ImageSize = "256x256"
)

// ImageSource resolves an icon asset for a notification type. It may
// report that no asset exists; callers treat icons as best-effort.
type ImageSource interface {
	Path(t Type, size ImageSize, ext string) (string, bool)
}

// Throttler is the shared rate-limiting collaborator. Every notifier
// invokes it synchronously immediately before external I/O, even when its
// own configured rate is zero.
type Throttler interface {
	Throttle(ctx context.Context)
}

// Traits describes a provider's rendering constraints, consumed by the
// overflow layer between the caller and Send.
type Traits struct {
	// ServiceName is the human-readable provider name.
	ServiceName string
	// TitleMaxLen is the maximum title length. Zero means the provider
	// has no title slot: titles are folded into the body before Send.
	TitleMaxLen int
	// BodyMaxLen is the maximum body length per send. Zero disables the
	// limit.
	BodyMaxLen int
	// BodyMaxLines clamps the body to this many lines when non-zero.
	BodyMaxLines int
	// Format is the markup convention the provider renders.
	Format Format
	// Overflow is the provider's configured overflow mode.
	Overflow Overflow
	// RequestRate is the minimum interval between requests for this
	// provider. Zero disables provider-side throttling.
	RequestRate time.Duration
}

// Notifier is a component implementing a single delivery provider.
//
// Send performs one blocking delivery attempt and reports the outcome as a
// boolean; every internal failure is absorbed and logged, no error escapes.
// A Notifier instance is immutable after construction and independent of
// all other instances, but a single instance is not guaranteed safe for
// concurrent reentrant use.
type Notifier interface {
	Send(ctx context.Context, body, title string, notifyType Type) bool
	URL() string
	Traits() Traits
}
