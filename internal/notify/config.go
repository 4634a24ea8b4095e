package notify

import (
	"maps"
)

// Config is the parsed, validated representation of a provider URL. It is
// constructed once per notification target and never mutated by Send.
type Config struct {
	// Schema is the lowercased URL scheme the target was addressed with.
	Schema string

	// User and Password are the optional credentials from the URL
	// authority (or their user=/pass= query overrides). An empty User
	// means no credentials.
	User     string
	Password string

	// Host is the target hostname. Port is zero when not explicitly set.
	Host string
	Port int

	// FullPath is the normalized URL path; empty when the URL had none.
	FullPath string

	// Secure selects the https-style scheme variant.
	Secure bool

	// Verify controls TLS certificate verification (default true,
	// overridable with a verify= query argument).
	Verify bool

	// Format and Overflow are the inherited rendering-mode settings.
	Format   Format
	Overflow Overflow

	// QSD holds every query argument keyed by lowercased name. QSDMinus
	// and QSDPlus hold the '-'/'+' prefixed namespaces with the prefix
	// stripped and the original key case preserved.
	QSD      map[string]string
	QSDMinus map[string]string
	QSDPlus  map[string]string

	// RawURL is the URL the config was parsed from.
	RawURL string
}

// Headers merges the two custom-header query namespaces into a single
// mapping, with the '+'-prefixed set applied last so it wins on collision.
func (c *Config) Headers() map[string]string {
	headers := make(map[string]string, len(c.QSDMinus)+len(c.QSDPlus))
	maps.Copy(headers, c.QSDMinus)
	maps.Copy(headers, c.QSDPlus)
	return headers
}

// newConfig returns a Config with the documented defaults applied.
func newConfig() *Config {
	return &Config{
		Verify:   true,
		Format:   FormatText,
		Overflow: OverflowUpstream,
		QSD:      map[string]string{},
		QSDMinus: map[string]string{},
		QSDPlus:  map[string]string{},
	}
}
