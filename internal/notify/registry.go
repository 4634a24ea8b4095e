package notify

import (
	"sort"
	"strings"
	"sync"

	"github.com/tphakala/gonotify/internal/errors"
)

// Factory builds a notifier from a parsed URL configuration.
type Factory func(cfg *Config, env *Env) (Notifier, error)

// Service describes one registered provider: its name, the URL schemes it
// claims, and its factory.
type Service struct {
	Name    string
	Schemes []string
	Factory Factory
}

var (
	registryMu sync.RWMutex
	schemaMap  = map[string]*Service{}
	services   []*Service
)

// register adds a provider to the scheme dispatch table. Called from init
// functions of the provider files; first registration of a scheme wins.
func register(s Service) {
	registryMu.Lock()
	defer registryMu.Unlock()
	svc := &s
	services = append(services, svc)
	for _, scheme := range s.Schemes {
		scheme = strings.ToLower(scheme)
		if _, exists := schemaMap[scheme]; !exists {
			schemaMap[scheme] = svc
		}
	}
}

// Services returns the registered providers sorted by name.
func Services() []Service {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Service, 0, len(services))
	for _, s := range services {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Schemes returns every registered URL scheme, sorted.
func Schemes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(schemaMap))
	for scheme := range schemaMap {
		out = append(out, scheme)
	}
	sort.Strings(out)
	return out
}

// FromURL parses a provider URL and instantiates the notifier registered
// for its scheme. URLs whose scheme no provider claims are handed to the
// shoutrrr bridge as a fallback before being rejected.
func FromURL(rawURL string, env *Env) (Notifier, error) {
	cfg, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	registryMu.RLock()
	svc := schemaMap[cfg.Schema]
	registryMu.RUnlock()

	if svc == nil {
		if n, bridgeErr := newBridge(rawURL, env); bridgeErr == nil {
			return n, nil
		}
		return nil, errors.Newf("%s is not a supported service scheme (url=%s)", cfg.Schema, rawURL).
			Component("registry").Category(errors.CategoryConfiguration).Build()
	}

	n, err := svc.Factory(cfg, env)
	if err != nil {
		return nil, errors.New(err).
			Component("registry").Category(errors.CategoryConfiguration).
			Context("scheme", cfg.Schema).Build()
	}
	return n, nil
}
