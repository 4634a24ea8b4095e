// Package asset resolves icon files for notification types from a themed
// asset directory. Lookups hit the filesystem at most once per TTL; both
// hits and misses are memoized.
package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tphakala/gonotify/internal/notify"
)

const (
	defaultTheme = "default"
	defaultTTL   = 10 * time.Minute

	// missing is cached under the resolved key when no asset exists, so
	// repeated sends on icon-less installs stay cheap.
	missing = ""
)

// Theme resolves icon paths of the form
// {dir}/{theme}-{type}-{size}{ext}, e.g. default-info-128x128.ico.
type Theme struct {
	dir   string
	theme string
	cache *gocache.Cache
}

// New creates a theme rooted at dir. An empty dir yields a resolver that
// never finds anything, which callers treat as "no icon".
func New(dir, theme string, ttl time.Duration) *Theme {
	if theme == "" {
		theme = defaultTheme
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Theme{
		dir:   dir,
		theme: theme,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Path returns the filesystem path of the icon asset for the given
// notification type, size tier and file extension, and whether it exists.
func (t *Theme) Path(notifyType notify.Type, size notify.ImageSize, ext string) (string, bool) {
	if t == nil || t.dir == "" {
		return "", false
	}
	if ext == "" {
		ext = ".png"
	}

	name := fmt.Sprintf("%s-%s-%s%s", t.theme, notifyType, size, ext)
	if cached, found := t.cache.Get(name); found {
		path, _ := cached.(string)
		return path, path != missing
	}

	path := filepath.Join(t.dir, name)
	if _, err := os.Stat(path); err != nil {
		t.cache.SetDefault(name, missing)
		return "", false
	}

	t.cache.SetDefault(name, path)
	return path, true
}
