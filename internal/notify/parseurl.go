package notify

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/tphakala/gonotify/internal/errors"
)

var (
	schemaRE     = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9.+-]*)://`)
	multiSlashRE = regexp.MustCompile(`/+`)
)

// unknownSchema is assumed when a URL carries no scheme at all; dispatch
// layers reject it, but the parser itself stays lenient.
const unknownSchema = "unknown"

// ParseURL breaks a provider URL into the shared configuration model.
//
// Query arguments feed three namespaces: every argument lands in QSD under
// its lowercased key; arguments whose key starts with '-' or '+'
// additionally land in QSDMinus/QSDPlus with the prefix stripped and the
// key case preserved. Keys and values are percent-decoded.
func ParseURL(rawURL string) (*Config, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, errors.Newf("empty URL").
			Component("parser").Category(errors.CategoryURLParse).Build()
	}

	cfg := newConfig()
	cfg.RawURL = rawURL

	normalized := trimmed
	if m := schemaRE.FindStringSubmatch(trimmed); m != nil {
		cfg.Schema = strings.ToLower(m[1])
	} else {
		cfg.Schema = unknownSchema
		normalized = unknownSchema + "://" + trimmed
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return nil, errors.New(err).
			Component("parser").Category(errors.CategoryURLParse).
			Context("url", rawURL).Build()
	}

	if u.User != nil {
		cfg.User = u.User.Username()
		if password, ok := u.User.Password(); ok {
			cfg.Password = password
		}
	}

	cfg.Host = u.Hostname()
	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, errors.Newf("invalid port %q in URL", portStr).
				Component("parser").Category(errors.CategoryURLParse).Build()
		}
		cfg.Port = port
	}

	if u.Path != "" {
		cfg.FullPath = multiSlashRE.ReplaceAllString(u.Path, "/")
	}

	parseQuery(cfg, u.RawQuery)

	// A scheme ending in 's' is the secure variant of its provider.
	cfg.Secure = strings.HasSuffix(cfg.Schema, "s")

	applyQueryOverrides(cfg)

	return cfg, nil
}

// parseQuery splits a raw query string into the three namespaces without
// losing key case for the prefixed sets.
func parseQuery(cfg *Config, rawQuery string) {
	if rawQuery == "" {
		return
	}
	for pair := range strings.SplitSeq(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = queryUnescape(key)
		value = queryUnescape(value)
		if key == "" {
			continue
		}

		cfg.QSD[strings.ToLower(key)] = value

		switch {
		case strings.HasPrefix(key, "-") && len(key) > 1:
			cfg.QSDMinus[key[1:]] = value
		case strings.HasPrefix(key, "+") && len(key) > 1:
			cfg.QSDPlus[key[1:]] = value
		}
	}
}

// applyQueryOverrides folds the well-known query arguments into their
// dedicated config fields.
func applyQueryOverrides(cfg *Config) {
	if v, ok := cfg.QSD["verify"]; ok {
		cfg.Verify = parseBool(v, true)
	}

	if v, ok := cfg.QSD["format"]; ok {
		format := Format(strings.ToLower(v))
		if format.Valid() {
			cfg.Format = format
		} else {
			logger().Warn("unsupported format specified", "format", v)
		}
	}

	if v, ok := cfg.QSD["overflow"]; ok {
		overflow := Overflow(strings.ToLower(v))
		if overflow.Valid() {
			cfg.Overflow = overflow
		} else {
			logger().Warn("unsupported overflow specified", "overflow", v)
		}
	}

	if v, ok := cfg.QSD["pass"]; ok {
		cfg.Password = v
	}
	if v, ok := cfg.QSD["user"]; ok {
		cfg.User = v
	}
}

// queryUnescape percent-decodes s. A literal '+' stays a '+': it marks
// the header namespace in keys, so plus-as-space decoding would corrupt
// it. Undecodable input is kept verbatim rather than dropped.
func queryUnescape(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}
	return s
}

// parseBool interprets the truthy and falsy spellings accepted in URL
// query arguments, falling back to def for anything unrecognized.
func parseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "enable", "enabled", "active", "1", "t", "y", "+":
		return true
	case "false", "no", "off", "disable", "disabled", "inactive", "0", "f", "n", "-":
		return false
	}
	return def
}
