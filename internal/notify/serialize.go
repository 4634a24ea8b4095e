package notify

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// quote percent-encodes s with an empty safe charset, so that even '/'
// and ':' are escaped. Spaces encode as %20, not '+'.
func quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// urlencode renders args as a deterministic key=value&... query string
// with both keys and values percent-encoded.
func urlencode(args map[string]string) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(quote(k))
		sb.WriteByte('=')
		sb.WriteString(quote(args[k]))
	}
	return sb.String()
}

// formatAuth renders the URL authority credentials segment: user:pass@,
// user@, or empty when no user is configured.
func formatAuth(user, password string) string {
	switch {
	case user != "" && password != "":
		return quote(user) + ":" + quote(password) + "@"
	case user != "":
		return quote(user) + "@"
	}
	return ""
}

// formatPort renders the :port URL segment, omitting it when the port is
// unset or equals the scheme's implied default.
func formatPort(port, defaultPort int) string {
	if port == 0 || port == defaultPort {
		return ""
	}
	return ":" + strconv.Itoa(port)
}
