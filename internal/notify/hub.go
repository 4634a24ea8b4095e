package notify

import (
	"context"
	"strings"

	"github.com/k3a/html2text"
)

// Hub holds a set of notifiers loaded from URLs and fans a single message
// out to all of them, with optional tag filtering and per-target body
// format conversion.
type Hub struct {
	entries []hubEntry
	env     *Env
}

type hubEntry struct {
	notifier Notifier
	tags     map[string]struct{}
}

// NewHub creates an empty hub whose notifiers share the given
// collaborators.
func NewHub(env *Env) *Hub {
	return &Hub{env: env}
}

// Add parses and loads one or more target URLs, optionally associating
// tags with them. URLs that fail to load are logged and skipped; the
// return value is false if any failed.
func (h *Hub) Add(urls []string, tags ...string) bool {
	ok := true
	for _, rawURL := range urls {
		n, err := FromURL(rawURL, h.env)
		if err != nil {
			logger().Error("failed to load notification url", "url", rawURL, "error", err)
			ok = false
			continue
		}
		h.AddNotifier(n, tags...)
	}
	return ok
}

// AddNotifier adds an already-constructed notifier.
func (h *Hub) AddNotifier(n Notifier, tags ...string) {
	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	h.entries = append(h.entries, hubEntry{notifier: n, tags: tagSet})
}

// Clear empties the target list.
func (h *Hub) Clear() {
	h.entries = nil
}

// Len returns the number of loaded targets.
func (h *Hub) Len() int {
	return len(h.entries)
}

// URLs returns the serialized URL of every loaded target.
func (h *Hub) URLs() []string {
	urls := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		urls = append(urls, e.notifier.URL())
	}
	return urls
}

// Details returns metadata for every registered provider.
func (h *Hub) Details() []Service {
	return Services()
}

// Broadcast describes one fan-out delivery.
type Broadcast struct {
	Body  string
	Title string
	Type  Type

	// BodyFormat is the markup convention Body is written in. Empty
	// means text.
	BodyFormat Format

	// Tags filters targets: the outer slice is OR'ed, each inner group
	// is AND'ed. Nil delivers to every target.
	Tags [][]string
}

// Notify delivers the broadcast to every matching target and returns the
// conjunction of the individual results. An empty hub returns false.
func (h *Hub) Notify(ctx context.Context, b *Broadcast) bool {
	if b == nil || (b.Body == "" && b.Title == "") {
		return false
	}

	status := len(h.entries) > 0
	notifyType := b.Type
	if !notifyType.Valid() {
		notifyType = TypeInfo
	}

	// Convert the body at most once per target format.
	conversions := map[Format]string{}

	for _, e := range h.entries {
		if !matchTags(e.tags, b.Tags) {
			continue
		}

		targetFormat := e.notifier.Traits().Format
		body, done := conversions[targetFormat]
		if !done {
			body = convertBody(b.Body, b.BodyFormat, targetFormat)
			conversions[targetFormat] = body
		}

		if !Notify(ctx, e.notifier, body, b.Title, notifyType) {
			status = false
		}
	}
	return status
}

// matchTags applies the OR-of-AND-groups tag filter. A target with no
// tags only matches an unfiltered broadcast.
func matchTags(entryTags map[string]struct{}, filter [][]string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, group := range filter {
		if len(group) == 0 {
			continue
		}
		matched := true
		for _, tag := range group {
			if _, ok := entryTags[tag]; !ok {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// textToHTMLReplacer escapes the characters that conflict with HTML
// rendering and preserves runs of whitespace.
var textToHTMLReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	" ", "&nbsp;",
	"\t", "&nbsp;&nbsp;&nbsp;",
)

// convertBody adapts a message body from the format it was written in to
// the format a target renders. Unsupported combinations pass through
// unchanged.
func convertBody(body string, from, to Format) string {
	if from == "" {
		from = FormatText
	}
	if to == "" {
		to = FormatText
	}
	switch {
	case from == to:
		return body
	case from == FormatHTML && to == FormatText:
		return html2text.HTML2Text(body)
	case from == FormatText && to == FormatHTML:
		escaped := textToHTMLReplacer.Replace(body)
		return lineBreakRE.ReplaceAllString(escaped, "<br/>\r\n")
	default:
		// Markdown conversion is left to the receiving service.
		return body
	}
}
