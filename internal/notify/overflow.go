package notify

import (
	"context"
	"regexp"
	"strings"
)

var lineBreakRE = regexp.MustCompile(`\r*\n`)

// chunk is one title/body pair produced by the overflow layer.
type chunk struct {
	title string
	body  string
}

// applyOverflow adapts a message to a provider's rendering constraints:
// providers without a title slot get the title folded into the body, the
// line clamp applies next, and the overflow mode then decides whether the
// body is passed upstream, truncated, or split into multiple chunks.
func applyOverflow(tr Traits, body, title string, mode Overflow) []chunk {
	title = strings.TrimSpace(title)
	body = strings.TrimRight(body, " \t\r\n")

	if !mode.Valid() {
		mode = OverflowUpstream
	}

	if tr.TitleMaxLen <= 0 {
		// No title slot; fold the title into the body.
		body = title + "\r\n" + body
		title = ""
	}

	if tr.BodyMaxLines > 0 {
		lines := lineBreakRE.Split(body, -1)
		if len(lines) > tr.BodyMaxLines {
			lines = lines[:tr.BodyMaxLines]
		}
		body = strings.Join(lines, "\r\n")
	}

	if mode == OverflowUpstream {
		return []chunk{{title: title, body: body}}
	}

	if len(title) > tr.TitleMaxLen {
		title = title[:tr.TitleMaxLen]
	}

	if tr.BodyMaxLen <= 0 || len(body) <= tr.BodyMaxLen {
		return []chunk{{title: title, body: body}}
	}

	if mode == OverflowTruncate {
		return []chunk{{title: title, body: body[:tr.BodyMaxLen]}}
	}

	// Split mode: deliver the body as consecutive windows.
	chunks := make([]chunk, 0, (len(body)+tr.BodyMaxLen-1)/tr.BodyMaxLen)
	for i := 0; i < len(body); i += tr.BodyMaxLen {
		end := min(i+tr.BodyMaxLen, len(body))
		chunks = append(chunks, chunk{title: title, body: body[i:end]})
	}
	return chunks
}

// Notify delivers a message through n after applying its overflow policy.
// Providers that declare no title slot receive the title folded into the
// body; every chunk must succeed for the overall result to be true.
func Notify(ctx context.Context, n Notifier, body, title string, notifyType Type) bool {
	return NotifyWithOverflow(ctx, n, body, title, notifyType, "")
}

// NotifyWithOverflow is Notify with an explicit overflow mode override;
// an empty mode falls back to the provider default.
func NotifyWithOverflow(ctx context.Context, n Notifier, body, title string, notifyType Type, mode Overflow) bool {
	tr := n.Traits()
	if mode == "" {
		mode = tr.Overflow
	}
	for _, c := range applyOverflow(tr, body, title, mode) {
		if !n.Send(ctx, c.body, c.title, notifyType) {
			return false
		}
	}
	return true
}
