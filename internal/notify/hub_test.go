package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubAdd(t *testing.T) {
	t.Run("loads valid urls", func(t *testing.T) {
		h := NewHub(nil)
		ok := h.Add([]string{"json://example.com/hook", "gnome://"})
		assert.True(t, ok)
		assert.Equal(t, 2, h.Len())
	})

	t.Run("invalid urls are skipped and reported", func(t *testing.T) {
		h := NewHub(nil)
		ok := h.Add([]string{"json://example.com/hook", "   "})
		assert.False(t, ok)
		assert.Equal(t, 1, h.Len())
	})

	t.Run("clear empties the target list", func(t *testing.T) {
		h := NewHub(nil)
		require.True(t, h.Add([]string{"gnome://"}))
		h.Clear()
		assert.Zero(t, h.Len())
	})

	t.Run("urls reports serialized targets", func(t *testing.T) {
		h := NewHub(nil)
		require.True(t, h.Add([]string{"gnome://"}))
		assert.Equal(t, []string{"gnome://"}, h.URLs())
	})
}

func TestHubNotify(t *testing.T) {
	t.Run("empty message is rejected", func(t *testing.T) {
		h := NewHub(nil)
		h.AddNotifier(&captureNotifier{traits: Traits{TitleMaxLen: 100}})
		assert.False(t, h.Notify(t.Context(), &Broadcast{}))
		assert.False(t, h.Notify(t.Context(), nil))
	})

	t.Run("empty hub returns false", func(t *testing.T) {
		h := NewHub(nil)
		assert.False(t, h.Notify(t.Context(), &Broadcast{Body: "hello"}))
	})

	t.Run("delivers to every target", func(t *testing.T) {
		a := &captureNotifier{traits: Traits{TitleMaxLen: 100}}
		b := &captureNotifier{traits: Traits{TitleMaxLen: 100}}
		h := NewHub(nil)
		h.AddNotifier(a)
		h.AddNotifier(b)

		assert.True(t, h.Notify(t.Context(), &Broadcast{Body: "hello", Title: "hi"}))
		assert.Len(t, a.sends, 1)
		assert.Len(t, b.sends, 1)
	})

	t.Run("one failing target fails the broadcast", func(t *testing.T) {
		good := &captureNotifier{traits: Traits{TitleMaxLen: 100}}
		bad := &captureNotifier{traits: Traits{TitleMaxLen: 100}, results: []bool{false}}
		h := NewHub(nil)
		h.AddNotifier(good)
		h.AddNotifier(bad)

		assert.False(t, h.Notify(t.Context(), &Broadcast{Body: "hello"}))
		assert.Len(t, good.sends, 1)
	})

	t.Run("invalid type defaults to info", func(t *testing.T) {
		n := &captureNotifier{traits: Traits{TitleMaxLen: 100}}
		h := NewHub(nil)
		h.AddNotifier(n)
		assert.True(t, h.Notify(t.Context(), &Broadcast{Body: "x", Type: Type("bogus")}))
	})
}

func TestHubTagFiltering(t *testing.T) {
	newTagged := func(h *Hub, tags ...string) *captureNotifier {
		n := &captureNotifier{traits: Traits{TitleMaxLen: 100}}
		h.AddNotifier(n, tags...)
		return n
	}

	t.Run("nil filter delivers to all", func(t *testing.T) {
		h := NewHub(nil)
		tagged := newTagged(h, "prod")
		untagged := newTagged(h)

		assert.True(t, h.Notify(t.Context(), &Broadcast{Body: "x"}))
		assert.Len(t, tagged.sends, 1)
		assert.Len(t, untagged.sends, 1)
	})

	t.Run("single tag selects matching targets", func(t *testing.T) {
		h := NewHub(nil)
		prod := newTagged(h, "prod")
		dev := newTagged(h, "dev")

		assert.True(t, h.Notify(t.Context(), &Broadcast{
			Body: "x",
			Tags: [][]string{{"prod"}},
		}))
		assert.Len(t, prod.sends, 1)
		assert.Empty(t, dev.sends)
	})

	t.Run("inner groups are conjunctive", func(t *testing.T) {
		h := NewHub(nil)
		both := newTagged(h, "prod", "urgent")
		prodOnly := newTagged(h, "prod")

		assert.True(t, h.Notify(t.Context(), &Broadcast{
			Body: "x",
			Tags: [][]string{{"prod", "urgent"}},
		}))
		assert.Len(t, both.sends, 1)
		assert.Empty(t, prodOnly.sends)
	})

	t.Run("outer groups are disjunctive", func(t *testing.T) {
		h := NewHub(nil)
		prod := newTagged(h, "prod")
		dev := newTagged(h, "dev")
		other := newTagged(h, "staging")

		assert.True(t, h.Notify(t.Context(), &Broadcast{
			Body: "x",
			Tags: [][]string{{"prod"}, {"dev"}},
		}))
		assert.Len(t, prod.sends, 1)
		assert.Len(t, dev.sends, 1)
		assert.Empty(t, other.sends)
	})

	t.Run("untagged targets never match a filtered broadcast", func(t *testing.T) {
		h := NewHub(nil)
		untagged := newTagged(h)

		// No target matched: nothing was attempted, so the broadcast
		// still reports success for the zero matching sends.
		h.Notify(t.Context(), &Broadcast{Body: "x", Tags: [][]string{{"prod"}}})
		assert.Empty(t, untagged.sends)
	})
}

func TestConvertBody(t *testing.T) {
	t.Run("same format passes through", func(t *testing.T) {
		assert.Equal(t, "a <b>", convertBody("a <b>", FormatText, FormatText))
	})

	t.Run("html to text strips markup", func(t *testing.T) {
		got := convertBody("<b>bold</b> move", FormatHTML, FormatText)
		assert.Equal(t, "bold move", got)
	})

	t.Run("text to html escapes and converts breaks", func(t *testing.T) {
		got := convertBody("a<b\nnext", FormatText, FormatHTML)
		assert.Contains(t, got, "&lt;")
		assert.Contains(t, got, "<br/>")
		assert.False(t, strings.Contains(got, "a<b"))
	})

	t.Run("empty formats mean text", func(t *testing.T) {
		assert.Equal(t, "plain", convertBody("plain", "", ""))
	})

	t.Run("markdown passes through unchanged", func(t *testing.T) {
		assert.Equal(t, "# hi", convertBody("# hi", FormatMarkdown, FormatText))
	})
}
