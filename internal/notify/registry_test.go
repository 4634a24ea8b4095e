package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("native schemes are registered", func(t *testing.T) {
		schemes := Schemes()
		assert.Contains(t, schemes, "json")
		assert.Contains(t, schemes, "jsons")
		assert.Contains(t, schemes, "gnome")
		assert.Contains(t, schemes, "desktop")
	})

	t.Run("services are sorted by name", func(t *testing.T) {
		services := Services()
		require.NotEmpty(t, services)
		for i := 1; i < len(services); i++ {
			assert.LessOrEqual(t, services[i-1].Name, services[i].Name)
		}
	})
}

func TestFromURL(t *testing.T) {
	t.Run("json scheme builds the http notifier", func(t *testing.T) {
		n, err := FromURL("json://example.com/hook", nil)
		require.NoError(t, err)
		_, ok := n.(*JSON)
		assert.True(t, ok)
	})

	t.Run("secure scheme builds the same provider", func(t *testing.T) {
		n, err := FromURL("jsons://example.com/hook", nil)
		require.NoError(t, err)
		j, ok := n.(*JSON)
		require.True(t, ok)
		assert.Contains(t, j.URL(), "jsons://")
	})

	t.Run("scheme dispatch is case insensitive", func(t *testing.T) {
		n, err := FromURL("GNOME://", nil)
		require.NoError(t, err)
		_, ok := n.(*Gnome)
		assert.True(t, ok)
	})

	t.Run("unregistered scheme falls back to the bridge", func(t *testing.T) {
		n, err := FromURL("logger://", nil)
		require.NoError(t, err)
		b, ok := n.(*Bridge)
		require.True(t, ok)
		assert.Equal(t, "logger://", b.URL())
	})

	t.Run("unknown scheme is rejected", func(t *testing.T) {
		_, err := FromURL("notascheme://example.com", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notascheme")
	})

	t.Run("schemeless url is rejected", func(t *testing.T) {
		_, err := FromURL("example.com/hook", nil)
		require.Error(t, err)
	})

	t.Run("empty url is rejected", func(t *testing.T) {
		_, err := FromURL("", nil)
		require.Error(t, err)
	})
}
