package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopSend(t *testing.T) {
	type call struct {
		title, message, icon string
	}

	t.Run("delivers title body and icon", func(t *testing.T) {
		var got call
		d, err := NewDesktop(nil, &Env{Assets: &fakeAssets{path: "/icons/info.png"}},
			WithNotifyFunc(func(title, message, appIcon string) error {
				got = call{title: title, message: message, icon: appIcon}
				return nil
			}))
		require.NoError(t, err)

		assert.True(t, d.Send(t.Context(), "body", "title", TypeInfo))
		assert.Equal(t, call{title: "title", message: "body", icon: "/icons/info.png"}, got)
	})

	t.Run("platform failure returns false", func(t *testing.T) {
		d, err := NewDesktop(nil, nil, WithNotifyFunc(func(string, string, string) error {
			return errors.New("no notification daemon")
		}))
		require.NoError(t, err)

		assert.False(t, d.Send(t.Context(), "body", "title", TypeInfo))
	})

	t.Run("throttle precedes the platform call", func(t *testing.T) {
		var events []string
		throttle := newRecordingThrottler(&events)
		d, err := NewDesktop(nil, &Env{Throttle: throttle},
			WithNotifyFunc(func(string, string, string) error {
				events = append(events, "notify")
				return nil
			}))
		require.NoError(t, err)

		require.True(t, d.Send(t.Context(), "body", "", TypeInfo))
		assert.Equal(t, []string{"throttle", "notify"}, events)
	})

	t.Run("url is the bare scheme", func(t *testing.T) {
		n, err := FromURL("desktop://", nil)
		require.NoError(t, err)
		assert.Equal(t, "desktop://", n.URL())
	})
}
