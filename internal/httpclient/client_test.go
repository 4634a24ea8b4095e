package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientDo(t *testing.T) {
	t.Run("injects user agent", func(t *testing.T) {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := New(&Config{UserAgent: "Test-App"})
		defer c.Close()

		resp, err := c.Post(context.Background(), srv.URL, "application/json", []byte(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		DrainAndClose(resp)

		if gotUA != "Test-App" {
			t.Errorf("expected User-Agent 'Test-App', got %q", gotUA)
		}
	})

	t.Run("preserves explicit user agent", func(t *testing.T) {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		c := New(nil)
		defer c.Close()

		req, _ := http.NewRequest(http.MethodPost, srv.URL, http.NoBody)
		req.Header.Set("User-Agent", "custom")
		resp, err := c.Do(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		DrainAndClose(resp)

		if gotUA != "custom" {
			t.Errorf("expected User-Agent 'custom', got %q", gotUA)
		}
	})

	t.Run("applies default timeout when context has no deadline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := New(&Config{DefaultTimeout: 20 * time.Millisecond})
		defer c.Close()

		req, _ := http.NewRequest(http.MethodGet, srv.URL, http.NoBody)
		resp, err := c.Do(context.Background(), req)
		if err == nil {
			DrainAndClose(resp)
			t.Fatal("expected timeout error")
		}
	})

	t.Run("nil request rejected", func(t *testing.T) {
		c := New(nil)
		defer c.Close()
		if _, err := c.Do(context.Background(), nil); err == nil {
			t.Fatal("expected error for nil request")
		}
	})
}
