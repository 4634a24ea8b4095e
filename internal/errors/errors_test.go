package errors

import (
	stderrors "errors"
	"testing"
)

func TestBuilder(t *testing.T) {
	t.Run("carries component and category", func(t *testing.T) {
		err := Newf("no session bus").
			Component("gnome").
			Category(CategoryCapability).
			Build()

		if err.Component != "gnome" {
			t.Errorf("expected component 'gnome', got %q", err.Component)
		}
		if err.Category != CategoryCapability {
			t.Errorf("expected capability category, got %q", err.Category)
		}
		if err.Error() != "no session bus" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("defaults", func(t *testing.T) {
		err := Newf("boom").Build()
		if err.Component != ComponentUnknown {
			t.Errorf("expected unknown component, got %q", err.Component)
		}
		if err.Category != CategoryGeneric {
			t.Errorf("expected generic category, got %q", err.Category)
		}
	})

	t.Run("unwraps to the original error", func(t *testing.T) {
		sentinel := stderrors.New("sentinel")
		err := New(sentinel).Category(CategoryNetwork).Build()
		if !Is(err, sentinel) {
			t.Error("expected Is to match the wrapped error")
		}
	})

	t.Run("matches other enhanced errors by category", func(t *testing.T) {
		a := Newf("a").Category(CategoryHTTP).Build()
		b := Newf("b").Category(CategoryHTTP).Build()
		if !Is(a, b) {
			t.Error("expected same-category enhanced errors to match")
		}
	})

	t.Run("context is copied out", func(t *testing.T) {
		err := Newf("status").Category(CategoryHTTP).Context("status_code", 404).Build()
		ctx := err.GetContext()
		ctx["status_code"] = 500
		if err.Context["status_code"] != 404 {
			t.Error("GetContext must return a copy")
		}
	})
}
