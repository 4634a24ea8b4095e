// Package errors provides centralized error handling with category and
// component metadata so delivery failures can be grouped in logs.
package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
	"time"
)

// Category groups errors by failure class.
type Category string

const (
	CategoryValidation    Category = "validation"
	CategoryURLParse      Category = "url-parse"
	CategoryConfiguration Category = "configuration"
	CategoryNetwork       Category = "network"
	CategoryHTTP          Category = "http-request"
	CategoryCapability    Category = "capability"
	CategoryImage         Category = "image"
	CategoryGeneric       Category = "generic"
)

// ComponentUnknown is used when the component has not been set.
const ComponentUnknown = "unknown"

// EnhancedError wraps an error with additional context and metadata.
type EnhancedError struct {
	Err       error          // Original error
	Component string         // Component where the error occurred
	Category  Category       // Error category for grouping
	Context   map[string]any // Additional context data
	Timestamp time.Time      // When the error occurred
}

// Error implements the error interface.
func (ee *EnhancedError) Error() string {
	return ee.Err.Error()
}

// Unwrap implements the error unwrapping interface.
func (ee *EnhancedError) Unwrap() error {
	return ee.Err
}

// Is matches either the wrapped error or another EnhancedError of the
// same category.
func (ee *EnhancedError) Is(target error) bool {
	if ee2, ok := target.(*EnhancedError); ok {
		return ee.Category == ee2.Category
	}
	return stderrors.Is(ee.Err, target)
}

// GetContext returns a copy of the error context.
func (ee *EnhancedError) GetContext() map[string]any {
	if ee.Context == nil {
		return nil
	}
	contextCopy := make(map[string]any, len(ee.Context))
	maps.Copy(contextCopy, ee.Context)
	return contextCopy
}

// LogAttrs returns the metadata as alternating key/value pairs suitable
// for slog calls.
func (ee *EnhancedError) LogAttrs() []any {
	attrs := []any{
		"component", ee.Component,
		"category", string(ee.Category),
	}
	for k, v := range ee.Context {
		attrs = append(attrs, k, v)
	}
	return attrs
}

// Builder constructs an EnhancedError step by step.
type Builder struct {
	err       error
	component string
	category  Category
	context   map[string]any
}

// New starts building an enhanced error from an existing error.
func New(err error) *Builder {
	return &Builder{err: err, category: CategoryGeneric}
}

// Newf starts building an enhanced error from a format string.
func Newf(format string, args ...any) *Builder {
	return New(fmt.Errorf(format, args...))
}

// Component sets the component name.
func (b *Builder) Component(component string) *Builder {
	b.component = component
	return b
}

// Category sets the error category.
func (b *Builder) Category(category Category) *Builder {
	b.category = category
	return b
}

// Context adds a key/value pair to the error context.
func (b *Builder) Context(key string, value any) *Builder {
	if b.context == nil {
		b.context = make(map[string]any)
	}
	b.context[key] = value
	return b
}

// Build finalizes the enhanced error.
func (b *Builder) Build() *EnhancedError {
	component := b.component
	if component == "" {
		component = ComponentUnknown
	}
	return &EnhancedError{
		Err:       b.err,
		Component: component,
		Category:  b.category,
		Context:   b.context,
		Timestamp: time.Now(),
	}
}

// Standard library passthroughs so callers only import this package.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Join wraps a sequence of errors into one.
func Join(errs ...error) error { return stderrors.Join(errs...) }

// Unwrap returns the result of calling Unwrap on err.
func Unwrap(err error) error { return stderrors.Unwrap(err) }
