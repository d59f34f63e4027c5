package form

import (
	"fmt"
	"strings"
	"time"
)

// PromptFunc asks the user for a field value. title labels the field, def
// is the default used when the response is blank, and kind lets the
// provider show a format hint. Returning an error aborts resolution.
type PromptFunc func(title, def string, kind Kind) (string, error)

// NoPrompt keeps every default without asking. Non-interactive runs use it
// in place of a real prompt provider.
func NoPrompt(title, def string, kind Kind) (string, error) {
	return "", nil
}

// ResolvedField is a field after prompting, defaulting and normalization.
type ResolvedField struct {
	Key   string
	Title string
	Type  Kind
	Value Value
}

type options struct {
	now func() time.Time
}

// Option adjusts resolution behavior.
type Option func(*options)

// WithClock overrides the clock behind the "today" and "now" literals.
// Tests pin it to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Resolve produces the field's final value: prompt the user if the field
// is marked "!", fall back to the default on a blank response, reject
// blank values on "*" fields, and normalize whatever remains. Optional
// fields left blank resolve to the kind's empty value without
// normalization.
func (f *Field) Resolve(prompt PromptFunc, opts ...Option) (ResolvedField, error) {
	return resolveField(f, prompt, newOptions(opts))
}

func resolveField(f *Field, prompt PromptFunc, o *options) (ResolvedField, error) {
	if prompt == nil {
		prompt = NoPrompt
	}
	candidate := f.Value
	if f.Prompted {
		response, err := prompt(f.Title, candidate, f.Type)
		if err != nil {
			return ResolvedField{}, fmt.Errorf("prompt for %q: %w", f.Title, err)
		}
		if response = strings.TrimSpace(response); response != "" {
			candidate = response
		}
	}
	if f.Required && candidate == "" {
		return ResolvedField{}, &Error{Type: ErrRequiredMissing, Line: f.Line, Field: f.Title}
	}
	resolved := ResolvedField{Key: f.Key, Title: f.Title, Type: f.Type, Value: Value{Kind: f.Type}}
	if candidate == "" {
		return resolved, nil
	}
	value, err := normalizeValue(f.Type, candidate, o.now())
	if err != nil {
		return ResolvedField{}, &Error{Type: ErrValueFormat, Line: f.Line, Field: f.Title, Message: err.Error(), Cause: err}
	}
	resolved.Value = value
	return resolved, nil
}
