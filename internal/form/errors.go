package form

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories for config parsing and resolution failures. Callers
// match them with errors.Is.
var (
	ErrMalformedLine   = errors.New("malformed line")
	ErrUnknownType     = errors.New("unknown field type")
	ErrRequiredMissing = errors.New("required value missing")
	ErrValueFormat     = errors.New("invalid value format")
	ErrDuplicateKey    = errors.New("duplicate entry key")
	ErrMissingURL      = errors.New("missing form URL")
)

// Error is a config failure tied to a single line.
type Error struct {
	Type    error  // one of the category sentinels above
	Line    int    // 1-based position in the config file, 0 when unknown
	Field   string // field title or key, may be empty
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Type.Error())
	if e.Field != "" {
		fmt.Fprintf(&b, " for %q", e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is match an *Error against its category sentinel.
func (e *Error) Is(target error) bool { return target == e.Type }

// Errors collects every line error found in a parse pass, in line order.
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (es Errors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}
