package form

import (
	"fmt"
	"strings"
)

// Field is one parsed config line describing a single form entry.
type Field struct {
	Required bool   // "*" marker: the resolved value must be non-empty
	Prompted bool   // "!" marker: ask the user, falling back to Value
	Type     Kind
	Key      string // "entry.<id>" parameter name, or a bare key for extra fields
	Title    string // human-readable label, defaults to Key
	Value    string // raw default text, may be empty
	Line     int    // 1-based config line, 0 when built by hand
}

// Tokenize parses one config line into a Field. Blank lines and lines
// starting with "#" are skipped, returning (nil, nil). Whitespace around
// every token is insignificant.
func Tokenize(line string) (*Field, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	left, value, found := cut(trimmed, "=")
	if !found {
		return nil, &Error{Type: ErrMalformedLine, Message: `missing title-value separator "="`}
	}

	var f Field
	f.Value = value
	if strings.HasPrefix(left, "*") {
		f.Required = true
		left = strings.TrimSpace(left[1:])
	}
	if strings.HasPrefix(left, "!") {
		f.Prompted = true
		left = strings.TrimSpace(left[1:])
	}

	token, rest, found := cut(left, "-")
	if !found {
		return nil, &Error{Type: ErrMalformedLine, Message: `missing type-key separator "-"`}
	}
	kind, err := ResolveKind(token)
	if err != nil {
		return nil, err
	}
	f.Type = kind

	key, title, found := cut(rest, ";")
	if key == "" {
		return nil, &Error{Type: ErrMalformedLine, Message: "missing key"}
	}
	f.Key = key
	f.Title = title
	if !found || title == "" {
		f.Title = key
	}
	if f.Type != KindExtra && !strings.HasPrefix(f.Key, "entry.") {
		return nil, &Error{
			Type:    ErrMalformedLine,
			Field:   f.Key,
			Message: fmt.Sprintf(`key must have the "entry." prefix for type %s`, f.Type),
		}
	}
	return &f, nil
}

// cut splits s around the first sep and trims both halves.
func cut(s, sep string) (before, after string, found bool) {
	before, after, found = strings.Cut(s, sep)
	return strings.TrimSpace(before), strings.TrimSpace(after), found
}

// String renders the field in canonical config form. Tokenize(f.String())
// reproduces f for any field Tokenize produced.
func (f *Field) String() string {
	var b strings.Builder
	if f.Required {
		b.WriteByte('*')
	}
	if f.Prompted {
		b.WriteByte('!')
	}
	fmt.Fprintf(&b, "%s-%s;%s=%s", f.Type, f.Key, f.Title, f.Value)
	return b.String()
}
