package form

import (
	"errors"
	"fmt"
	"strings"
)

// Config is a fully resolved form submission: the POST endpoint plus the
// resolved fields in file order.
type Config struct {
	URL    string
	Fields []ResolvedField
}

// Build tokenizes and resolves field lines against a form URL. The
// tokenize stage runs over every line first, collecting all grammar,
// type and duplicate-key errors into an Errors value before any
// prompting happens. Resolution then walks the fields in file order and
// stops at the first failure.
func Build(url string, lines []string, prompt PromptFunc, opts ...Option) (*Config, error) {
	return build(url, lines, 1, prompt, newOptions(opts))
}

// BuildDocument builds a whole config text, treating the first non-blank
// line as the form URL. Line numbers in errors refer to positions in text.
func BuildDocument(text string, prompt PromptFunc, opts ...Option) (*Config, error) {
	url, lines, first, err := splitDocument(text)
	if err != nil {
		return nil, err
	}
	return build(url, lines, first, prompt, newOptions(opts))
}

func build(url string, lines []string, first int, prompt PromptFunc, o *options) (*Config, error) {
	normalized, err := NormalizeURL(url)
	if err != nil {
		return nil, &Error{Type: ErrMissingURL, Message: err.Error(), Cause: err}
	}
	fields, errs := parseLines(lines, first)
	if len(errs) > 0 {
		return nil, errs
	}
	cfg := &Config{URL: normalized, Fields: make([]ResolvedField, 0, len(fields))}
	for _, f := range fields {
		resolved, err := resolveField(f, prompt, o)
		if err != nil {
			return nil, err
		}
		cfg.Fields = append(cfg.Fields, resolved)
	}
	return cfg, nil
}

// Check runs the tokenize stage only and reports every line error. It
// never prompts and never normalizes values.
func Check(lines []string) Errors {
	_, errs := parseLines(lines, 1)
	return errs
}

// CheckDocument checks a whole config text, URL line included.
func CheckDocument(text string) Errors {
	url, lines, first, err := splitDocument(text)
	if err != nil {
		var fe *Error
		if !errors.As(err, &fe) {
			fe = &Error{Type: ErrMissingURL, Message: err.Error(), Cause: err}
		}
		return Errors{fe}
	}
	var errs Errors
	if _, uerr := NormalizeURL(url); uerr != nil {
		errs = append(errs, &Error{Type: ErrMissingURL, Line: first - 1, Message: uerr.Error(), Cause: uerr})
	}
	_, lineErrs := parseLines(lines, first)
	return append(errs, lineErrs...)
}

// splitDocument separates the URL line from the field lines. The first
// line that is neither blank nor a comment is always the URL, even when
// it looks like a field.
func splitDocument(text string) (url string, lines []string, first int, err error) {
	all := strings.Split(text, "\n")
	for i, line := range all {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed, all[i+1:], i + 2, nil
	}
	return "", nil, 0, &Error{Type: ErrMissingURL, Message: "config has no content"}
}

// parseLines tokenizes every line, numbering from first, and rejects
// reuse of an entry key across lines.
func parseLines(lines []string, first int) ([]*Field, Errors) {
	var fields []*Field
	var errs Errors
	seen := make(map[string]int)
	for i, line := range lines {
		num := first + i
		f, err := Tokenize(line)
		if err != nil {
			var fe *Error
			if !errors.As(err, &fe) {
				fe = &Error{Type: ErrMalformedLine, Message: err.Error(), Cause: err}
			}
			fe.Line = num
			errs = append(errs, fe)
			continue
		}
		if f == nil {
			continue
		}
		f.Line = num
		if prev, ok := seen[f.Key]; ok {
			errs = append(errs, &Error{
				Type:    ErrDuplicateKey,
				Line:    num,
				Field:   f.Key,
				Message: fmt.Sprintf("already used on line %d", prev),
			})
			continue
		}
		seen[f.Key] = num
		fields = append(fields, f)
	}
	return fields, errs
}

// Entries returns the fields posted as form parameters, in file order.
func (c *Config) Entries() []ResolvedField {
	return c.filter(false)
}

// Extras returns the auxiliary extra-data fields, which never reach the
// HTTP payload, in file order.
func (c *Config) Extras() []ResolvedField {
	return c.filter(true)
}

func (c *Config) filter(extra bool) []ResolvedField {
	var out []ResolvedField
	for _, f := range c.Fields {
		if (f.Type == KindExtra) == extra {
			out = append(out, f)
		}
	}
	return out
}
