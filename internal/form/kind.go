// Package form parses form config files and resolves them into ready-to-post
// submissions. A config is one URL line followed by field lines in the shape
//
//	["*"]["!"]type-key[;title]=[value]
//
// where "*" marks the field required and "!" asks the user for the value.
package form

import (
	"fmt"
	"strings"
)

// Kind is a field's canonical type after alias resolution.
type Kind string

const (
	KindWords      Kind = "words"
	KindChoice     Kind = "choice"
	KindCheckboxes Kind = "checkboxes"
	KindDate       Kind = "date"
	KindTime       Kind = "time"
	KindExtra      Kind = "extra"
)

// kindAliases maps every accepted type token, lowercased, to its canonical
// kind. Canonical names resolve to themselves. Built once at init and
// read-only afterwards.
var kindAliases = map[string]Kind{}

func init() {
	aliases := map[Kind][]string{
		KindWords:      {"w", "word", "text"},
		KindChoice:     {"m", "mc", "multiple choice"},
		KindCheckboxes: {"c", "checkbox"},
		KindDate:       {"d"},
		KindTime:       {"t"},
		KindExtra:      {"x", "xd", "extra data"},
	}
	for kind, names := range aliases {
		kindAliases[string(kind)] = kind
		for _, name := range names {
			kindAliases[name] = kind
		}
	}
}

// ResolveKind matches a type token against the alias table. Matching is
// case-insensitive and ignores surrounding whitespace.
func ResolveKind(token string) (Kind, error) {
	kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return "", &Error{Type: ErrUnknownType, Message: fmt.Sprintf("type not valid: %q", token)}
	}
	return kind, nil
}

// Hint describes the expected input format for a kind, shown next to
// interactive prompts.
func (k Kind) Hint() string {
	switch k {
	case KindWords:
		return "[Text]"
	case KindChoice:
		return "[Multiple Choice]"
	case KindCheckboxes:
		return "[Checkboxes (comma-separated)]"
	case KindDate:
		return "[Date MM/DD/YYYY or 'today']"
	case KindTime:
		return "[Time HH:MM or 'now']"
	case KindExtra:
		return "[Extra Data]"
	}
	return ""
}
