package form

import (
	"fmt"
	"strings"
)

const formIDLength = 56

// NormalizeURL converts a form link into its POST endpoint. It accepts the
// bare 56-character form ID, the public viewform link, and the
// formResponse link itself.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if isFormID(raw) {
		if len(raw) != formIDLength {
			return "", fmt.Errorf("form ID must be %d characters, got %d", formIDLength, len(raw))
		}
		return fmt.Sprintf("https://docs.google.com/forms/d/e/%s/formResponse", raw), nil
	}
	if strings.HasSuffix(raw, "formResponse") {
		return raw, nil
	}
	if strings.HasSuffix(raw, "viewform") {
		return strings.TrimSuffix(raw, "viewform") + "formResponse", nil
	}
	return "", fmt.Errorf("cannot convert %q into a form link", raw)
}

// NormalizeViewURL converts a form link into the public page it is viewed
// on, the counterpart of NormalizeURL.
func NormalizeViewURL(raw string) (string, error) {
	normalized, err := NormalizeURL(raw)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(normalized, "formResponse") + "viewform", nil
}

// isFormID reports whether every character of s is legal in a form ID.
// The empty string counts as an ID of invalid length, so blank URL lines
// report the length error.
func isFormID(s string) bool {
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
