package form

import (
	"fmt"
	"strings"
	"time"
)

// Value is a normalized field value. Kind selects which representation
// carries the payload: Text for words, choice and extra answers, List for
// checkboxes, Time for date and time answers.
type Value struct {
	Kind Kind
	Text string
	List []string
	Time time.Time
}

// IsZero reports whether the value is the kind's empty value, an optional
// field left blank.
func (v Value) IsZero() bool {
	return v.Text == "" && v.List == nil && v.Time.IsZero()
}

// String renders the value the way it would appear in a config line.
func (v Value) String() string {
	switch v.Kind {
	case KindCheckboxes:
		return strings.Join(v.List, ", ")
	case KindDate:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.Format("01/02/2006")
	case KindTime:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.Format("15:04")
	}
	return v.Text
}

// CheckValue reports whether raw would normalize under kind. Empty input
// always passes, because a blank answer falls back to the field default.
// Interactive prompts use this to reject bad input before resolution.
func CheckValue(kind Kind, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	_, err := normalizeValue(kind, raw, time.Now())
	return err
}

// normalizeValue parses raw according to kind. now supplies the clock
// behind the "today" and "now" literals.
func normalizeValue(kind Kind, raw string, now time.Time) (Value, error) {
	v := Value{Kind: kind}
	switch kind {
	case KindWords, KindChoice, KindExtra:
		v.Text = raw
	case KindCheckboxes:
		items := strings.Split(raw, ",")
		for i, item := range items {
			item = strings.TrimSpace(item)
			if item == "" {
				return Value{}, fmt.Errorf("empty choice in value %q", raw)
			}
			items[i] = item
		}
		v.List = items
	case KindDate:
		t, err := parseDate(raw, now)
		if err != nil {
			return Value{}, err
		}
		v.Time = t
	case KindTime:
		t, err := parseClock(raw, now)
		if err != nil {
			return Value{}, err
		}
		v.Time = t
	default:
		return Value{}, fmt.Errorf("no parser for type %q", kind)
	}
	return v, nil
}

// parseDate accepts MM/DD/YYYY or the literals "today" and "current",
// which normalize to the current date before validation.
func parseDate(raw string, now time.Time) (time.Time, error) {
	if isLiteral(raw, "today", "current") {
		raw = now.Format("01/02/2006")
	}
	// time.Parse is lenient about zero padding, so check widths first.
	parts := strings.Split(raw, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return time.Time{}, fmt.Errorf("date %q is not in MM/DD/YYYY form", raw)
	}
	t, err := time.Parse("01/02/2006", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q does not exist", raw)
	}
	return t, nil
}

// parseClock accepts HH:MM on the 24-hour clock or the literals "now" and
// "current", which normalize to the current time before validation.
func parseClock(raw string, now time.Time) (time.Time, error) {
	if isLiteral(raw, "now", "current") {
		raw = now.Format("15:04")
	}
	parts := strings.Split(raw, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return time.Time{}, fmt.Errorf("time %q is not in HH:MM form", raw)
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q does not exist", raw)
	}
	return t, nil
}

func isLiteral(raw string, literals ...string) bool {
	for _, lit := range literals {
		if strings.EqualFold(raw, lit) {
			return true
		}
	}
	return false
}
