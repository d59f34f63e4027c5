package form

import (
	"net/url"
	"strconv"
)

// EntryValues expands the resolved fields into POST parameters. Choice
// answers carry an extra "<key>_sentinel" parameter, checkbox answers
// repeat the key per selection, and date and time answers split into
// numeric component parameters that are omitted entirely when blank.
// Extra fields never appear.
func (c *Config) EntryValues() url.Values {
	values := url.Values{}
	for _, f := range c.Fields {
		switch f.Type {
		case KindExtra:
			// excluded from the payload
		case KindChoice:
			values.Set(f.Key, f.Value.Text)
			values.Set(f.Key+"_sentinel", "")
		case KindCheckboxes:
			if len(f.Value.List) == 0 {
				values.Set(f.Key, "")
				continue
			}
			for _, item := range f.Value.List {
				values.Add(f.Key, item)
			}
		case KindDate:
			if f.Value.IsZero() {
				continue
			}
			t := f.Value.Time
			values.Set(f.Key+"_month", strconv.Itoa(int(t.Month())))
			values.Set(f.Key+"_day", strconv.Itoa(t.Day()))
			values.Set(f.Key+"_year", strconv.Itoa(t.Year()))
		case KindTime:
			if f.Value.IsZero() {
				continue
			}
			t := f.Value.Time
			values.Set(f.Key+"_hour", strconv.Itoa(t.Hour()))
			values.Set(f.Key+"_minute", strconv.Itoa(t.Minute()))
		default:
			values.Set(f.Key, f.Value.Text)
		}
	}
	return values
}
