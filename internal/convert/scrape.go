package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"formfill-cli/internal/form"
)

// Form is a scraped form description.
type Form struct {
	Title         string
	Description   string
	SubmitURL     string
	CollectsEmail bool
	Questions     []Question
}

// Question is one answerable item on the form.
type Question struct {
	Title    string
	Key      string // entry.<id> parameter name
	Kind     form.Kind
	Options  []string
	Required bool
}

// Class names the form viewer renders question cards with. The card type
// is only visible through these.
const (
	classQuestionRoot = "freebirdFormviewerComponentsQuestionBaseRoot"
	classTextRoot     = "freebirdFormviewerComponentsQuestionTextRoot"
	classRadioRoot    = "freebirdFormviewerComponentsQuestionRadioRoot"
	classSelectRoot   = "freebirdFormviewerComponentsQuestionSelectRoot"
	classCheckboxRoot = "freebirdFormviewerComponentsQuestionCheckboxRoot"
	classDateInputs   = "freebirdFormviewerComponentsQuestionDateDateInputs"
	classTimeRoot     = "freebirdFormviewerComponentsQuestionTimeRoot"
)

// dataMarker is the script variable holding the form's question data.
const dataMarker = "FB_PUBLIC_LOAD_DATA_"

// Parse reads a form page and recovers the submission endpoint, the
// question metadata, and whether the form collects the respondent's
// email address.
func Parse(r io.Reader) (*Form, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse form page: %w", err)
	}

	f := &Form{}

	formNode := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "form"
	})
	if formNode == nil {
		return nil, errors.New("form page has no form element")
	}
	action := attr(formNode, "action")
	submitURL, err := form.NormalizeURL(action)
	if err != nil {
		return nil, fmt.Errorf("form action %q: %w", action, err)
	}
	f.SubmitURL = submitURL

	f.CollectsEmail = findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "input" && attr(n, "type") == "email"
	}) != nil

	payload := scriptPayload(doc)
	if payload == "" {
		return nil, errors.New("form page has no " + dataMarker + " script")
	}
	var data []interface{}
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("decode form data: %w", err)
	}

	info := index(data, 1)
	f.Description = str(index(info, 0))
	f.Title = str(index(info, 8))

	// Rows without entry data are section headers and media items.
	var rows []interface{}
	for _, row := range list(index(info, 1)) {
		if _, ok := num(index(index(index(row, 4), 0), 0)); ok {
			rows = append(rows, row)
		}
	}

	kinds := questionKinds(doc)
	// When the form collects email, the email box renders as its own
	// card but has no row in the data, so the card list runs one long.
	if f.CollectsEmail && len(kinds) > len(rows) {
		kinds = kinds[1:]
	}

	for i, row := range rows {
		entry := index(index(row, 4), 0)
		id, _ := num(index(entry, 0))
		q := Question{
			Title:    str(index(row, 1)),
			Key:      fmt.Sprintf("entry.%d", int64(id)),
			Kind:     form.KindWords,
			Required: truthy(index(entry, 2)),
		}
		if i < len(kinds) {
			q.Kind = kinds[i]
		}
		for _, rawOpt := range list(index(entry, 1)) {
			if opt := str(index(rawOpt, 0)); opt != "" {
				q.Options = append(q.Options, opt)
			}
		}
		f.Questions = append(f.Questions, q)
	}

	return f, nil
}

// questionKinds classifies every question card on the page, in document
// order.
func questionKinds(doc *html.Node) []form.Kind {
	var kinds []form.Kind
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, classQuestionRoot) {
			kinds = append(kinds, classifyQuestion(n))
		}
	})
	return kinds
}

// classifyQuestion maps a question card to a field kind through the
// widget classes nested inside it. Unrecognized cards fall back to a
// free-text answer.
func classifyQuestion(root *html.Node) form.Kind {
	probes := []struct {
		class string
		kind  form.Kind
	}{
		{classCheckboxRoot, form.KindCheckboxes},
		{classRadioRoot, form.KindChoice},
		{classSelectRoot, form.KindChoice},
		{classDateInputs, form.KindDate},
		{classTimeRoot, form.KindTime},
		{classTextRoot, form.KindWords},
	}
	for _, probe := range probes {
		if findFirst(root, matchClass(probe.class)) != nil {
			return probe.kind
		}
	}
	return form.KindWords
}

// scriptPayload finds the data script and returns the JSON literal it
// assigns, with the statement syntax stripped.
func scriptPayload(doc *html.Node) string {
	script := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "script" && strings.Contains(nodeText(n), dataMarker)
	})
	if script == nil {
		return ""
	}
	_, after, found := strings.Cut(nodeText(script), "=")
	if !found {
		return ""
	}
	return strings.TrimSuffix(strings.TrimSpace(after), ";")
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func matchClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, class)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// index returns list[i], or nil when v is not a list or i is out of
// range. The data script nests lists a dozen levels deep, so lookups
// never panic on shape changes.
func index(v interface{}, i int) interface{} {
	items, ok := v.([]interface{})
	if !ok || i < 0 || i >= len(items) {
		return nil
	}
	return items[i]
}

func list(v interface{}) []interface{} {
	items, _ := v.([]interface{})
	return items
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func num(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	}
	return false
}
