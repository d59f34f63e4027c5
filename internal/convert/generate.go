package convert

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"formfill-cli/internal/form"
)

// skeletonTemplate renders a scraped form as a config file: a title
// comment, the submission endpoint, and one prompted line per question
// with its options listed above it.
const skeletonTemplate = `{{ if .Title }}# {{ safe .Title }}
{{ end }}{{ if .Description }}# {{ safe .Description }}
{{ end }}{{ .SubmitURL }}

{{ if .CollectsEmail }}*!x-emailAddress;Email Address=
{{ end }}{{ range .Questions }}{{ if .Options }}# options: {{ join ", " .Options | safe }}
{{ end }}{{ marker .Required }}!{{ symbol .Kind }}-{{ .Key }};{{ safe .Title }}=
{{ end }}`

// Generator renders scraped forms into config text.
type Generator struct {
	tmpl *template.Template
}

// NewGenerator creates a generator with sprig and the custom helper
// functions registered.
func NewGenerator() *Generator {
	funcMap := sprig.TxtFuncMap()

	customFuncs := template.FuncMap{
		"symbol": symbolFunc,
		"marker": markerFunc,
		"safe":   safeFunc,
	}
	for name, fn := range customFuncs {
		funcMap[name] = fn
	}

	return &Generator{
		tmpl: template.Must(template.New("skeleton").Funcs(funcMap).Parse(skeletonTemplate)),
	}
}

// Render produces the config skeleton for a scraped form. The output
// always parses cleanly as a config file.
func (g *Generator) Render(f *Form) (string, error) {
	var buf strings.Builder

	if err := g.tmpl.Execute(&buf, f); err != nil {
		return "", fmt.Errorf("failed to render config skeleton: %w", err)
	}

	return buf.String(), nil
}

// symbolFunc maps a kind to its short config token
func symbolFunc(kind form.Kind) string {
	switch kind {
	case form.KindChoice:
		return "m"
	case form.KindCheckboxes:
		return "c"
	case form.KindDate:
		return "d"
	case form.KindTime:
		return "t"
	case form.KindExtra:
		return "x"
	}
	return "w"
}

// markerFunc emits the required marker
func markerFunc(required bool) string {
	if required {
		return "*"
	}
	return ""
}

// safeFunc strips characters that would break the config grammar out of
// scraped text: "=" would split the line early and newlines would start
// a new one.
func safeFunc(text string) string {
	text = strings.ReplaceAll(text, "=", "-")
	text = strings.Join(strings.Fields(text), " ")
	return text
}
