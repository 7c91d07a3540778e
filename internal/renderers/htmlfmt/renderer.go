package htmlfmt

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// Format is the renderer's format identifier.
const Format = "html"

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// pageTemplate renders a complete standalone HTML document.
// html/template escapes titles and author names.
var pageTemplate = template.Must(template.New("release").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Release {{.Version}}</title>
</head>
<body>
<h1>Release {{.Version}} <small>{{.Date}}</small></h1>
{{- if .Repo}}
<p>{{.Repo}}: {{.FromTag}}&hellip;{{.ToTag}}</p>
{{- end}}
{{- if .Groups}}
{{- range .Groups}}
<h2>{{.Name}}</h2>
<ul>
{{- range .Changes}}
<li>{{.Title}} {{if .URL}}(<a href="{{.URL}}">#{{.Number}}</a>){{else}}(#{{.Number}}){{end}}{{if .Author}} by {{.Author}}{{end}}</li>
{{- end}}
</ul>
{{- end}}
{{- else}}
<p>No changes in this release.</p>
{{- end}}
</body>
</html>
`))

// Renderer renders release notes as a standalone HTML page.
type Renderer struct{}

// New creates an HTML renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns the format identifier.
func (r *Renderer) Format() string {
	return Format
}

// Render produces the HTML document.
func (r *Renderer) Render(doc domain.ReleaseNotesDocument) (string, error) {
	data := struct {
		Version string
		Date    string
		Repo    string
		FromTag string
		ToTag   string
		Groups  []domain.CategoryGroup
	}{
		Version: doc.Version,
		Date:    doc.ReleaseDate.Format("2006-01-02"),
		FromTag: doc.Tags.From,
		ToTag:   doc.Tags.To,
		Groups:  doc.Groups,
	}
	if doc.Repo.Owner != "" {
		data.Repo = doc.Repo.String()
	}

	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return b.String(), nil
}
