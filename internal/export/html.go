package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders letter bodies. Raw HTML in a letter is dropped, not passed
// through.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Linkify,
		extension.Typographer,
	),
)

var planTemplate = template.Must(template.New("plan").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Life Terminal Station</title>
  <style>
    body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }
    h2 { border-bottom: 1px solid #999; margin-top: 2.5rem; }
    dt { font-weight: bold; }
    .letter { page-break-inside: avoid; margin-bottom: 2rem; }
    .meta { color: #555; font-size: 0.9rem; }
  </style>
</head>
<body>
<h1>Life Terminal Station</h1>
<p class="meta">Export {{.ExportID}} &middot; {{.ExportedAt}}</p>
{{- with .Document}}
{{- if and .BirthDate .LifeExpectancy}}
<p>Born {{.BirthDate}}, expected lifespan {{.LifeExpectancy}} years.</p>
{{- end}}

<h2>Wills</h2>
{{- range .Wills}}
<h3>{{.Title}}</h3>
<dl>
  <dt>Assets</dt><dd>{{.Assets}}</dd>
  <dt>Beneficiaries</dt><dd>{{.Beneficiaries}}</dd>
  {{- if .Special}}<dt>Special instructions</dt><dd>{{.Special}}</dd>{{end}}
</dl>
{{- else}}
<p>None recorded.</p>
{{- end}}

<h2>Belongings</h2>
{{- if .Belongings}}
<table>
  <tr><th>Name</th><th>Category</th><th>Location</th><th>Recipient</th><th>Description</th></tr>
  {{- range .Belongings}}
  <tr><td>{{.Name}}</td><td>{{.Category}}</td><td>{{.Location}}</td><td>{{.Recipient}}</td><td>{{.Description}}</td></tr>
  {{- end}}
</table>
{{- else}}
<p>None recorded.</p>
{{- end}}

<h2>Funeral plan</h2>
{{- with .FuneralPlan}}
<dl>
  <dt>Type</dt><dd>{{.FuneralType}}</dd>
  <dt>Atmosphere</dt><dd>{{.Atmosphere}}</dd>
  <dt>Music</dt><dd>{{.Music}}</dd>
  <dt>Host</dt><dd>{{.Host}}</dd>
  <dt>Guests</dt><dd>{{.Guests}}</dd>
  <dt>Dress code</dt><dd>{{.Dress}}</dd>
  <dt>Special requests</dt><dd>{{.Special}}</dd>
</dl>
{{- else}}
<p>Not set.</p>
{{- end}}

<h2>Medical directive</h2>
{{- with .MedicalDirective}}
<dl>
  <dt>CPR</dt><dd>{{if .CPR}}yes{{else}}no{{end}}</dd>
  <dt>Intubation</dt><dd>{{if .Intubation}}yes{{else}}no{{end}}</dd>
  <dt>Feeding tube</dt><dd>{{if .FeedingTube}}yes{{else}}no{{end}}</dd>
  <dt>Dialysis</dt><dd>{{if .Dialysis}}yes{{else}}no{{end}}</dd>
  <dt>Treatment preference</dt><dd>{{.TreatmentPreference}}</dd>
  <dt>Final place</dt><dd>{{.FinalPlace}}</dd>
  <dt>Pain management</dt><dd>{{.PainManagement}}</dd>
  <dt>Healthcare proxy</dt><dd>{{.HealthcareProxy}} {{.ProxyContact}}</dd>
  <dt>Notes</dt><dd>{{.Notes}}</dd>
</dl>
{{- else}}
<p>Not set.</p>
{{- end}}
{{- end}}

<h2>Letters</h2>
{{- range .Letters}}
<div class="letter">
  <h3>{{.Title}}</h3>
  <p class="meta">To {{.Recipient}} &middot; {{.Timing}}{{if .Date}} ({{.Date}}){{end}}</p>
  {{.Body}}
</div>
{{- else}}
<p>None written.</p>
{{- end}}
</body>
</html>
`))

type letterView struct {
	Title     string
	Recipient string
	Timing    string
	Date      string
	Body      template.HTML
}

type planView struct {
	Bundle
	Letters []letterView
}

// WriteHTML writes a printable plan. Letter content is treated as Markdown.
func (b Bundle) WriteHTML(w io.Writer) error {
	view := planView{Bundle: b}
	for _, l := range b.Document.Letters {
		body, err := renderMarkdown(l.Content)
		if err != nil {
			return fmt.Errorf("render letter %d: %w", l.ID, err)
		}
		view.Letters = append(view.Letters, letterView{
			Title:     l.Title,
			Recipient: l.Recipient,
			Timing:    string(l.Timing),
			Date:      string(l.Date),
			Body:      body,
		})
	}

	if err := planTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil // goldmark escapes raw HTML without WithUnsafe
}
