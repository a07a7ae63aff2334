package report

import (
	"bytes"
	"context"
	"html/template"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8" />
  <title>{{.Doc.Title}}</title>
  <style>
    body { margin: 0; padding: 24px; font-family: "Helvetica Neue", Arial, sans-serif; color: #111827; }
    .receipt { max-width: 620px; margin: 0 auto; }
    .header { border-bottom: 2px solid #111827; padding-bottom: 12px; margin-bottom: 16px; }
    .subtitle { color: #b91c1c; text-transform: uppercase; font-size: 12px; letter-spacing: 0.04em; }
    .label { color: #6b7280; text-transform: uppercase; font-size: 11px; letter-spacing: 0.04em; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; margin-bottom: 16px; }
    td { padding: 6px 8px; border-bottom: 1px solid #e5e7eb; }
    td.value { text-align: right; }
    tr.emphasis td { font-weight: bold; font-size: 16px; }
    .footer { border-top: 1px solid #e5e7eb; padding-top: 12px; font-size: 12px; color: #6b7280; }
  </style>
</head>
<body>
  <div class="receipt">
    <div class="header">
      <h2>{{.Doc.Title}}</h2>
      {{if .Doc.Subtitle}}<div class="subtitle">{{.Doc.Subtitle}}</div>{{end}}
      {{range .Doc.Header}}<div><span class="label">{{.Label}}</span> {{.Value}}</div>{{end}}
    </div>
    {{range .Doc.Sections}}
    <div class="label">{{.Heading}}</div>
    <table>
      <tbody>
        {{range .Lines}}
        <tr{{if .Emphasis}} class="emphasis"{{end}}>
          <td>{{.Label}}</td>
          <td class="value">{{.Value}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{end}}
    {{if .Doc.Footer}}<div class="footer">{{.Doc.Footer}}</div>{{end}}
  </div>
</body>
</html>
`

var documentHTML = template.Must(template.New("document").Parse(documentHTMLTemplate))

type htmlRenderer struct {
	tmpl Template
	loc  *Locale
}

func newHTMLRenderer(tmpl Template, loc *Locale) Renderer {
	return &htmlRenderer{tmpl: tmpl, loc: loc}
}

func (r *htmlRenderer) Render(_ context.Context, data any) (*Result, error) {
	doc, err := r.tmpl.Build(data, r.loc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	view := struct {
		Lang string
		Doc  *Document
	}{Lang: r.loc.Key, Doc: doc}
	if err := documentHTML.Execute(&buf, view); err != nil {
		return nil, err
	}
	return &Result{
		Headers: map[string]string{"Content-Type": "text/html; charset=utf-8"},
		Report:  buf.Bytes(),
	}, nil
}
