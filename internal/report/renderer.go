package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
)

// Renderer names accepted in the renderer query parameter.
const (
	RendererJSON = "json"
	RendererHTML = "html"
	RendererPDF  = "pdf"
)

// Options are the query-string render options of a report request.
type Options struct {
	Renderer string `form:"renderer"`
	Lang     string `form:"lang"`
}

// Result is what a renderer hands back: response headers and the report body.
type Result struct {
	Headers map[string]string
	Report  []byte
}

// Renderer turns report data into a document of one format.
type Renderer interface {
	Render(ctx context.Context, data any) (*Result, error)
}

// Template knows how to lay out one kind of report.
type Template struct {
	Name  string
	Build func(data any, loc *Locale) (*Document, error)
}

// Manager resolves render options into a renderer bound to a template.
type Manager struct {
	defaultLang string
}

// NewManager creates a Manager. defaultLang is used when a request carries no lang.
func NewManager(defaultLang string) *Manager {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &Manager{defaultLang: defaultLang}
}

// RendererFor returns the renderer selected by opts. It fails with
// apperrors.ErrValidation for an unknown renderer so that callers can reject a
// request before doing any work.
func (m *Manager) RendererFor(tmpl Template, opts Options) (Renderer, error) {
	lang := strings.ToLower(strings.TrimSpace(opts.Lang))
	if lang == "" {
		lang = m.defaultLang
	}
	loc, err := NewLocale(lang)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(opts.Renderer)) {
	case "", RendererJSON:
		return &jsonRenderer{}, nil
	case RendererHTML:
		return newHTMLRenderer(tmpl, loc), nil
	case RendererPDF:
		return &pdfRenderer{tmpl: tmpl, loc: loc}, nil
	default:
		return nil, fmt.Errorf("%w: unknown renderer %q", apperrors.ErrValidation, opts.Renderer)
	}
}
