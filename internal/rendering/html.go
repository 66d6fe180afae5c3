package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/jonathan/resume-craft/internal/types"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

var (
	documentTemplate     *template.Template
	documentTemplateErr  error
	documentTemplateOnce sync.Once
)

// parseDocumentTemplate parses the embedded page template once.
func parseDocumentTemplate() (*template.Template, error) {
	documentTemplateOnce.Do(func() {
		tmpl, err := template.ParseFS(templateFS, "templates/resume.html.tmpl")
		if err != nil {
			documentTemplateErr = &TemplateError{
				Message: "failed to parse template",
				Cause:   err,
			}
			return
		}
		documentTemplate = tmpl
	})
	return documentTemplate, documentTemplateErr
}

// HTMLRenderer renders one layout as a standalone HTML page.
type HTMLRenderer struct {
	layout Layout
}

// NewHTMLRenderer creates a renderer for layout
func NewHTMLRenderer(layout Layout) *HTMLRenderer {
	return &HTMLRenderer{layout: layout}
}

// Layout returns the layout this renderer draws.
func (r *HTMLRenderer) Layout() Layout {
	return r.layout
}

// Render writes the page for data to w. Nothing is written if rendering fails.
func (r *HTMLRenderer) Render(w io.Writer, data types.ResumeData) error {
	tmpl, err := parseDocumentTemplate()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildDocument(r.layout, data)); err != nil {
		return &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{
			Message: "failed to write document",
			Cause:   err,
		}
	}
	return nil
}
