package rendering

import (
	"fmt"
	"io"
	"sync"

	"github.com/jonathan/resume-craft/internal/types"
)

// Renderer draws a resume snapshot. Renderers never modify the data they are given.
type Renderer interface {
	Render(w io.Writer, data types.ResumeData) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, data types.ResumeData) error

// Render implements Renderer
func (f RendererFunc) Render(w io.Writer, data types.ResumeData) error {
	return f(w, data)
}

// TemplateInfo describes a registered template for pickers.
type TemplateInfo struct {
	ID   types.TemplateID `json:"id"`
	Name string           `json:"name"`
}

// Registry maps template ids to renderers. Unknown ids resolve to the fallback.
type Registry struct {
	mu        sync.RWMutex
	renderers map[types.TemplateID]Renderer
	order     []types.TemplateID
	fallback  types.TemplateID
}

// NewRegistry returns a registry holding the built-in layouts, falling back to modern.
func NewRegistry() *Registry {
	r := &Registry{
		renderers: make(map[types.TemplateID]Renderer),
		fallback:  types.TemplateModern,
	}
	for _, layout := range builtinLayouts() {
		r.Register(layout.ID, NewHTMLRenderer(layout))
	}
	return r
}

// Register adds or replaces the renderer for id.
func (r *Registry) Register(id types.TemplateID, renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[id]; !exists {
		r.order = append(r.order, id)
	}
	r.renderers[id] = renderer
}

// Lookup returns the renderer for id and the id actually used, which is the
// fallback when id is not registered.
func (r *Registry) Lookup(id types.TemplateID) (Renderer, types.TemplateID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if renderer, ok := r.renderers[id]; ok {
		return renderer, id, nil
	}
	if renderer, ok := r.renderers[r.fallback]; ok {
		return renderer, r.fallback, nil
	}
	return nil, "", &RenderError{Message: fmt.Sprintf("no renderer for template %q", id)}
}

// Render draws data with the renderer its template selects.
func (r *Registry) Render(w io.Writer, data types.ResumeData) error {
	renderer, _, err := r.Lookup(data.Template)
	if err != nil {
		return err
	}
	return renderer.Render(w, data.Clone())
}

// Templates lists registered templates in registration order.
func (r *Registry) Templates() []TemplateInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]TemplateInfo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, TemplateInfo{ID: id, Name: id.DisplayName()})
	}
	return out
}
