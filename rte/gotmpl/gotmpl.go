// Package gotmpl provides an rte.Renderer over the standard library
// template engines: files with an .html or .htm extension render through
// html/template and get contextual escaping, everything else renders
// through text/template.
package gotmpl

import (
	"context"
	"fmt"
	htmltemplate "html/template"
	"io"
	"path/filepath"
	"strings"
	"sync"
	texttemplate "text/template"
)

// executable is the common face of html/template and text/template.
type executable interface {
	Execute(w io.Writer, data any) error
}

// Renderer renders path-addressed Go templates. Parsed templates are
// cached by path for the life of the Renderer; swap in a fresh Renderer
// when template files change on disk.
type Renderer struct {
	mu    sync.RWMutex
	cache map[string]executable
}

// New creates an empty Renderer.
func New() *Renderer {
	return &Renderer{cache: map[string]executable{}}
}

// Render parses the template at path, caching the parse, and executes it
// with the given view. It honors context cancellation between the parse
// and the execute, but a running execution is not interrupted.
func (r *Renderer) Render(ctx context.Context, path string, view any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := r.lookup(path)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("executing template %q: %w", path, err)
	}

	return sb.String(), nil
}

func (r *Renderer) lookup(path string) (executable, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[path]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := parse(path)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", path, err)
	}

	r.mu.Lock()
	r.cache[path] = tmpl
	r.mu.Unlock()
	return tmpl, nil
}

func parse(path string) (executable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return htmltemplate.ParseFiles(path)
	default:
		return texttemplate.ParseFiles(path)
	}
}
