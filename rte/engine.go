package rte

import (
	"context"
	"errors"
	"fmt"

	"github.com/zostay/go-email-template/resource"
	"github.com/zostay/go-email-template/template"
)

// Errors returned by Templates. Causes stay on the chain, so
// errors.Is/As see through them.
var (
	// ErrUnknownTemplateID is returned when no spec is registered under
	// the requested template id.
	ErrUnknownTemplateID = errors.New("unknown template id")

	// ErrCIDGenFailed is returned when the content id generator fails
	// while embedding resources.
	ErrCIDGenFailed = errors.New("generating content id failed")

	// ErrRenderFailed wraps an error from the render engine.
	ErrRenderFailed = errors.New("rendering template failed")
)

// Renderer is the external render engine: template source path plus a
// data view in, rendered text out. Any caching happens inside the
// implementation, invisibly to this package. The context carries
// cancellation for engines that block.
type Renderer interface {
	Render(ctx context.Context, path string, view any) (string, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(ctx context.Context, path string, view any) (string, error)

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, path string, view any) (string, error) {
	return f(ctx, path, view)
}

// DataView is what the render engine receives: the caller's payload plus
// the content ids of this alternative's embeddings, keyed by embedding
// name. A template shows an embedded logo with something like
//
//	<img src="cid:{{.CIDs.logo}}">
type DataView struct {
	// Data is the caller's payload, passed through untouched.
	Data any

	// CIDs maps embedding names to their content id strings.
	CIDs map[string]string
}

// Engine resolves template ids against a registry of specs and renders
// them through one Renderer. Register everything up front; after that the
// engine is read-only and safe to share across goroutines.
type Engine struct {
	renderer Renderer
	specs    map[string]*template.Spec
}

// New creates an Engine around the given render engine.
func New(r Renderer) *Engine {
	return &Engine{
		renderer: r,
		specs:    map[string]*template.Spec{},
	}
}

// Register adds a spec under a template id, replacing any previous
// registration. Not safe to call concurrently with Templates.
func (e *Engine) Register(id string, spec *template.Spec) {
	e.specs[id] = spec
}

// Lookup finds the spec registered under the given id or returns
// ErrUnknownTemplateID.
func (e *Engine) Lookup(id string) (*template.Spec, error) {
	spec, ok := e.specs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplateID, id)
	}
	return spec, nil
}

// Templates renders the template registered under id with the given data
// and returns one TemplateBody per sub-template, in spec order — the
// order that decides alternative precedence downstream — together with
// the attachments of all sub-templates in one list, instantiated fresh
// and without content ids.
//
// For each sub-template, every named embedding is resolved and assigned a
// content id from gen, and the render engine is invoked with a DataView
// carrying data and those ids. Any failure — id generation, rendering —
// aborts the whole call: one success or one error, never a partial body
// list.
func (e *Engine) Templates(
	ctx context.Context,
	gen resource.Generator,
	id string,
	data any,
) ([]*TemplateBody, []*resource.Embedded, error) {
	spec, err := e.Lookup(id)
	if err != nil {
		return nil, nil, err
	}

	subs := spec.SubTemplates()
	bodies := make([]*TemplateBody, 0, len(subs))
	var attachments []*resource.Embedded

	for _, sub := range subs {
		embeddings := make(map[string]*resource.WithContentID, len(sub.Embeddings()))
		cids := make(map[string]string, len(sub.Embeddings()))
		for name, rs := range sub.Embeddings() {
			cid, err := gen.NewContentID()
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %w", ErrCIDGenFailed, err)
			}

			embeddings[name] = resource.NewWithContentID(resource.FromSpec(rs), resource.Inline, cid)
			cids[name] = cid.String()
		}

		rendered, err := e.renderer.Render(ctx, sub.Path(), DataView{Data: data, CIDs: cids})
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %w", ErrRenderFailed, sub.Path(), err)
		}

		bodies = append(bodies, &TemplateBody{
			Body:       resource.FromBuffer(sub.MediaType(), "", []byte(rendered)),
			Embeddings: embeddings,
		})

		for _, as := range sub.Attachments() {
			attachments = append(attachments, resource.NewAttachment(resource.FromSpec(as)))
		}
	}

	return bodies, attachments, nil
}
