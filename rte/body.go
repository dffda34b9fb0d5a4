package rte

import (
	"github.com/zostay/go-email-template/resource"
)

// TemplateBody is one rendered delivery alternative: the rendered body as
// a buffer-backed resource carrying the sub-template's media type, paired
// with the content-identified embeddings the body references.
type TemplateBody struct {
	// Body holds the rendered template output.
	Body *resource.Resource

	// Embeddings are the resolved embedded resources of this alternative,
	// keyed by the names the template referenced them with.
	Embeddings map[string]*resource.WithContentID
}

// VisitResources visits each embedded resource of the body. Visit order
// is unspecified, matching the map the embeddings live in.
func (b *TemplateBody) VisitResources(v resource.Visitor) error {
	for _, emb := range b.Embeddings {
		if err := emb.VisitResources(v); err != nil {
			return err
		}
	}
	return nil
}
