package template

import (
	"github.com/zostay/go-email-template/mime"
	"github.com/zostay/go-email-template/resource"
)

// SubSpec describes one delivery alternative of a template: the media
// type of the rendered body, the path of the template source, the named
// resources the body embeds, and the attachments contributed by this
// alternative.
type SubSpec struct {
	path        string
	mediaType   *mime.MediaType
	embeddings  map[string]*resource.Spec
	attachments []*resource.Spec
}

// SubSpecBuilder accumulates the parts of a SubSpec so they can be
// validated in one place at Build time instead of through a
// six-argument constructor.
type SubSpecBuilder struct {
	sub SubSpec
}

// NewSubSpec starts building a SubSpec for the template file at path
// rendering to the given media type.
func NewSubSpec(path string, mt *mime.MediaType) *SubSpecBuilder {
	return &SubSpecBuilder{sub: SubSpec{
		path:       path,
		mediaType:  mt,
		embeddings: map[string]*resource.Spec{},
	}}
}

// Embed registers a named embedded resource. The name is how the template
// refers to the resource to obtain its content id. Registering a name
// twice keeps the last spec; no error is raised here.
func (b *SubSpecBuilder) Embed(name string, spec *resource.Spec) *SubSpecBuilder {
	b.sub.embeddings[name] = spec
	return b
}

// Attach appends attachment resources. Order is kept and duplicates are
// allowed.
func (b *SubSpecBuilder) Attach(specs ...*resource.Spec) *SubSpecBuilder {
	b.sub.attachments = append(b.sub.attachments, specs...)
	return b
}

// Build validates and returns the SubSpec. The template path must be
// valid UTF-8 or ErrNonStringPath is returned. The builder should not be
// reused afterward.
func (b *SubSpecBuilder) Build() (*SubSpec, error) {
	if err := checkStringPath(b.sub.path); err != nil {
		return nil, err
	}
	sub := b.sub
	return &sub, nil
}

// Path returns the path of the template source file.
func (s *SubSpec) Path() string { return s.path }

// SetPath replaces the template path and returns the previous one so the
// caller can invalidate anything keyed on it. The new path must be valid
// UTF-8.
func (s *SubSpec) SetPath(p string) (string, error) {
	if err := checkStringPath(p); err != nil {
		return "", err
	}
	prev := s.path
	s.path = p
	return prev, nil
}

// MediaType returns the media type of the rendered body.
func (s *SubSpec) MediaType() *mime.MediaType { return s.mediaType }

// SetMediaType replaces the body media type and returns the previous one.
func (s *SubSpec) SetMediaType(mt *mime.MediaType) *mime.MediaType {
	prev := s.mediaType
	s.mediaType = mt
	return prev
}

// Embeddings returns the name-keyed embedded resource specs. The map is
// the spec's own; treat it as read-only.
func (s *SubSpec) Embeddings() map[string]*resource.Spec { return s.embeddings }

// Attachments returns the attachment resource specs in order. The slice
// is the spec's own; treat it as read-only.
func (s *SubSpec) Attachments() []*resource.Spec { return s.attachments }
