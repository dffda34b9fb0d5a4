package resource

import "errors"

// ErrNoContentID is returned by TryWithContentID when the given Embedded
// has not been assigned a content id yet.
var ErrNoContentID = errors.New("embedded resource has no content id")

// Disposition says how a resource takes part in a message.
type Disposition int

const (
	// Inline resources are rendered in place, referenced from the body by
	// content id.
	Inline Disposition = iota

	// Attachment resources ride along separately.
	Attachment
)

// String returns the disposition the way it is spelled in a
// Content-disposition header.
func (d Disposition) String() string {
	if d == Attachment {
		return "attachment"
	}
	return "inline"
}

// Embedded is a Resource placed into a message with a disposition and an
// optionally assigned content id. The id starts out unassigned and is
// assigned at most once; after that it never changes.
type Embedded struct {
	cid         ContentID
	resource    *Resource
	disposition Disposition
}

// New creates an Embedded with no content id assigned.
func New(r *Resource, d Disposition) *Embedded {
	return &Embedded{resource: r, disposition: d}
}

// NewInline is shorthand for New(r, Inline).
func NewInline(r *Resource) *Embedded { return New(r, Inline) }

// NewAttachment is shorthand for New(r, Attachment).
func NewAttachment(r *Resource) *Embedded { return New(r, Attachment) }

// Resource returns the underlying resource.
func (e *Embedded) Resource() *Resource { return e.resource }

// Disposition returns how the resource takes part in the message.
func (e *Embedded) Disposition() Disposition { return e.disposition }

// ContentID returns the assigned content id, if there is one.
func (e *Embedded) ContentID() (ContentID, bool) {
	return e.cid, e.cid != ""
}

// AssureContentID returns the content id of the resource, asking the
// generator for a fresh one the first time. It is idempotent: every call
// after the first returns the same id without touching the generator.
func (e *Embedded) AssureContentID(gen Generator) ContentID {
	if e.cid == "" {
		e.cid = gen.GenerateContentID()
	}
	return e.cid
}

// AssureContentIDAndCopy assigns a content id exactly like AssureContentID
// and additionally returns an independent WithContentID copy. The original
// stays usable and mutable while the copy carries the id guarantee.
func (e *Embedded) AssureContentIDAndCopy(gen Generator) *WithContentID {
	e.AssureContentID(gen)
	return &WithContentID{inner: *e}
}

// VisitResources visits this resource. An Embedded is its own smallest
// container.
func (e *Embedded) VisitResources(v Visitor) error {
	return v(e)
}

// WithContentID is an Embedded that is guaranteed to have a content id.
// The guarantee comes from its constructors, never from downcasting, so
// holding a *WithContentID replaces a per-use "is the id set?" check.
type WithContentID struct {
	inner Embedded
}

// NewWithContentID creates an Embedded carrying the given content id.
func NewWithContentID(r *Resource, d Disposition, cid ContentID) *WithContentID {
	return &WithContentID{inner: Embedded{cid: cid, resource: r, disposition: d}}
}

// TryWithContentID upgrades an Embedded that already has a content id. It
// fails with ErrNoContentID when no id has been assigned yet; the given
// Embedded is left untouched either way. The returned value is an
// independent copy.
func TryWithContentID(e *Embedded) (*WithContentID, error) {
	if e.cid == "" {
		return nil, ErrNoContentID
	}
	return &WithContentID{inner: *e}, nil
}

// ContentID returns the content id. Unlike Embedded.ContentID there is no
// "is it set" result; it always is.
func (w *WithContentID) ContentID() ContentID { return w.inner.cid }

// Resource returns the underlying resource.
func (w *WithContentID) Resource() *Resource { return w.inner.resource }

// Disposition returns how the resource takes part in the message.
func (w *WithContentID) Disposition() Disposition { return w.inner.disposition }

// Unwrap discards the disposition, which only matters during assembly,
// and hands back the pieces the outer serializer needs.
func (w *WithContentID) Unwrap() (ContentID, *Resource) {
	return w.inner.cid, w.inner.resource
}

// VisitResources visits the inner resource.
func (w *WithContentID) VisitResources(v Visitor) error {
	return v(&w.inner)
}
