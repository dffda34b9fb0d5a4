package resource

// Visitor is a function applied to each embedded resource of a container.
// Returning an error stops the visit immediately and the error is passed
// through to the caller. The *Embedded may be read or modified in place,
// for example to assign content ids across a whole message body.
type Visitor func(*Embedded) error

// Container is implemented by any structure holding embedded resources.
// It lets assembly code traverse composite bodies without knowing their
// shape: a bare Embedded visits itself, a rendered template body visits
// each of its embeddings, and so on up.
type Container interface {
	VisitResources(v Visitor) error
}
