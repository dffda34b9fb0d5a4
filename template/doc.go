// Package template describes multi-alternative message templates: which
// template file renders each delivery alternative, which resources each
// alternative embeds by name, and which files ride along as attachments.
// A Spec can be assembled by hand through SubSpecBuilder or discovered
// from a conventional directory layout with FromDir. This package only
// describes; the rte package consumes a Spec to perform the rendering.
package template
