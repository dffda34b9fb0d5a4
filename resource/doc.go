// Package resource models the things a rendered message body can carry
// besides its own text: embedded resources shown inline (a logo
// referenced by content id) and attachments. A resource begins life as an
// unresolved Spec, becomes a Resource when resolved, and is wrapped in an
// Embedded to gain a disposition and, lazily, a content identifier. The
// WithContentID refinement makes "definitely has an identifier" a
// property of the type rather than a check at every use.
package resource
