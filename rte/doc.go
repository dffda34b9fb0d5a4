// Package rte is the render template engine: it pairs a registry of
// template specs, keyed by template id, with one render engine, and turns
// a template id plus caller data into rendered body alternatives and
// attachments ready for an outer MIME assembler. The engine is read-only
// once built, so one instance may serve concurrent requests as long as
// the render engine tolerates that too.
package rte
