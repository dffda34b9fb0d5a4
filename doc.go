// Package emailtemplate is the encoding and assembly core of an
// email-composition toolkit. It does two jobs and tries to do them well.
//
// The first job is turning human text into RFC 2047 encoded-words so that
// non-ASCII text can travel inside ASCII-only header fields, and turning
// such words back into text. That lives in the encodedword package. An
// encodedword.Word is a validated value: if you hold one that was built
// through the public constructors, it is syntactically correct for the
// header context it targets (unstructured text, a phrase, or a comment).
// Encoding may produce more than one word because RFC 2047 caps a single
// encoded-word at 75 bytes; decoding the words in order reproduces the
// original text.
//
// The second job is turning a named template specification into the
// pieces an outer MIME assembler needs: one rendered body per delivery
// alternative (say, text and HTML renditions of the same message), each
// paired with its content-identified embedded resources, plus the flat
// list of attachments. The template package describes the specification
// tree and can discover one from a conventional directory layout. The
// resource package models embeddable resources, their disposition, and
// the lazily assigned content identifiers that templates reference by
// name. The rte package is the pipeline that ties a template-id registry
// to a render engine and walks a specification into bodies and
// attachments.
//
// This module deliberately stops short of wire bytes. It does not parse
// incoming mail, it does not transcode character sets other than UTF-8,
// and it does not serialize multipart messages; the only wire-exact
// output it produces is the textual form of an encoded-word itself. Those
// outer layers consume what this module returns.
package emailtemplate
