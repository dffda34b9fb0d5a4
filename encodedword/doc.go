// Package encodedword converts text to and from the RFC 2047 encoded-word
// form, "=?charset?encoding?data?=", which lets non-ASCII text ride inside
// ASCII-only header fields. Encoding always targets the utf8 charset and
// either the B (base64) or Q (quoted-printable) encoding. A Word produced
// by this package is always syntactically valid for the header context it
// was encoded for.
package encodedword
