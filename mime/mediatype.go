// Package mime provides the read-only MediaType value used throughout the
// module to describe template bodies, embedded resources, and attachments.
package mime

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// ErrOddParams is returned by New when the trailing name/value parameter
// list has an odd number of entries.
var ErrOddParams = errors.New("odd number of media type parameters")

// MediaType is a parsed Content-type value, such as "text/html" with an
// optional parameter set. Values are intended to be read-only once
// constructed; share them freely.
type MediaType struct {
	mediaType string
	params    map[string]string
}

// Parse parses a structured media type string, parameters included, using
// the syntax of RFC 2045. It returns an error when the string is not a
// well-formed media type.
func Parse(v string) (*MediaType, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return nil, fmt.Errorf("parsing media type %q: %w", v, err)
	}
	return &MediaType{mt, ps}, nil
}

// New creates a media type from a type string, such as "image/png",
// followed by parameter name/value pairs:
//
//	mt, err := mime.New("text/plain", "charset", "utf-8")
//
// Returns ErrOddParams when given an odd number of parameter strings.
func New(mt string, ps ...string) (*MediaType, error) {
	if len(ps)%2 != 0 {
		return nil, ErrOddParams
	}

	params := make(map[string]string, len(ps)/2)
	for i := 0; i+1 < len(ps); i += 2 {
		params[ps[i]] = ps[i+1]
	}

	return &MediaType{mt, params}, nil
}

// GuessFromExtension constructs the media type conventionally associated
// with the extension of the given file name. Unknown extensions fall back
// to "application/octet-stream". An error still happens when the platform
// MIME table hands back something unparseable.
func GuessFromExtension(name string) (*MediaType, error) {
	v := mime.TypeByExtension(filepath.Ext(name))
	if v == "" {
		v = "application/octet-stream"
	}
	return Parse(v)
}

// MediaType returns the full type word, e.g. "text/html".
func (mt *MediaType) MediaType() string { return mt.mediaType }

// Type returns the major type, the part before the slash. Returns an
// empty string when there is no slash.
func (mt *MediaType) Type() string {
	if t, _, found := strings.Cut(mt.mediaType, "/"); found {
		return t
	}
	return ""
}

// Subtype returns the part after the slash, or an empty string when there
// is no slash.
func (mt *MediaType) Subtype() string {
	_, s, _ := strings.Cut(mt.mediaType, "/")
	return s
}

// Parameter returns the value of the named parameter or an empty string.
func (mt *MediaType) Parameter(n string) string { return mt.params[n] }

// Parameters returns the parameter map. Treat it as read-only.
func (mt *MediaType) Parameters() map[string]string { return mt.params }

// Charset is shorthand for Parameter("charset").
func (mt *MediaType) Charset() string { return mt.params["charset"] }

// String returns the formatted media type, parameters included.
func (mt *MediaType) String() string {
	return mime.FormatMediaType(mt.mediaType, mt.params)
}
