package resource

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/zostay/go-email-template/mime"
)

// Spec is the unresolved description of a resource: where its bytes come
// from and what media type they carry. A Spec is resolved into a Resource
// with FromSpec at render time; until then it is plain data and may be
// copied and stored freely, for example inside a template.SubSpec.
type Spec struct {
	// Path is the file the resource bytes are read from.
	Path string

	// MediaType is the media type of the resource content.
	MediaType *mime.MediaType

	// Name is the presentation name for the resource, e.g. the filename
	// suggested for an attachment. When empty, the base of Path is used.
	Name string
}

// Resource is resolved content: a media type plus bytes that are either
// held in memory or read from a file when opened. Resolution itself never
// fails; a missing file surfaces as an error from Open instead.
type Resource struct {
	mediaType *mime.MediaType
	name      string
	content   []byte
	path      string
}

// FromSpec resolves a Spec into a file-backed Resource.
func FromSpec(s *Spec) *Resource {
	name := s.Name
	if name == "" {
		name = filepath.Base(s.Path)
	}
	return &Resource{
		mediaType: s.MediaType,
		name:      name,
		path:      s.Path,
	}
}

// FromBuffer wraps in-memory content, such as freshly rendered template
// output, into a Resource.
func FromBuffer(mt *mime.MediaType, name string, content []byte) *Resource {
	return &Resource{
		mediaType: mt,
		name:      name,
		content:   content,
	}
}

// MediaType returns the media type of the resource content.
func (r *Resource) MediaType() *mime.MediaType { return r.mediaType }

// Name returns the presentation name of the resource. May be empty for
// buffer-backed resources.
func (r *Resource) Name() string { return r.name }

// Open returns a reader over the resource bytes. For a file-backed
// resource this opens the file; the caller owns the Close.
func (r *Resource) Open() (io.ReadCloser, error) {
	if r.content != nil || r.path == "" {
		return io.NopCloser(bytes.NewReader(r.content)), nil
	}
	return os.Open(r.path)
}
