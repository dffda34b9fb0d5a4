package template

import (
	"fmt"
	"unicode/utf8"
)

// checkStringPath rejects paths that are not valid UTF-8.
func checkStringPath(p string) error {
	if !utf8.ValidString(p) {
		return fmt.Errorf("%w: %q", ErrNonStringPath, p)
	}
	return nil
}

// Spec is a complete multi-alternative template: one SubSpec per delivery
// alternative, in order of rising precedence for the final
// multipart/alternative structure, plus the optional base path the spec
// was discovered from, kept around for reloading.
//
// A Spec always holds at least one SubSpec; the constructors enforce it.
type Spec struct {
	basePath string
	hasBase  bool
	subs     []*SubSpec
}

// New creates a Spec from the given sub-templates. Returns
// ErrNoSubTemplates when the list is empty.
func New(subs []*SubSpec) (*Spec, error) {
	if len(subs) == 0 {
		return nil, ErrNoSubTemplates
	}
	return &Spec{subs: subs}, nil
}

// NewWithBasePath is New plus a base path, which must be valid UTF-8 or
// ErrNonStringPath is returned.
func NewWithBasePath(subs []*SubSpec, basePath string) (*Spec, error) {
	s, err := New(subs)
	if err != nil {
		return nil, err
	}
	if err := checkStringPath(basePath); err != nil {
		return nil, err
	}
	s.basePath = basePath
	s.hasBase = true
	return s, nil
}

// SubTemplates returns the sub-templates in order. The slice is the
// spec's own; treat it as read-only.
func (s *Spec) SubTemplates() []*SubSpec { return s.subs }

// BasePath returns the base path the spec was built from, when there is
// one.
func (s *Spec) BasePath() (string, bool) { return s.basePath, s.hasBase }

// SetBasePath replaces the base path and returns the previous one, which
// lets the caller notice a change and drop caches keyed on the old path.
// The new path must be valid UTF-8.
func (s *Spec) SetBasePath(p string) (string, error) {
	if err := checkStringPath(p); err != nil {
		return "", err
	}
	prev := s.basePath
	s.basePath = p
	s.hasBase = true
	return prev, nil
}
