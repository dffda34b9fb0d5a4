package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zostay/go-email-template/mime"
	"github.com/zostay/go-email-template/resource"
)

// EmbeddingPrefix marks the files of an alternative directory that become
// named embeddings rather than attachments.
const EmbeddingPrefix = "emb_"

// FromDir discovers a Spec from a conventional directory layout: one
// subdirectory per alternative, named for its type and registered in the
// Settings, each holding exactly one template file (the file whose stem
// matches the settings' template stem). Every other regular file becomes
// part of the message: files named "emb_<name>.<ext>" become embeddings
// keyed by <name>, the rest become attachments in filename order. The
// stem of a file is everything before its first dot, so "emb_logo.min.png"
// embeds under the name "logo".
//
//	newsletter/
//	  text/
//	    mail.txt
//	  html/
//	    mail.html
//	    emb_logo.png
//	    terms.pdf
//
// The order of the discovered sub-templates is the Settings registration
// order, which downstream becomes the alternative precedence. The
// discovered Spec keeps base as its base path for later reloads.
func FromDir(settings *Settings, base string) (*Spec, error) {
	if err := checkStringPath(base); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading template directory: %w", err)
	}

	present := map[string]bool{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, known := settings.TypeInfo(entry.Name()); !known {
			return nil, fmt.Errorf("%w: %q in %q", ErrMissingTypeInfo, entry.Name(), base)
		}
		present[entry.Name()] = true
	}

	subs := make([]*SubSpec, 0, len(present))
	for _, typ := range settings.Types() {
		if !present[typ] {
			continue
		}

		info, _ := settings.TypeInfo(typ)
		sub, err := subFromDir(settings, info, filepath.Join(base, typ))
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSubTemplates, base)
	}

	return NewWithBasePath(subs, base)
}

// subFromDir builds the SubSpec for one alternative directory.
func subFromDir(settings *Settings, info TypeInfo, dir string) (*SubSpec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading sub-template directory: %w", err)
	}

	var (
		templatePath string
		embeddings   = map[string]*resource.Spec{}
		attachments  []*resource.Spec
	)

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if !entry.Type().IsRegular() {
			return nil, fmt.Errorf("%w: %q", ErrNotAFile, path)
		}

		stem, _, _ := strings.Cut(name, ".")
		switch {
		case stem == settings.TemplateStem():
			if templatePath != "" {
				return nil, fmt.Errorf("%w: %q and %q", ErrManyTemplateFiles, templatePath, path)
			}
			templatePath = path

		case strings.HasPrefix(stem, EmbeddingPrefix):
			embName := strings.TrimPrefix(stem, EmbeddingPrefix)
			if _, dup := embeddings[embName]; dup {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateEmbeddingName, embName, dir)
			}

			mt, err := mime.GuessFromExtension(name)
			if err != nil {
				return nil, fmt.Errorf("creating media type for embedding %q: %w", path, err)
			}
			embeddings[embName] = &resource.Spec{Path: path, MediaType: mt}

		default:
			mt, err := mime.GuessFromExtension(name)
			if err != nil {
				return nil, fmt.Errorf("creating media type for attachment %q: %w", path, err)
			}
			attachments = append(attachments, &resource.Spec{Path: path, MediaType: mt, Name: name})
		}
	}

	if templatePath == "" {
		return nil, fmt.Errorf("%w: %q", ErrTemplateFileMissing, dir)
	}

	b := NewSubSpec(templatePath, info.MediaType)
	for name, spec := range embeddings {
		b.Embed(name, spec)
	}
	b.Attach(attachments...)
	return b.Build()
}
