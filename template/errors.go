package template

import "errors"

// Errors raised while building template specs, by hand or by discovery.
var (
	// ErrNoSubTemplates is returned by New when given an empty
	// sub-template list and by FromDir when a template directory holds no
	// alternative subdirectory at all.
	ErrNoSubTemplates = errors.New("template spec requires at least one sub-template")

	// ErrNonStringPath is returned when a path is not valid UTF-8. Paths
	// are handed to render engines and stored in specs as text, so byte
	// salad is rejected up front.
	ErrNonStringPath = errors.New("path is not valid UTF-8")

	// ErrMissingTypeInfo is returned by FromDir when a subdirectory names
	// an alternative type the Settings know nothing about.
	ErrMissingTypeInfo = errors.New("no type info registered for alternative")

	// ErrDuplicateEmbeddingName is returned by FromDir when two files in
	// one alternative directory map to the same embedding name.
	ErrDuplicateEmbeddingName = errors.New("duplicate embedding name")

	// ErrTemplateFileMissing is returned by FromDir when an alternative
	// directory holds no template file.
	ErrTemplateFileMissing = errors.New("sub-template directory contains no template file")

	// ErrManyTemplateFiles is returned by FromDir when an alternative
	// directory holds more than one template file.
	ErrManyTemplateFiles = errors.New("sub-template directory contains more than one template file")

	// ErrNotAFile is returned by FromDir when a template, embedding, or
	// attachment entry is not a regular file.
	ErrNotAFile = errors.New("template, embedding, or attachment is not a regular file")
)
