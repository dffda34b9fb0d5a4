package template_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-email-template/template"
)

// writeTree lays out files relative to dir, creating directories as
// needed.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestFromDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"text/mail.txt":     "hello {{.Data.Name}}",
		"html/mail.html":    `<img src="cid:{{.CIDs.logo}}">`,
		"html/emb_logo.png": "\x89PNG",
		"html/terms.pdf":    "%PDF-1.4",
		"html/notes.txt":    "extra attachment",
	})

	spec, err := template.FromDir(template.DefaultSettings(), dir)
	require.NoError(t, err)

	base, hasBase := spec.BasePath()
	assert.True(t, hasBase)
	assert.Equal(t, dir, base)

	subs := spec.SubTemplates()
	require.Len(t, subs, 2)

	// settings registration order: text before html
	text := subs[0]
	assert.Equal(t, filepath.Join(dir, "text", "mail.txt"), text.Path())
	assert.Equal(t, "text/plain", text.MediaType().MediaType())
	assert.Empty(t, text.Embeddings())
	assert.Empty(t, text.Attachments())

	html := subs[1]
	assert.Equal(t, filepath.Join(dir, "html", "mail.html"), html.Path())
	assert.Equal(t, "text/html", html.MediaType().MediaType())

	require.Len(t, html.Embeddings(), 1)
	logo := html.Embeddings()["logo"]
	require.NotNil(t, logo)
	assert.Equal(t, filepath.Join(dir, "html", "emb_logo.png"), logo.Path)
	assert.Equal(t, "image/png", logo.MediaType.MediaType())

	// attachments in filename order
	atts := html.Attachments()
	require.Len(t, atts, 2)
	assert.Equal(t, "notes.txt", atts[0].Name)
	assert.Equal(t, "terms.pdf", atts[1].Name)
	assert.Equal(t, "application/pdf", atts[1].MediaType.MediaType())
}

func TestFromDirEmbeddingStemStopsAtFirstDot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"html/mail.html":        "body",
		"html/emb_logo.min.png": "png",
	})

	spec, err := template.FromDir(template.DefaultSettings(), dir)
	require.NoError(t, err)

	html := spec.SubTemplates()[0]
	_, ok := html.Embeddings()["logo"]
	assert.True(t, ok)
}

func TestFromDirUnknownAlternative(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"amp/mail.amp": "body"})

	_, err := template.FromDir(template.DefaultSettings(), dir)
	assert.ErrorIs(t, err, template.ErrMissingTypeInfo)
}

func TestFromDirEmpty(t *testing.T) {
	t.Parallel()

	_, err := template.FromDir(template.DefaultSettings(), t.TempDir())
	assert.ErrorIs(t, err, template.ErrNoSubTemplates)
}

func TestFromDirMissingTemplateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"text/emb_logo.png": "png"})

	_, err := template.FromDir(template.DefaultSettings(), dir)
	assert.ErrorIs(t, err, template.ErrTemplateFileMissing)
}

func TestFromDirManyTemplateFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"text/mail.txt":  "one",
		"text/mail.text": "two",
	})

	_, err := template.FromDir(template.DefaultSettings(), dir)
	assert.ErrorIs(t, err, template.ErrManyTemplateFiles)
}

func TestFromDirDuplicateEmbeddingName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"html/mail.html":    "body",
		"html/emb_logo.png": "png",
		"html/emb_logo.jpg": "jpg",
	})

	_, err := template.FromDir(template.DefaultSettings(), dir)
	assert.ErrorIs(t, err, template.ErrDuplicateEmbeddingName)
}

func TestFromDirNotAFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"html/mail.html":    "body",
		"html/extra/x.file": "nested",
	})

	_, err := template.FromDir(template.DefaultSettings(), dir)
	assert.ErrorIs(t, err, template.ErrNotAFile)
}

func TestFromDirMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := template.FromDir(template.DefaultSettings(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFromDirCustomStemAndType(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"text/body.txt": "body"})

	settings := template.DefaultSettings()
	prev := settings.SetTemplateStem("body")
	assert.Equal(t, template.DefaultTemplateStem, prev)

	spec, err := template.FromDir(settings, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "text", "body.txt"), spec.SubTemplates()[0].Path())
}
