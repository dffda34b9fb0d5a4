package mime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-email-template/mime"
)

func TestParse(t *testing.T) {
	t.Parallel()

	mt, err := mime.Parse("text/html; charset=utf-8")
	require.NoError(t, err)

	assert.Equal(t, "text/html", mt.MediaType())
	assert.Equal(t, "text", mt.Type())
	assert.Equal(t, "html", mt.Subtype())
	assert.Equal(t, "utf-8", mt.Charset())
	assert.Equal(t, "utf-8", mt.Parameter("charset"))
	assert.Equal(t, "text/html; charset=utf-8", mt.String())
}

func TestParseErr(t *testing.T) {
	t.Parallel()

	_, err := mime.Parse("complete junk;;;")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	mt, err := mime.New("image/png", "name", "logo.png")
	require.NoError(t, err)
	assert.Equal(t, "image", mt.Type())
	assert.Equal(t, "png", mt.Subtype())
	assert.Equal(t, "logo.png", mt.Parameter("name"))
	assert.Len(t, mt.Parameters(), 1)

	_, err = mime.New("image/png", "name")
	assert.ErrorIs(t, err, mime.ErrOddParams)
}

func TestTypeWithoutSlash(t *testing.T) {
	t.Parallel()

	mt, err := mime.New("attachment")
	require.NoError(t, err)
	assert.Equal(t, "", mt.Type())
	assert.Equal(t, "", mt.Subtype())
	assert.Equal(t, "attachment", mt.MediaType())
}

func TestGuessFromExtension(t *testing.T) {
	t.Parallel()

	mt, err := mime.GuessFromExtension("logo.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mt.MediaType())

	mt, err = mime.GuessFromExtension("mystery.zzz-unknown")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", mt.MediaType())
}
