package resource_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-email-template/mime"
	"github.com/zostay/go-email-template/resource"
)

// countingGen hands out cid-1, cid-2, ... so tests can see exactly how
// often it was consulted.
type countingGen struct {
	n int
}

func (g *countingGen) GenerateContentID() resource.ContentID {
	g.n++
	return resource.ContentID(fmt.Sprintf("cid-%d@test", g.n))
}

func (g *countingGen) NewContentID() (resource.ContentID, error) {
	return g.GenerateContentID(), nil
}

func pngResource(t *testing.T) *resource.Resource {
	t.Helper()
	mt, err := mime.New("image/png")
	require.NoError(t, err)
	return resource.FromBuffer(mt, "logo.png", []byte{0x89, 'P', 'N', 'G'})
}

func TestAssureContentIDIsIdempotent(t *testing.T) {
	t.Parallel()

	gen := &countingGen{}
	e := resource.NewInline(pngResource(t))

	_, ok := e.ContentID()
	assert.False(t, ok)

	first := e.AssureContentID(gen)
	second := e.AssureContentID(gen)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.n)

	cid, ok := e.ContentID()
	assert.True(t, ok)
	assert.Equal(t, first, cid)
}

func TestAssureContentIDDistinctPerEmbedded(t *testing.T) {
	t.Parallel()

	gen := &countingGen{}
	a := resource.NewInline(pngResource(t))
	b := resource.NewInline(pngResource(t))

	assert.NotEqual(t, a.AssureContentID(gen), b.AssureContentID(gen))
}

func TestAssureContentIDAndCopy(t *testing.T) {
	t.Parallel()

	gen := &countingGen{}
	e := resource.NewInline(pngResource(t))

	tagged := e.AssureContentIDAndCopy(gen)

	cid, ok := e.ContentID()
	require.True(t, ok)
	assert.Equal(t, cid, tagged.ContentID())
	assert.Same(t, e.Resource(), tagged.Resource())
	assert.Equal(t, 1, gen.n)

	// the copy is independent of later changes to the original
	_ = e.VisitResources(func(*resource.Embedded) error { return nil })
	assert.Equal(t, cid, tagged.ContentID())
}

func TestTryWithContentID(t *testing.T) {
	t.Parallel()

	gen := &countingGen{}
	e := resource.NewAttachment(pngResource(t))

	_, err := resource.TryWithContentID(e)
	assert.ErrorIs(t, err, resource.ErrNoContentID)

	// the failed upgrade must not have eaten the original
	assert.Equal(t, resource.Attachment, e.Disposition())
	assert.NotNil(t, e.Resource())

	e.AssureContentID(gen)
	tagged, err := resource.TryWithContentID(e)
	require.NoError(t, err)

	cid, res := tagged.Unwrap()
	wantCID, _ := e.ContentID()
	assert.Equal(t, wantCID, cid)
	assert.Same(t, e.Resource(), res)
}

func TestEmbeddedVisitsItself(t *testing.T) {
	t.Parallel()

	e := resource.NewInline(pngResource(t))

	seen := 0
	err := e.VisitResources(func(v *resource.Embedded) error {
		seen++
		assert.Same(t, e, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

func TestUUIDGenerator(t *testing.T) {
	t.Parallel()

	gen := resource.UUIDGenerator{Domain: "mail.example.com"}

	a := gen.GenerateContentID()
	b := gen.GenerateContentID()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a.String(), "@mail.example.com"))

	c, err := gen.NewContentID()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	d, err := resource.UUIDGenerator{}.NewContentID()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(d.String(), "@localhost"))
}

func TestResourceOpenBuffer(t *testing.T) {
	t.Parallel()

	r := pngResource(t)
	rc, err := r.Open()
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	bs, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, bs)
	assert.Equal(t, "image/png", r.MediaType().MediaType())
	assert.Equal(t, "logo.png", r.Name())
}

func TestFromSpecNameDefaultsToBase(t *testing.T) {
	t.Parallel()

	mt, err := mime.New("image/png")
	require.NoError(t, err)

	r := resource.FromSpec(&resource.Spec{Path: "assets/img/logo.png", MediaType: mt})
	assert.Equal(t, "logo.png", r.Name())
}
