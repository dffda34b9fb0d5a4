package resource

import (
	"fmt"

	"github.com/google/uuid"
)

// ContentID identifies an embedded resource uniquely within one message.
// It is stored without the angle brackets of the Content-ID header form.
type ContentID string

// String returns the id as a plain string.
func (c ContentID) String() string { return string(c) }

// Generator produces content ids. Implementations must return ids that
// are unique within the scope of a single message; global uniqueness is
// better still. Any concurrency guarantee is the implementation's own.
type Generator interface {
	// GenerateContentID returns a fresh content id. It cannot fail; an
	// implementation whose id source can fail should prefer NewContentID
	// and reserve this for sources that cannot.
	GenerateContentID() ContentID

	// NewContentID returns a fresh content id or an error when the id
	// source is unavailable.
	NewContentID() (ContentID, error)
}

// UUIDGenerator is a Generator producing "uuid@domain" ids backed by
// random UUIDs.
type UUIDGenerator struct {
	// Domain is the right-hand side of generated ids. Content ids look
	// best when this names the sending host. Defaults to "localhost".
	Domain string
}

func (g UUIDGenerator) domain() string {
	if g.Domain == "" {
		return "localhost"
	}
	return g.Domain
}

// GenerateContentID returns a fresh random id. It panics only if the
// platform randomness source is broken.
func (g UUIDGenerator) GenerateContentID() ContentID {
	return ContentID(fmt.Sprintf("%s@%s", uuid.New(), g.domain()))
}

// NewContentID returns a fresh random id, reporting randomness failures
// as an error instead of panicking.
func (g UUIDGenerator) NewContentID() (ContentID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating content id: %w", err)
	}
	return ContentID(fmt.Sprintf("%s@%s", id, g.domain())), nil
}
