package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/formdeck/formdeck/internal/domain"
)

// ErrTemplateLimit is returned when creating a template would exceed the
// store's capacity. The message is shown to the user verbatim.
var ErrTemplateLimit = fmt.Errorf("maximum of %d templates allowed", domain.MaxTemplates)

// ErrNotFound is returned when a template id is not in the store.
var ErrNotFound = errors.New("template not found")

// TemplateStore owns the canonical template list for one session. It is
// constructed once in run(), used single-threaded, and Closed on exit —
// at which point everything in it is gone.
type TemplateStore interface {
	// NewDraft constructs an empty draft template (not yet committed to
	// the list). Fails with ErrTemplateLimit at capacity.
	NewDraft(ctx context.Context) (*domain.Template, error)
	// Save commits a draft: an id already in the store is replaced in
	// place (list position preserved), a new id is appended.
	Save(ctx context.Context, t *domain.Template) error
	Get(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]*domain.Template, error)
	Count(ctx context.Context) (int, error)
	// Delete removes a template. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
	Close() error
}
