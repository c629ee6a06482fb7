package repository

import (
	"context"
	"errors"

	"github.com/formdeck/formdeck/internal/domain"
)

// ErrNotFound is returned when a template id has no row.
var ErrNotFound = errors.New("template not found")

// TemplateRepo persists whole template documents. Save semantics belong
// to the service layer; the repo only distinguishes append from
// in-place replace.
type TemplateRepo interface {
	// Append stores a new template at the end of the list.
	Append(ctx context.Context, t *domain.Template) error
	// Replace overwrites the document with the same id, keeping its
	// list position. The section and field trees are fully rewritten.
	Replace(ctx context.Context, t *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	// List returns all templates in insertion order.
	List(ctx context.Context) ([]*domain.Template, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	// Delete removes a template and its children. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
}
