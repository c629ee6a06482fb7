package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/formdeck/formdeck/internal/domain"
	"github.com/formdeck/formdeck/internal/repository"
)

type templateStoreImpl struct {
	repo repository.TemplateRepo
	db   *sql.DB
}

// NewTemplateStore creates the session's template store over the given
// repository. db may be nil in tests that construct the repo themselves;
// Close then has nothing to release.
func NewTemplateStore(repo repository.TemplateRepo, db *sql.DB) TemplateStore {
	return &templateStoreImpl{repo: repo, db: db}
}

func (s *templateStoreImpl) NewDraft(ctx context.Context) (*domain.Template, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking capacity: %w", err)
	}
	if count >= domain.MaxTemplates {
		return nil, ErrTemplateLimit
	}
	t := domain.NewTemplate(count)
	return &t, nil
}

func (s *templateStoreImpl) Save(ctx context.Context, t *domain.Template) error {
	exists, err := s.repo.Exists(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("resolving save target: %w", err)
	}
	if exists {
		return s.repo.Replace(ctx, t)
	}

	// A draft that was started below capacity could still race past the
	// cap if older drafts were saved first; re-check before appending.
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking capacity: %w", err)
	}
	if count >= domain.MaxTemplates {
		return ErrTemplateLimit
	}
	return s.repo.Append(ctx, t)
}

func (s *templateStoreImpl) Get(ctx context.Context, id string) (*domain.Template, error) {
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *templateStoreImpl) List(ctx context.Context) ([]*domain.Template, error) {
	return s.repo.List(ctx)
}

func (s *templateStoreImpl) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *templateStoreImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *templateStoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
