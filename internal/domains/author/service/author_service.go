package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/repository"
	"library-api/internal/shared/apperror"
)

type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService receives the repository abstraction, never a concrete store.
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error) {
	a := req.ToAuthor()
	created, err := s.repo.Create(ctx, &a)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Msg("Author created")
	return created, nil
}

func (s *authorService) Replace(ctx context.Context, id int64, req model.ReplaceAuthorRequest) error {
	if req.ID != id {
		return apperror.Validation("id in path (%d) does not match id in body (%d)", id, req.ID)
	}

	a := req.ToAuthor()
	found, err := s.repo.Replace(ctx, &a)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrAuthorNotFound
	}

	log.Info().Int64("author_id", id).Msg("Author replaced")
	return nil
}

func (s *authorService) Patch(ctx context.Context, id int64, req model.PatchAuthorRequest) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	updated := req.ApplyTo(*existing)
	if updated == *existing {
		return nil
	}

	found, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrAuthorNotFound
	}

	log.Info().Int64("author_id", id).Msg("Author patched")
	return nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return model.ErrAuthorNotFound
	}

	log.Info().Int64("author_id", id).Msg("Author deleted with its books, biography and event links")
	return nil
}
