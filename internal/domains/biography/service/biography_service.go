package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-api/internal/domains/biography/model"
	"library-api/internal/domains/biography/repository"
	"library-api/internal/shared/apperror"
	"library-api/internal/shared/existence"
)

type biographyService struct {
	repo     repository.RepositoryInterface
	existing *existence.Validator
}

func NewBiographyService(repo repository.RepositoryInterface, existing *existence.Validator) ServiceInterface {
	return &biographyService{repo: repo, existing: existing}
}

func (s *biographyService) List(ctx context.Context) ([]model.Biography, error) {
	return s.repo.List(ctx)
}

func (s *biographyService) GetByAuthorID(ctx context.Context, authorID int64) (*model.Biography, error) {
	return s.repo.GetByAuthorID(ctx, authorID)
}

func (s *biographyService) Create(ctx context.Context, req model.CreateBiographyRequest) (*model.Biography, error) {
	if err := s.existing.Require(ctx, existence.KindAuthor, req.AuthorID); err != nil {
		return nil, err
	}

	// One biography per author is a write-time rule, checked before the insert.
	exists, err := s.repo.ExistsByAuthorID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrBiographyExists
	}

	b := req.ToBiography()
	created, err := s.repo.Create(ctx, &b)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", created.AuthorID).Msg("Biography created")
	return created, nil
}

func (s *biographyService) Replace(ctx context.Context, authorID int64, req model.ReplaceBiographyRequest) error {
	if req.AuthorID != authorID {
		return apperror.Validation("author id in path (%d) does not match author_id in body (%d)", authorID, req.AuthorID)
	}

	b := req.ToBiography()
	found, err := s.repo.Replace(ctx, &b)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrBiographyNotFound
	}

	log.Info().Int64("author_id", authorID).Msg("Biography replaced")
	return nil
}

func (s *biographyService) Patch(ctx context.Context, authorID int64, req model.PatchBiographyRequest) error {
	existing, err := s.repo.GetByAuthorID(ctx, authorID)
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
		return model.ErrBiographyNotFound
	}

	log.Info().Int64("author_id", authorID).Msg("Biography patched")
	return nil
}

func (s *biographyService) Delete(ctx context.Context, authorID int64) error {
	removed, err := s.repo.Delete(ctx, authorID)
	if err != nil {
		return err
	}
	if !removed {
		return model.ErrBiographyNotFound
	}

	log.Info().Int64("author_id", authorID).Msg("Biography deleted")
	return nil
}
