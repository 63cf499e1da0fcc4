package service

import (
	"context"

	"github.com/rs/zerolog/log"

	authorModel "library-api/internal/domains/author/model"
	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
	"library-api/internal/shared/apperror"
	"library-api/internal/shared/existence"
)

type bookService struct {
	repo     repository.RepositoryInterface
	existing *existence.Validator
}

func NewBookService(repo repository.RepositoryInterface, existing *existence.Validator) ServiceInterface {
	return &bookService{repo: repo, existing: existing}
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	ok, err := s.existing.Exists(ctx, existence.KindAuthor, authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, authorModel.ErrAuthorNotFound
	}
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *bookService) requireAuthor(ctx context.Context, authorID int64) error {
	if err := s.existing.Require(ctx, existence.KindAuthor, authorID); err != nil {
		log.Warn().Int64("author_id", authorID).Msg("Book write rejected: author does not exist")
		return err
	}
	return nil
}

func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := s.requireAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	b := req.ToBook()
	created, err := s.repo.Create(ctx, &b)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("book_id", created.ID).Int64("author_id", created.AuthorID).Msg("Book created")
	return created, nil
}

func (s *bookService) Replace(ctx context.Context, id int64, req model.ReplaceBookRequest) error {
	if req.ID != id {
		return apperror.Validation("id in path (%d) does not match id in body (%d)", id, req.ID)
	}
	if err := s.requireAuthor(ctx, req.AuthorID); err != nil {
		return err
	}

	b := req.ToBook()
	found, err := s.repo.Replace(ctx, &b)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrBookNotFound
	}

	log.Info().Int64("book_id", id).Msg("Book replaced")
	return nil
}

// Patch looks the book up first, so a missing book wins over a bad author id.
func (s *bookService) Patch(ctx context.Context, id int64, req model.PatchBookRequest) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if authorID, ok := req.AuthorID.Get(); ok && authorID != existing.AuthorID {
		if err := s.requireAuthor(ctx, authorID); err != nil {
			return err
		}
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
		return model.ErrBookNotFound
	}

	log.Info().Int64("book_id", id).Msg("Book patched")
	return nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return model.ErrBookNotFound
	}

	log.Info().Int64("book_id", id).Msg("Book deleted")
	return nil
}
