package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-api/internal/domains/association/model"
	"library-api/internal/domains/association/repository"
	authorModel "library-api/internal/domains/author/model"
	eventModel "library-api/internal/domains/event/model"
	"library-api/internal/shared/existence"
)

type associationService struct {
	repo     repository.RepositoryInterface
	existing *existence.Validator
}

func NewAssociationService(repo repository.RepositoryInterface, existing *existence.Validator) ServiceInterface {
	return &associationService{repo: repo, existing: existing}
}

func (s *associationService) requireEvent(ctx context.Context, eventID int64) error {
	ok, err := s.existing.Exists(ctx, existence.KindEvent, eventID)
	if err != nil {
		return err
	}
	if !ok {
		return eventModel.ErrEventNotFound
	}
	return nil
}

func (s *associationService) AddAuthor(ctx context.Context, eventID, authorID int64) error {
	if err := s.requireEvent(ctx, eventID); err != nil {
		return err
	}
	if err := s.existing.Require(ctx, existence.KindAuthor, authorID); err != nil {
		return err
	}

	added, err := s.repo.Add(ctx, eventID, authorID)
	if err != nil {
		return err
	}
	if !added {
		return model.ErrAssociationExists
	}

	log.Info().Int64("event_id", eventID).Int64("author_id", authorID).Msg("Author linked to event")
	return nil
}

func (s *associationService) RemoveAuthor(ctx context.Context, eventID, authorID int64) error {
	removed, err := s.repo.Remove(ctx, eventID, authorID)
	if err != nil {
		return err
	}
	if !removed {
		return model.ErrAssociationNotFound
	}

	log.Info().Int64("event_id", eventID).Int64("author_id", authorID).Msg("Author unlinked from event")
	return nil
}

func (s *associationService) ListMembers(ctx context.Context, eventID int64) ([]authorModel.Author, error) {
	return s.repo.ListAuthorsByEvent(ctx, eventID)
}

func (s *associationService) ListAuthors(ctx context.Context, eventID int64) ([]authorModel.Author, error) {
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.ListMembers(ctx, eventID)
}

func (s *associationService) ListEvents(ctx context.Context, authorID int64) ([]eventModel.Event, error) {
	ok, err := s.existing.Exists(ctx, existence.KindAuthor, authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, authorModel.ErrAuthorNotFound
	}
	return s.repo.ListEventsByAuthor(ctx, authorID)
}
