package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-api/internal/domains/event/model"
	"library-api/internal/domains/event/repository"
	"library-api/internal/shared/apperror"
)

type eventService struct {
	repo repository.RepositoryInterface
}

func NewEventService(repo repository.RepositoryInterface) ServiceInterface {
	return &eventService{repo: repo}
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.repo.List(ctx)
}

func (s *eventService) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	e := req.ToEvent()
	created, err := s.repo.Create(ctx, &e)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("event_id", created.ID).Msg("Event created")
	return created, nil
}

func (s *eventService) Replace(ctx context.Context, id int64, req model.ReplaceEventRequest) error {
	if req.ID != id {
		return apperror.Validation("id in path (%d) does not match id in body (%d)", id, req.ID)
	}

	e := req.ToEvent()
	found, err := s.repo.Replace(ctx, &e)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrEventNotFound
	}

	log.Info().Int64("event_id", id).Msg("Event replaced")
	return nil
}

func (s *eventService) Patch(ctx context.Context, id int64, req model.PatchEventRequest) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	updated := req.ApplyTo(*existing)
	if updated.Name == existing.Name && updated.Location == existing.Location && updated.Date.Equal(existing.Date) {
		return nil
	}

	found, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrEventNotFound
	}

	log.Info().Int64("event_id", id).Msg("Event patched")
	return nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return model.ErrEventNotFound
	}

	log.Info().Int64("event_id", id).Msg("Event deleted")
	return nil
}
