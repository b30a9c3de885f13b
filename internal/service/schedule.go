package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var (
	ErrEventNotFound    = repository.ErrEventNotFound
	ErrActivityNotFound = repository.ErrActivityNotFound
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

type ScheduleRepository interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	FindEventByID(ctx context.Context, id uint) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	ListEvents(ctx context.Context, status string) ([]domain.Event, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindActivityByID(ctx context.Context, id uint) (domain.Activity, error)
	UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id uint) error
	ListActivities(ctx context.Context, status string) ([]domain.Activity, error)
	ListActivitiesWithCapacity(ctx context.Context) ([]domain.Activity, error)
}

type ScheduleService struct {
	repo ScheduleRepository
}

func NewScheduleService(repo ScheduleRepository) *ScheduleService {
	return &ScheduleService{
		repo: repo,
	}
}

func (s *ScheduleService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if !event.EndTime.After(event.StartTime) {
		return domain.Event{}, ErrInvalidTimeRange
	}
	if event.Status == "" {
		event.Status = domain.ScheduleStatusDraft
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.CreateEvent -> %w", err)
	}

	return created, nil
}

func (s *ScheduleService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	return event, nil
}

func (s *ScheduleService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if !event.EndTime.After(event.StartTime) {
		return domain.Event{}, ErrInvalidTimeRange
	}

	existing, err := s.repo.FindEventByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	event.CreatedAt = existing.CreatedAt
	updated, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.UpdateEvent -> %w", err)
	}

	return updated, nil
}

func (s *ScheduleService) DeleteEvent(ctx context.Context, id uint) error {
	return s.repo.DeleteEvent(ctx, id)
}

func (s *ScheduleService) ListEvents(ctx context.Context, status string) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEvents -> %w", err)
	}

	return events, nil
}

// PublishEvent flips a draft event to published, making it visible to guests.
func (s *ScheduleService) PublishEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	event.Status = domain.ScheduleStatusPublished
	updated, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.UpdateEvent -> %w", err)
	}

	return updated, nil
}

// ListEventsForGuest returns published events filtered by the guest's type.
func (s *ScheduleService) ListEventsForGuest(ctx context.Context, guestType string) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx, domain.ScheduleStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEvents -> %w", err)
	}

	visible := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.VisibleTo(guestType) {
			visible = append(visible, e)
		}
	}

	return visible, nil
}

func (s *ScheduleService) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if !activity.EndTime.After(activity.StartTime) {
		return domain.Activity{}, ErrInvalidTimeRange
	}
	if activity.Status == "" {
		activity.Status = domain.ScheduleStatusDraft
	}

	created, err := s.repo.CreateActivity(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.CreateActivity -> %w", err)
	}

	return created, nil
}

func (s *ScheduleService) GetActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindActivityByID -> %w", err)
	}

	return activity, nil
}

func (s *ScheduleService) UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if !activity.EndTime.After(activity.StartTime) {
		return domain.Activity{}, ErrInvalidTimeRange
	}

	existing, err := s.repo.FindActivityByID(ctx, activity.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindActivityByID -> %w", err)
	}

	activity.CreatedAt = existing.CreatedAt
	updated, err := s.repo.UpdateActivity(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.UpdateActivity -> %w", err)
	}

	return updated, nil
}

func (s *ScheduleService) DeleteActivity(ctx context.Context, id uint) error {
	return s.repo.DeleteActivity(ctx, id)
}

func (s *ScheduleService) ListActivities(ctx context.Context, status string) ([]domain.Activity, error) {
	activities, err := s.repo.ListActivities(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListActivities -> %w", err)
	}

	return activities, nil
}

func (s *ScheduleService) PublishActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindActivityByID -> %w", err)
	}

	activity.Status = domain.ScheduleStatusPublished
	updated, err := s.repo.UpdateActivity(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.UpdateActivity -> %w", err)
	}

	return updated, nil
}

func (s *ScheduleService) ListActivitiesForGuest(ctx context.Context, guestType string) ([]domain.Activity, error) {
	activities, err := s.repo.ListActivities(ctx, domain.ScheduleStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListActivities -> %w", err)
	}

	visible := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.VisibleTo(guestType) {
			visible = append(visible, a)
		}
	}

	return visible, nil
}
