package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

var (
	ErrEventNotFound    = dao.ErrEventNotFound
	ErrActivityNotFound = dao.ErrActivityNotFound
)

type ScheduleDAO interface {
	InsertEvent(ctx context.Context, event dao.Event) (dao.Event, error)
	FindEventByID(ctx context.Context, id uint) (dao.Event, error)
	UpdateEvent(ctx context.Context, event dao.Event) (dao.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	ListEvents(ctx context.Context, status string) ([]dao.Event, error)
	InsertActivity(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindActivityByID(ctx context.Context, id uint) (dao.Activity, error)
	UpdateActivity(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	DeleteActivity(ctx context.Context, id uint) error
	ListActivities(ctx context.Context, status string) ([]dao.Activity, error)
	ListActivitiesWithCapacity(ctx context.Context) ([]dao.Activity, error)
}

type ScheduleRepository struct {
	dao ScheduleDAO
}

func NewScheduleRepository(dao ScheduleDAO) *ScheduleRepository {
	return &ScheduleRepository{
		dao: dao,
	}
}

func (r *ScheduleRepository) eventDomainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		LocationID:   e.LocationID,
		RSVPDeadline: e.RSVPDeadline,
		Status:       e.Status,
		Visibility:   e.Visibility,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *ScheduleRepository) eventDaoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		LocationID:   e.LocationID,
		RSVPDeadline: e.RSVPDeadline,
		Status:       e.Status,
		Visibility:   e.Visibility,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *ScheduleRepository) activityDomainToDao(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		LocationID:  a.LocationID,
		Capacity:    a.Capacity,
		Status:      a.Status,
		Visibility:  a.Visibility,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *ScheduleRepository) activityDaoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		LocationID:  a.LocationID,
		Capacity:    a.Capacity,
		Status:      a.Status,
		Visibility:  a.Visibility,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *ScheduleRepository) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.InsertEvent(ctx, r.eventDomainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.InsertEvent -> %w", err)
	}

	return r.eventDaoToDomain(created), nil
}

func (r *ScheduleRepository) FindEventByID(ctx context.Context, id uint) (domain.Event, error) {
	event, err := r.dao.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindEventByID -> %w", err)
	}

	return r.eventDaoToDomain(event), nil
}

func (r *ScheduleRepository) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.UpdateEvent(ctx, r.eventDomainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.UpdateEvent -> %w", err)
	}

	return r.eventDaoToDomain(updated), nil
}

func (r *ScheduleRepository) DeleteEvent(ctx context.Context, id uint) error {
	return r.dao.DeleteEvent(ctx, id)
}

func (r *ScheduleRepository) ListEvents(ctx context.Context, status string) ([]domain.Event, error) {
	events, err := r.dao.ListEvents(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListEvents -> %w", err)
	}

	converted := make([]domain.Event, len(events))
	for i, e := range events {
		converted[i] = r.eventDaoToDomain(e)
	}

	return converted, nil
}

func (r *ScheduleRepository) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.InsertActivity(ctx, r.activityDomainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.InsertActivity -> %w", err)
	}

	return r.activityDaoToDomain(created), nil
}

func (r *ScheduleRepository) FindActivityByID(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := r.dao.FindActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindActivityByID -> %w", err)
	}

	return r.activityDaoToDomain(activity), nil
}

func (r *ScheduleRepository) UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	updated, err := r.dao.UpdateActivity(ctx, r.activityDomainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.UpdateActivity -> %w", err)
	}

	return r.activityDaoToDomain(updated), nil
}

func (r *ScheduleRepository) DeleteActivity(ctx context.Context, id uint) error {
	return r.dao.DeleteActivity(ctx, id)
}

func (r *ScheduleRepository) ListActivities(ctx context.Context, status string) ([]domain.Activity, error) {
	activities, err := r.dao.ListActivities(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListActivities -> %w", err)
	}

	converted := make([]domain.Activity, len(activities))
	for i, a := range activities {
		converted[i] = r.activityDaoToDomain(a)
	}

	return converted, nil
}

func (r *ScheduleRepository) ListActivitiesWithCapacity(ctx context.Context) ([]domain.Activity, error) {
	activities, err := r.dao.ListActivitiesWithCapacity(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListActivitiesWithCapacity -> %w", err)
	}

	converted := make([]domain.Activity, len(activities))
	for i, a := range activities {
		converted[i] = r.activityDaoToDomain(a)
	}

	return converted, nil
}
