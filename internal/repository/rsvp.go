package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

var (
	ErrRSVPNotFound = dao.ErrRSVPNotFound
	ErrRSVPExists   = dao.ErrRSVPExists
)

// RSVPFilter narrows List. Zero values are ignored.
type RSVPFilter struct {
	GuestID    uint
	EventID    uint
	ActivityID uint
	Status     string
	Page       int
	PageSize   int
}

type RSVPDAO interface {
	Insert(ctx context.Context, rsvp dao.RSVP) (dao.RSVP, error)
	FindByID(ctx context.Context, id uint) (dao.RSVP, error)
	Update(ctx context.Context, rsvp dao.RSVP) (dao.RSVP, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dao.RSVPFilter) ([]dao.RSVP, int64, error)
	FindAttendingByActivity(ctx context.Context, activityID, excludeID uint) ([]dao.RSVP, error)
	FindByGuest(ctx context.Context, guestID uint) ([]dao.RSVP, error)
}

type RSVPRepository struct {
	dao RSVPDAO
}

func NewRSVPRepository(dao RSVPDAO) *RSVPRepository {
	return &RSVPRepository{
		dao: dao,
	}
}

func (r *RSVPRepository) domainToDao(rsvp domain.RSVP) dao.RSVP {
	return dao.RSVP{
		ID:           rsvp.ID,
		GuestID:      rsvp.GuestID,
		EventID:      rsvp.EventID,
		ActivityID:   rsvp.ActivityID,
		Status:       rsvp.Status,
		GuestCount:   rsvp.GuestCount,
		DietaryNotes: rsvp.DietaryNotes,
		RespondedAt:  rsvp.RespondedAt,
		CreatedAt:    rsvp.CreatedAt,
		UpdatedAt:    rsvp.UpdatedAt,
	}
}

func (r *RSVPRepository) daoToDomain(rsvp dao.RSVP) domain.RSVP {
	return domain.RSVP{
		ID:           rsvp.ID,
		GuestID:      rsvp.GuestID,
		EventID:      rsvp.EventID,
		ActivityID:   rsvp.ActivityID,
		Status:       rsvp.Status,
		GuestCount:   rsvp.GuestCount,
		DietaryNotes: rsvp.DietaryNotes,
		RespondedAt:  rsvp.RespondedAt,
		CreatedAt:    rsvp.CreatedAt,
		UpdatedAt:    rsvp.UpdatedAt,
	}
}

func (r *RSVPRepository) daosToDomain(rsvps []dao.RSVP) []domain.RSVP {
	converted := make([]domain.RSVP, len(rsvps))
	for i, rsvp := range rsvps {
		converted[i] = r.daoToDomain(rsvp)
	}
	return converted
}

func (r *RSVPRepository) Create(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(rsvp))
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RSVPRepository) FindByID(ctx context.Context, id uint) (domain.RSVP, error) {
	rsvp, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(rsvp), nil
}

func (r *RSVPRepository) Update(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(rsvp))
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *RSVPRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *RSVPRepository) List(ctx context.Context, filter RSVPFilter) ([]domain.RSVP, int64, error) {
	rsvps, total, err := r.dao.List(ctx, dao.RSVPFilter{
		GuestID:    filter.GuestID,
		EventID:    filter.EventID,
		ActivityID: filter.ActivityID,
		Status:     filter.Status,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(rsvps), total, nil
}

// FindAttendingByActivity feeds the capacity check. A zero excludeID means
// no RSVP is excluded.
func (r *RSVPRepository) FindAttendingByActivity(ctx context.Context, activityID, excludeID uint) ([]domain.RSVP, error) {
	rsvps, err := r.dao.FindAttendingByActivity(ctx, activityID, excludeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAttendingByActivity -> %w", err)
	}

	return r.daosToDomain(rsvps), nil
}

func (r *RSVPRepository) FindByGuest(ctx context.Context, guestID uint) ([]domain.RSVP, error) {
	rsvps, err := r.dao.FindByGuest(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByGuest -> %w", err)
	}

	return r.daosToDomain(rsvps), nil
}
