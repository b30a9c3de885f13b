package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

var (
	ErrGuestNotFound = dao.ErrGuestNotFound
	ErrGroupNotFound = dao.ErrGroupNotFound
)

// GuestFilter narrows List. Zero values are ignored.
type GuestFilter struct {
	GroupID     uint
	GuestType   string
	AgeCategory string
	Page        int
	PageSize    int
}

type GuestDAO interface {
	Insert(ctx context.Context, guest dao.Guest) (dao.Guest, error)
	InsertBatch(ctx context.Context, guests []dao.Guest) ([]dao.Guest, error)
	FindByID(ctx context.Context, id uint) (dao.Guest, error)
	Update(ctx context.Context, guest dao.Guest) (dao.Guest, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dao.GuestFilter) ([]dao.Guest, int64, error)
	InsertGroup(ctx context.Context, group dao.GuestGroup) (dao.GuestGroup, error)
	FindGroupByID(ctx context.Context, id uint) (dao.GuestGroup, error)
	ListGroups(ctx context.Context) ([]dao.GuestGroup, error)
}

type GuestRepository struct {
	dao GuestDAO
}

func NewGuestRepository(dao GuestDAO) *GuestRepository {
	return &GuestRepository{
		dao: dao,
	}
}

func (r *GuestRepository) domainToDao(g domain.Guest) dao.Guest {
	return dao.Guest{
		ID:           g.ID,
		GroupID:      g.GroupID,
		FirstName:    g.FirstName,
		LastName:     g.LastName,
		Email:        g.Email,
		Phone:        g.Phone,
		AgeCategory:  g.AgeCategory,
		GuestType:    g.GuestType,
		DietaryNotes: g.DietaryNotes,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func (r *GuestRepository) daoToDomain(g dao.Guest) domain.Guest {
	return domain.Guest{
		ID:           g.ID,
		GroupID:      g.GroupID,
		FirstName:    g.FirstName,
		LastName:     g.LastName,
		Email:        g.Email,
		Phone:        g.Phone,
		AgeCategory:  g.AgeCategory,
		GuestType:    g.GuestType,
		DietaryNotes: g.DietaryNotes,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func (r *GuestRepository) daosToDomain(guests []dao.Guest) []domain.Guest {
	converted := make([]domain.Guest, len(guests))
	for i, g := range guests {
		converted[i] = r.daoToDomain(g)
	}
	return converted
}

func (r *GuestRepository) Create(ctx context.Context, guest domain.Guest) (domain.Guest, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(guest))
	if err != nil {
		return domain.Guest{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GuestRepository) CreateBatch(ctx context.Context, guests []domain.Guest) ([]domain.Guest, error) {
	daoGuests := make([]dao.Guest, len(guests))
	for i, g := range guests {
		daoGuests[i] = r.domainToDao(g)
	}

	created, err := r.dao.InsertBatch(ctx, daoGuests)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return r.daosToDomain(created), nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id uint) (domain.Guest, error) {
	guest, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Guest{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(guest), nil
}

func (r *GuestRepository) Update(ctx context.Context, guest domain.Guest) (domain.Guest, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(guest))
	if err != nil {
		return domain.Guest{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GuestRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *GuestRepository) List(ctx context.Context, filter GuestFilter) ([]domain.Guest, int64, error) {
	guests, total, err := r.dao.List(ctx, dao.GuestFilter{
		GroupID:     filter.GroupID,
		GuestType:   filter.GuestType,
		AgeCategory: filter.AgeCategory,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(guests), total, nil
}

func (r *GuestRepository) CreateGroup(ctx context.Context, group domain.GuestGroup) (domain.GuestGroup, error) {
	created, err := r.dao.InsertGroup(ctx, dao.GuestGroup{
		ID:   group.ID,
		Name: group.Name,
	})
	if err != nil {
		return domain.GuestGroup{}, fmt.Errorf("r.dao.InsertGroup -> %w", err)
	}

	return domain.GuestGroup{
		ID:        created.ID,
		Name:      created.Name,
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}, nil
}

func (r *GuestRepository) FindGroupByID(ctx context.Context, id uint) (domain.GuestGroup, error) {
	group, err := r.dao.FindGroupByID(ctx, id)
	if err != nil {
		return domain.GuestGroup{}, fmt.Errorf("r.dao.FindGroupByID -> %w", err)
	}

	return domain.GuestGroup{
		ID:        group.ID,
		Name:      group.Name,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}, nil
}

func (r *GuestRepository) ListGroups(ctx context.Context) ([]domain.GuestGroup, error) {
	groups, err := r.dao.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListGroups -> %w", err)
	}

	converted := make([]domain.GuestGroup, len(groups))
	for i, g := range groups {
		converted[i] = domain.GuestGroup{
			ID:        g.ID,
			Name:      g.Name,
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		}
	}

	return converted, nil
}
