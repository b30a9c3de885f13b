package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

var ErrLocationNotFound = dao.ErrLocationNotFound

// LocationParent is the {id, parent} projection cycle detection walks.
type LocationParent struct {
	ID               uint
	ParentLocationID *uint
}

type LocationDAO interface {
	Insert(ctx context.Context, location dao.Location) (dao.Location, error)
	FindByID(ctx context.Context, id uint) (dao.Location, error)
	Update(ctx context.Context, location dao.Location) (dao.Location, error)
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]dao.Location, error)
	ListParents(ctx context.Context) ([]dao.LocationParent, error)
}

type LocationRepository struct {
	dao LocationDAO
}

func NewLocationRepository(dao LocationDAO) *LocationRepository {
	return &LocationRepository{
		dao: dao,
	}
}

func (r *LocationRepository) domainToDao(l domain.Location) dao.Location {
	return dao.Location{
		ID:               l.ID,
		Name:             l.Name,
		Address:          l.Address,
		ParentLocationID: l.ParentLocationID,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (r *LocationRepository) daoToDomain(l dao.Location) domain.Location {
	return domain.Location{
		ID:               l.ID,
		Name:             l.Name,
		Address:          l.Address,
		ParentLocationID: l.ParentLocationID,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (r *LocationRepository) Create(ctx context.Context, location domain.Location) (domain.Location, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(location))
	if err != nil {
		return domain.Location{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id uint) (domain.Location, error) {
	location, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(location), nil
}

func (r *LocationRepository) Update(ctx context.Context, location domain.Location) (domain.Location, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(location))
	if err != nil {
		return domain.Location{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *LocationRepository) ListAll(ctx context.Context) ([]domain.Location, error) {
	locations, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	converted := make([]domain.Location, len(locations))
	for i, l := range locations {
		converted[i] = r.daoToDomain(l)
	}

	return converted, nil
}

func (r *LocationRepository) ListParents(ctx context.Context) ([]LocationParent, error) {
	pairs, err := r.dao.ListParents(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListParents -> %w", err)
	}

	converted := make([]LocationParent, len(pairs))
	for i, p := range pairs {
		converted[i] = LocationParent{
			ID:               p.ID,
			ParentLocationID: p.ParentLocationID,
		}
	}

	return converted, nil
}
