package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

var ErrPhotoNotFound = dao.ErrPhotoNotFound

type PhotoDAO interface {
	Insert(ctx context.Context, photo dao.Photo) (dao.Photo, error)
	FindByID(ctx context.Context, id uint) (dao.Photo, error)
	Update(ctx context.Context, photo dao.Photo) (dao.Photo, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status string, limit int) ([]dao.Photo, error)
}

type PhotoRepository struct {
	dao PhotoDAO
}

func NewPhotoRepository(dao PhotoDAO) *PhotoRepository {
	return &PhotoRepository{
		dao: dao,
	}
}

func (r *PhotoRepository) daoToDomain(p dao.Photo) domain.Photo {
	return domain.Photo{
		ID:          p.ID,
		GuestID:     p.GuestID,
		StorageKey:  p.StorageKey,
		ContentType: p.ContentType,
		SizeBytes:   p.SizeBytes,
		Caption:     p.Caption,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *PhotoRepository) Create(ctx context.Context, photo domain.Photo) (domain.Photo, error) {
	created, err := r.dao.Insert(ctx, dao.Photo{
		ID:          photo.ID,
		GuestID:     photo.GuestID,
		StorageKey:  photo.StorageKey,
		ContentType: photo.ContentType,
		SizeBytes:   photo.SizeBytes,
		Caption:     photo.Caption,
		Status:      photo.Status,
	})
	if err != nil {
		return domain.Photo{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PhotoRepository) FindByID(ctx context.Context, id uint) (domain.Photo, error) {
	photo, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(photo), nil
}

func (r *PhotoRepository) Update(ctx context.Context, photo domain.Photo) (domain.Photo, error) {
	updated, err := r.dao.Update(ctx, dao.Photo{
		ID:          photo.ID,
		GuestID:     photo.GuestID,
		StorageKey:  photo.StorageKey,
		ContentType: photo.ContentType,
		SizeBytes:   photo.SizeBytes,
		Caption:     photo.Caption,
		Status:      photo.Status,
		CreatedAt:   photo.CreatedAt,
	})
	if err != nil {
		return domain.Photo{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *PhotoRepository) List(ctx context.Context, status string, limit int) ([]domain.Photo, error) {
	photos, err := r.dao.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	converted := make([]domain.Photo, len(photos))
	for i, p := range photos {
		converted[i] = r.daoToDomain(p)
	}

	return converted, nil
}
