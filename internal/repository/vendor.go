package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

var ErrVendorNotFound = dao.ErrVendorNotFound

type VendorDAO interface {
	Insert(ctx context.Context, vendor dao.Vendor) (dao.Vendor, error)
	FindByID(ctx context.Context, id uint) (dao.Vendor, error)
	Update(ctx context.Context, vendor dao.Vendor) (dao.Vendor, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, category string) ([]dao.Vendor, error)
}

type VendorRepository struct {
	dao VendorDAO
}

func NewVendorRepository(dao VendorDAO) *VendorRepository {
	return &VendorRepository{
		dao: dao,
	}
}

func (r *VendorRepository) daoToDomain(v dao.Vendor) domain.Vendor {
	return domain.Vendor{
		ID:        v.ID,
		Name:      v.Name,
		Category:  v.Category,
		Contact:   v.Contact,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func (r *VendorRepository) Create(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error) {
	created, err := r.dao.Insert(ctx, dao.Vendor{
		ID:       vendor.ID,
		Name:     vendor.Name,
		Category: vendor.Category,
		Contact:  vendor.Contact,
		Notes:    vendor.Notes,
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uint) (domain.Vendor, error) {
	vendor, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(vendor), nil
}

func (r *VendorRepository) Update(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error) {
	updated, err := r.dao.Update(ctx, dao.Vendor{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Category:  vendor.Category,
		Contact:   vendor.Contact,
		Notes:     vendor.Notes,
		CreatedAt: vendor.CreatedAt,
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *VendorRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *VendorRepository) List(ctx context.Context, category string) ([]domain.Vendor, error) {
	vendors, err := r.dao.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	converted := make([]domain.Vendor, len(vendors))
	for i, v := range vendors {
		converted[i] = r.daoToDomain(v)
	}

	return converted, nil
}
