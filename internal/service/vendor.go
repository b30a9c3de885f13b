package service

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var ErrVendorNotFound = repository.ErrVendorNotFound

type VendorRepository interface {
	Create(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error)
	FindByID(ctx context.Context, id uint) (domain.Vendor, error)
	Update(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, category string) ([]domain.Vendor, error)
}

type VendorService struct {
	repo VendorRepository
}

func NewVendorService(repo VendorRepository) *VendorService {
	return &VendorService{
		repo: repo,
	}
}

func (s *VendorService) CreateVendor(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error) {
	created, err := s.repo.Create(ctx, vendor)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *VendorService) GetVendor(ctx context.Context, id uint) (domain.Vendor, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return vendor, nil
}

func (s *VendorService) UpdateVendor(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error) {
	existing, err := s.repo.FindByID(ctx, vendor.ID)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	vendor.CreatedAt = existing.CreatedAt
	updated, err := s.repo.Update(ctx, vendor)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *VendorService) DeleteVendor(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *VendorService) ListVendors(ctx context.Context, category string) ([]domain.Vendor, error) {
	vendors, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return vendors, nil
}
