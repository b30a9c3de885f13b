package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var (
	ErrGuestNotFound = repository.ErrGuestNotFound
	ErrGroupNotFound = repository.ErrGroupNotFound
)

type GuestRepository interface {
	Create(ctx context.Context, guest domain.Guest) (domain.Guest, error)
	CreateBatch(ctx context.Context, guests []domain.Guest) ([]domain.Guest, error)
	FindByID(ctx context.Context, id uint) (domain.Guest, error)
	Update(ctx context.Context, guest domain.Guest) (domain.Guest, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter repository.GuestFilter) ([]domain.Guest, int64, error)
	CreateGroup(ctx context.Context, group domain.GuestGroup) (domain.GuestGroup, error)
	FindGroupByID(ctx context.Context, id uint) (domain.GuestGroup, error)
	ListGroups(ctx context.Context) ([]domain.GuestGroup, error)
}

type GuestService struct {
	repo GuestRepository
}

func NewGuestService(repo GuestRepository) *GuestService {
	return &GuestService{
		repo: repo,
	}
}

func (s *GuestService) CreateGuest(ctx context.Context, guest domain.Guest) (domain.Guest, error) {
	if guest.GroupID != 0 {
		if _, err := s.repo.FindGroupByID(ctx, guest.GroupID); err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				return domain.Guest{}, ErrGroupNotFound
			}

			return domain.Guest{}, fmt.Errorf("s.repo.FindGroupByID -> %w", err)
		}
	}

	if guest.AgeCategory == "" {
		guest.AgeCategory = domain.AgeCategoryAdult
	}

	created, err := s.repo.Create(ctx, guest)
	if err != nil {
		return domain.Guest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ImportGuests batch-creates guests, typically from a spreadsheet upload.
// Every referenced group is checked first so a bad row rejects the whole
// batch instead of importing half of it.
func (s *GuestService) ImportGuests(ctx context.Context, guests []domain.Guest) ([]domain.Guest, error) {
	if len(guests) == 0 {
		return []domain.Guest{}, nil
	}

	checked := map[uint]bool{}
	for i, guest := range guests {
		if guest.GroupID != 0 && !checked[guest.GroupID] {
			if _, err := s.repo.FindGroupByID(ctx, guest.GroupID); err != nil {
				if errors.Is(err, repository.ErrGroupNotFound) {
					return nil, ErrGroupNotFound
				}

				return nil, fmt.Errorf("s.repo.FindGroupByID -> %w", err)
			}
			checked[guest.GroupID] = true
		}

		if guest.AgeCategory == "" {
			guests[i].AgeCategory = domain.AgeCategoryAdult
		}
	}

	created, err := s.repo.CreateBatch(ctx, guests)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CreateBatch -> %w", err)
	}

	return created, nil
}

func (s *GuestService) GetGuest(ctx context.Context, id uint) (domain.Guest, error) {
	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Guest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return guest, nil
}

func (s *GuestService) UpdateGuest(ctx context.Context, guest domain.Guest) (domain.Guest, error) {
	existing, err := s.repo.FindByID(ctx, guest.ID)
	if err != nil {
		return domain.Guest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	guest.CreatedAt = existing.CreatedAt
	updated, err := s.repo.Update(ctx, guest)
	if err != nil {
		return domain.Guest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GuestService) DeleteGuest(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *GuestService) ListGuests(ctx context.Context, filter repository.GuestFilter) ([]domain.Guest, int64, error) {
	guests, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return guests, total, nil
}

func (s *GuestService) CreateGroup(ctx context.Context, group domain.GuestGroup) (domain.GuestGroup, error) {
	created, err := s.repo.CreateGroup(ctx, group)
	if err != nil {
		return domain.GuestGroup{}, fmt.Errorf("s.repo.CreateGroup -> %w", err)
	}

	return created, nil
}

func (s *GuestService) GetGroup(ctx context.Context, id uint) (domain.GuestGroup, error) {
	group, err := s.repo.FindGroupByID(ctx, id)
	if err != nil {
		return domain.GuestGroup{}, fmt.Errorf("s.repo.FindGroupByID -> %w", err)
	}

	return group, nil
}

func (s *GuestService) ListGroups(ctx context.Context) ([]domain.GuestGroup, error) {
	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListGroups -> %w", err)
	}

	return groups, nil
}
