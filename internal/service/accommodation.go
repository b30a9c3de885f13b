package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var (
	ErrAccommodationNotFound  = repository.ErrAccommodationNotFound
	ErrRoomTypeNotFound       = repository.ErrRoomTypeNotFound
	ErrRoomAssignmentNotFound = repository.ErrRoomAssignmentNotFound
	ErrInvalidStayRange       = errors.New("check-out must be after check-in")
)

type AccommodationRepository interface {
	Create(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error)
	FindByID(ctx context.Context, id uint) (domain.Accommodation, error)
	Update(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error)
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]domain.Accommodation, error)
	CreateRoomType(ctx context.Context, roomType domain.RoomType) (domain.RoomType, error)
	FindRoomTypeByID(ctx context.Context, id uint) (domain.RoomType, error)
	UpdateRoomType(ctx context.Context, roomType domain.RoomType) (domain.RoomType, error)
	DeleteRoomType(ctx context.Context, id uint) error
	ListRoomTypes(ctx context.Context, accommodationID uint) ([]domain.RoomType, error)
	CreateRoomAssignment(ctx context.Context, assignment domain.RoomAssignment) (domain.RoomAssignment, error)
	DeleteRoomAssignment(ctx context.Context, id uint) error
	ListGuestRoomAssignments(ctx context.Context, guestID uint) ([]domain.RoomAssignment, error)
}

type AccommodationService struct {
	repo      AccommodationRepository
	guestRepo GuestRepository
}

func NewAccommodationService(repo AccommodationRepository, guestRepo GuestRepository) *AccommodationService {
	return &AccommodationService{
		repo:      repo,
		guestRepo: guestRepo,
	}
}

func (s *AccommodationService) CreateAccommodation(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error) {
	created, err := s.repo.Create(ctx, accommodation)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AccommodationService) GetAccommodation(ctx context.Context, id uint) (domain.Accommodation, error) {
	accommodation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return accommodation, nil
}

func (s *AccommodationService) UpdateAccommodation(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error) {
	existing, err := s.repo.FindByID(ctx, accommodation.ID)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	accommodation.CreatedAt = existing.CreatedAt
	updated, err := s.repo.Update(ctx, accommodation)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AccommodationService) DeleteAccommodation(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *AccommodationService) ListAccommodations(ctx context.Context) ([]domain.Accommodation, error) {
	accommodations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return accommodations, nil
}

func (s *AccommodationService) CreateRoomType(ctx context.Context, roomType domain.RoomType) (domain.RoomType, error) {
	if _, err := s.repo.FindByID(ctx, roomType.AccommodationID); err != nil {
		if errors.Is(err, repository.ErrAccommodationNotFound) {
			return domain.RoomType{}, ErrAccommodationNotFound
		}

		return domain.RoomType{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	created, err := s.repo.CreateRoomType(ctx, roomType)
	if err != nil {
		return domain.RoomType{}, fmt.Errorf("s.repo.CreateRoomType -> %w", err)
	}

	return created, nil
}

func (s *AccommodationService) UpdateRoomType(ctx context.Context, roomType domain.RoomType) (domain.RoomType, error) {
	existing, err := s.repo.FindRoomTypeByID(ctx, roomType.ID)
	if err != nil {
		return domain.RoomType{}, fmt.Errorf("s.repo.FindRoomTypeByID -> %w", err)
	}

	roomType.AccommodationID = existing.AccommodationID
	roomType.CreatedAt = existing.CreatedAt
	updated, err := s.repo.UpdateRoomType(ctx, roomType)
	if err != nil {
		return domain.RoomType{}, fmt.Errorf("s.repo.UpdateRoomType -> %w", err)
	}

	return updated, nil
}

func (s *AccommodationService) DeleteRoomType(ctx context.Context, id uint) error {
	return s.repo.DeleteRoomType(ctx, id)
}

func (s *AccommodationService) ListRoomTypes(ctx context.Context, accommodationID uint) ([]domain.RoomType, error) {
	roomTypes, err := s.repo.ListRoomTypes(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListRoomTypes -> %w", err)
	}

	return roomTypes, nil
}

// AssignRoom books a guest into a room type for a stay window.
func (s *AccommodationService) AssignRoom(ctx context.Context, assignment domain.RoomAssignment) (domain.RoomAssignment, error) {
	if !assignment.CheckOut.After(assignment.CheckIn) {
		return domain.RoomAssignment{}, ErrInvalidStayRange
	}

	if _, err := s.guestRepo.FindByID(ctx, assignment.GuestID); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return domain.RoomAssignment{}, ErrGuestNotFound
		}

		return domain.RoomAssignment{}, fmt.Errorf("s.guestRepo.FindByID -> %w", err)
	}

	if _, err := s.repo.FindRoomTypeByID(ctx, assignment.RoomTypeID); err != nil {
		if errors.Is(err, repository.ErrRoomTypeNotFound) {
			return domain.RoomAssignment{}, ErrRoomTypeNotFound
		}

		return domain.RoomAssignment{}, fmt.Errorf("s.repo.FindRoomTypeByID -> %w", err)
	}

	created, err := s.repo.CreateRoomAssignment(ctx, assignment)
	if err != nil {
		return domain.RoomAssignment{}, fmt.Errorf("s.repo.CreateRoomAssignment -> %w", err)
	}

	return created, nil
}

func (s *AccommodationService) UnassignRoom(ctx context.Context, id uint) error {
	return s.repo.DeleteRoomAssignment(ctx, id)
}

func (s *AccommodationService) ListGuestStays(ctx context.Context, guestID uint) ([]domain.RoomAssignment, error) {
	assignments, err := s.repo.ListGuestRoomAssignments(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListGuestRoomAssignments -> %w", err)
	}

	return assignments, nil
}

// EstimateStayCost prices a stay from the room type's nightly rate, in cents.
func (s *AccommodationService) EstimateStayCost(ctx context.Context, assignment domain.RoomAssignment) (int, error) {
	roomType, err := s.repo.FindRoomTypeByID(ctx, assignment.RoomTypeID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindRoomTypeByID -> %w", err)
	}

	return assignment.Nights() * roomType.NightlyCost, nil
}
