package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

var (
	ErrAccommodationNotFound  = dao.ErrAccommodationNotFound
	ErrRoomTypeNotFound       = dao.ErrRoomTypeNotFound
	ErrRoomAssignmentNotFound = dao.ErrRoomAssignmentNotFound
)

type AccommodationDAO interface {
	Insert(ctx context.Context, accommodation dao.Accommodation) (dao.Accommodation, error)
	FindByID(ctx context.Context, id uint) (dao.Accommodation, error)
	Update(ctx context.Context, accommodation dao.Accommodation) (dao.Accommodation, error)
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]dao.Accommodation, error)
	InsertRoomType(ctx context.Context, roomType dao.RoomType) (dao.RoomType, error)
	FindRoomTypeByID(ctx context.Context, id uint) (dao.RoomType, error)
	UpdateRoomType(ctx context.Context, roomType dao.RoomType) (dao.RoomType, error)
	DeleteRoomType(ctx context.Context, id uint) error
	ListRoomTypes(ctx context.Context, accommodationID uint) ([]dao.RoomType, error)
	InsertRoomAssignment(ctx context.Context, assignment dao.RoomAssignment) (dao.RoomAssignment, error)
	DeleteRoomAssignment(ctx context.Context, id uint) error
	ListGuestRoomAssignments(ctx context.Context, guestID uint) ([]dao.RoomAssignment, error)
}

type AccommodationRepository struct {
	dao AccommodationDAO
}

func NewAccommodationRepository(dao AccommodationDAO) *AccommodationRepository {
	return &AccommodationRepository{
		dao: dao,
	}
}

func (r *AccommodationRepository) daoToDomain(a dao.Accommodation) domain.Accommodation {
	return domain.Accommodation{
		ID:          a.ID,
		Name:        a.Name,
		LocationID:  a.LocationID,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *AccommodationRepository) roomTypeDaoToDomain(rt dao.RoomType) domain.RoomType {
	return domain.RoomType{
		ID:              rt.ID,
		AccommodationID: rt.AccommodationID,
		Name:            rt.Name,
		Capacity:        rt.Capacity,
		NightlyCost:     rt.NightlyCost,
		CreatedAt:       rt.CreatedAt,
		UpdatedAt:       rt.UpdatedAt,
	}
}

func (r *AccommodationRepository) assignmentDaoToDomain(a dao.RoomAssignment) domain.RoomAssignment {
	return domain.RoomAssignment{
		ID:         a.ID,
		GuestID:    a.GuestID,
		RoomTypeID: a.RoomTypeID,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (r *AccommodationRepository) Create(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error) {
	created, err := r.dao.Insert(ctx, dao.Accommodation{
		ID:          accommodation.ID,
		Name:        accommodation.Name,
		LocationID:  accommodation.LocationID,
		Description: accommodation.Description,
	})
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AccommodationRepository) FindByID(ctx context.Context, id uint) (domain.Accommodation, error) {
	accommodation, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(accommodation), nil
}

func (r *AccommodationRepository) Update(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error) {
	updated, err := r.dao.Update(ctx, dao.Accommodation{
		ID:          accommodation.ID,
		Name:        accommodation.Name,
		LocationID:  accommodation.LocationID,
		Description: accommodation.Description,
		CreatedAt:   accommodation.CreatedAt,
	})
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *AccommodationRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *AccommodationRepository) ListAll(ctx context.Context) ([]domain.Accommodation, error) {
	accommodations, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	converted := make([]domain.Accommodation, len(accommodations))
	for i, a := range accommodations {
		converted[i] = r.daoToDomain(a)
	}

	return converted, nil
}

func (r *AccommodationRepository) CreateRoomType(ctx context.Context, roomType domain.RoomType) (domain.RoomType, error) {
	created, err := r.dao.InsertRoomType(ctx, dao.RoomType{
		ID:              roomType.ID,
		AccommodationID: roomType.AccommodationID,
		Name:            roomType.Name,
		Capacity:        roomType.Capacity,
		NightlyCost:     roomType.NightlyCost,
	})
	if err != nil {
		return domain.RoomType{}, fmt.Errorf("r.dao.InsertRoomType -> %w", err)
	}

	return r.roomTypeDaoToDomain(created), nil
}

func (r *AccommodationRepository) FindRoomTypeByID(ctx context.Context, id uint) (domain.RoomType, error) {
	roomType, err := r.dao.FindRoomTypeByID(ctx, id)
	if err != nil {
		return domain.RoomType{}, fmt.Errorf("r.dao.FindRoomTypeByID -> %w", err)
	}

	return r.roomTypeDaoToDomain(roomType), nil
}

func (r *AccommodationRepository) UpdateRoomType(ctx context.Context, roomType domain.RoomType) (domain.RoomType, error) {
	updated, err := r.dao.UpdateRoomType(ctx, dao.RoomType{
		ID:              roomType.ID,
		AccommodationID: roomType.AccommodationID,
		Name:            roomType.Name,
		Capacity:        roomType.Capacity,
		NightlyCost:     roomType.NightlyCost,
		CreatedAt:       roomType.CreatedAt,
	})
	if err != nil {
		return domain.RoomType{}, fmt.Errorf("r.dao.UpdateRoomType -> %w", err)
	}

	return r.roomTypeDaoToDomain(updated), nil
}

func (r *AccommodationRepository) DeleteRoomType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteRoomType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteRoomType -> %w", err)
	}

	return nil
}

func (r *AccommodationRepository) ListRoomTypes(ctx context.Context, accommodationID uint) ([]domain.RoomType, error) {
	roomTypes, err := r.dao.ListRoomTypes(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListRoomTypes -> %w", err)
	}

	converted := make([]domain.RoomType, len(roomTypes))
	for i, rt := range roomTypes {
		converted[i] = r.roomTypeDaoToDomain(rt)
	}

	return converted, nil
}

func (r *AccommodationRepository) CreateRoomAssignment(ctx context.Context, assignment domain.RoomAssignment) (domain.RoomAssignment, error) {
	created, err := r.dao.InsertRoomAssignment(ctx, dao.RoomAssignment{
		ID:         assignment.ID,
		GuestID:    assignment.GuestID,
		RoomTypeID: assignment.RoomTypeID,
		CheckIn:    assignment.CheckIn,
		CheckOut:   assignment.CheckOut,
	})
	if err != nil {
		return domain.RoomAssignment{}, fmt.Errorf("r.dao.InsertRoomAssignment -> %w", err)
	}

	return r.assignmentDaoToDomain(created), nil
}

func (r *AccommodationRepository) DeleteRoomAssignment(ctx context.Context, id uint) error {
	return r.dao.DeleteRoomAssignment(ctx, id)
}

func (r *AccommodationRepository) ListGuestRoomAssignments(ctx context.Context, guestID uint) ([]domain.RoomAssignment, error) {
	assignments, err := r.dao.ListGuestRoomAssignments(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListGuestRoomAssignments -> %w", err)
	}

	converted := make([]domain.RoomAssignment, len(assignments))
	for i, a := range assignments {
		converted[i] = r.assignmentDaoToDomain(a)
	}

	return converted, nil
}
