package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrAccommodationNotFound  = errors.New("accommodation not found")
	ErrRoomTypeNotFound       = errors.New("room type not found")
	ErrRoomAssignmentNotFound = errors.New("room assignment not found")
)

type Accommodation struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	LocationID  *uint  `gorm:"index"`
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type RoomType struct {
	ID              uint `gorm:"primaryKey"`
	AccommodationID uint `gorm:"not null;index"`

	Name        string `gorm:"not null"`
	Capacity    int    `gorm:"not null"`
	NightlyCost int    `gorm:"not null"` // cents

	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoomAssignment struct {
	ID         uint `gorm:"primaryKey"`
	GuestID    uint `gorm:"not null;index"`
	RoomTypeID uint `gorm:"not null;index"`

	CheckIn  time.Time `gorm:"not null"`
	CheckOut time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type AccommodationDAO struct {
	db *gorm.DB
}

func NewAccommodationDAO(db *gorm.DB) *AccommodationDAO {
	return &AccommodationDAO{
		db: db,
	}
}

func (d *AccommodationDAO) Insert(ctx context.Context, accommodation Accommodation) (Accommodation, error) {
	result := d.db.WithContext(ctx).Create(&accommodation)
	if result.Error != nil {
		return Accommodation{}, result.Error
	}

	return accommodation, nil
}

func (d *AccommodationDAO) FindByID(ctx context.Context, id uint) (Accommodation, error) {
	var accommodation Accommodation

	result := d.db.WithContext(ctx).First(&accommodation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Accommodation{}, ErrAccommodationNotFound
		}

		return Accommodation{}, result.Error
	}

	return accommodation, nil
}

func (d *AccommodationDAO) Update(ctx context.Context, accommodation Accommodation) (Accommodation, error) {
	result := d.db.WithContext(ctx).Save(&accommodation)
	if result.Error != nil {
		return Accommodation{}, result.Error
	}

	return accommodation, nil
}

func (d *AccommodationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Accommodation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccommodationNotFound
	}

	return nil
}

func (d *AccommodationDAO) ListAll(ctx context.Context) ([]Accommodation, error) {
	var accommodations []Accommodation

	result := d.db.WithContext(ctx).Order("name").Find(&accommodations)
	if result.Error != nil {
		return nil, result.Error
	}

	return accommodations, nil
}

func (d *AccommodationDAO) InsertRoomType(ctx context.Context, roomType RoomType) (RoomType, error) {
	result := d.db.WithContext(ctx).Create(&roomType)
	if result.Error != nil {
		return RoomType{}, result.Error
	}

	return roomType, nil
}

func (d *AccommodationDAO) FindRoomTypeByID(ctx context.Context, id uint) (RoomType, error) {
	var roomType RoomType

	result := d.db.WithContext(ctx).First(&roomType, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return RoomType{}, ErrRoomTypeNotFound
		}

		return RoomType{}, result.Error
	}

	return roomType, nil
}

func (d *AccommodationDAO) UpdateRoomType(ctx context.Context, roomType RoomType) (RoomType, error) {
	result := d.db.WithContext(ctx).Save(&roomType)
	if result.Error != nil {
		return RoomType{}, result.Error
	}

	return roomType, nil
}

func (d *AccommodationDAO) DeleteRoomType(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&RoomType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}

	return nil
}

func (d *AccommodationDAO) ListRoomTypes(ctx context.Context, accommodationID uint) ([]RoomType, error) {
	var roomTypes []RoomType

	result := d.db.WithContext(ctx).
		Where("accommodation_id = ?", accommodationID).
		Order("name").
		Find(&roomTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return roomTypes, nil
}

func (d *AccommodationDAO) InsertRoomAssignment(ctx context.Context, assignment RoomAssignment) (RoomAssignment, error) {
	result := d.db.WithContext(ctx).Create(&assignment)
	if result.Error != nil {
		return RoomAssignment{}, result.Error
	}

	return assignment, nil
}

func (d *AccommodationDAO) DeleteRoomAssignment(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&RoomAssignment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomAssignmentNotFound
	}

	return nil
}

func (d *AccommodationDAO) ListGuestRoomAssignments(ctx context.Context, guestID uint) ([]RoomAssignment, error) {
	var assignments []RoomAssignment

	result := d.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("check_in").
		Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	return assignments, nil
}
