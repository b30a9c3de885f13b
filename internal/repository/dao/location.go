package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("location not found")

type Location struct {
	ID uint `gorm:"primaryKey"`

	Name             string `gorm:"not null"`
	Address          string
	ParentLocationID *uint `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LocationParent is the projection used by cycle detection.
type LocationParent struct {
	ID               uint
	ParentLocationID *uint
}

type LocationDAO struct {
	db *gorm.DB
}

func NewLocationDAO(db *gorm.DB) *LocationDAO {
	return &LocationDAO{
		db: db,
	}
}

func (d *LocationDAO) Insert(ctx context.Context, location Location) (Location, error) {
	result := d.db.WithContext(ctx).Create(&location)
	if result.Error != nil {
		return Location{}, result.Error
	}

	return location, nil
}

func (d *LocationDAO) FindByID(ctx context.Context, id uint) (Location, error) {
	var location Location

	result := d.db.WithContext(ctx).First(&location, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Location{}, ErrLocationNotFound
		}

		return Location{}, result.Error
	}

	return location, nil
}

func (d *LocationDAO) Update(ctx context.Context, location Location) (Location, error) {
	result := d.db.WithContext(ctx).Save(&location)
	if result.Error != nil {
		return Location{}, result.Error
	}

	return location, nil
}

// Delete removes the location and reparents its children to the root
// (parent set to NULL), in one transaction.
func (d *LocationDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Location{}).
			Where("parent_location_id = ?", id).
			Update("parent_location_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&Location{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLocationNotFound
		}

		return nil
	})
}

func (d *LocationDAO) ListAll(ctx context.Context) ([]Location, error) {
	var locations []Location

	result := d.db.WithContext(ctx).Order("name").Find(&locations)
	if result.Error != nil {
		return nil, result.Error
	}

	return locations, nil
}

// ListParents loads the full {id, parent} set for cycle detection. The table
// is small (venues, cities, regions), so reading it whole is fine.
func (d *LocationDAO) ListParents(ctx context.Context) ([]LocationParent, error) {
	var pairs []LocationParent

	result := d.db.WithContext(ctx).Model(&Location{}).
		Select("id", "parent_location_id").
		Find(&pairs)
	if result.Error != nil {
		return nil, result.Error
	}

	return pairs, nil
}
