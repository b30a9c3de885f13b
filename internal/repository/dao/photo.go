package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrPhotoNotFound = errors.New("photo not found")

type Photo struct {
	ID      uint  `gorm:"primaryKey"`
	GuestID *uint `gorm:"index"` // nil for admin uploads

	StorageKey  string `gorm:"unique;not null"`
	ContentType string `gorm:"not null"`
	SizeBytes   int64  `gorm:"not null;default:0"`
	Caption     string
	Status      string `gorm:"not null;default:pending;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PhotoDAO struct {
	db *gorm.DB
}

func NewPhotoDAO(db *gorm.DB) *PhotoDAO {
	return &PhotoDAO{
		db: db,
	}
}

func (d *PhotoDAO) Insert(ctx context.Context, photo Photo) (Photo, error) {
	result := d.db.WithContext(ctx).Create(&photo)
	if result.Error != nil {
		return Photo{}, result.Error
	}

	return photo, nil
}

func (d *PhotoDAO) FindByID(ctx context.Context, id uint) (Photo, error) {
	var photo Photo

	result := d.db.WithContext(ctx).First(&photo, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Photo{}, ErrPhotoNotFound
		}

		return Photo{}, result.Error
	}

	return photo, nil
}

func (d *PhotoDAO) Update(ctx context.Context, photo Photo) (Photo, error) {
	result := d.db.WithContext(ctx).Save(&photo)
	if result.Error != nil {
		return Photo{}, result.Error
	}

	return photo, nil
}

func (d *PhotoDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Photo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

func (d *PhotoDAO) List(ctx context.Context, status string, limit int) ([]Photo, error) {
	query := d.db.WithContext(ctx).Model(&Photo{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var photos []Photo
	result := query.Order("created_at DESC").Find(&photos)
	if result.Error != nil {
		return nil, result.Error
	}

	return photos, nil
}
