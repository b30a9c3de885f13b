package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrVendorNotFound = errors.New("vendor not found")

type Vendor struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Category string `gorm:"index"`
	Contact  string
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type VendorDAO struct {
	db *gorm.DB
}

func NewVendorDAO(db *gorm.DB) *VendorDAO {
	return &VendorDAO{
		db: db,
	}
}

func (d *VendorDAO) Insert(ctx context.Context, vendor Vendor) (Vendor, error) {
	result := d.db.WithContext(ctx).Create(&vendor)
	if result.Error != nil {
		return Vendor{}, result.Error
	}

	return vendor, nil
}

func (d *VendorDAO) FindByID(ctx context.Context, id uint) (Vendor, error) {
	var vendor Vendor

	result := d.db.WithContext(ctx).First(&vendor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Vendor{}, ErrVendorNotFound
		}

		return Vendor{}, result.Error
	}

	return vendor, nil
}

func (d *VendorDAO) Update(ctx context.Context, vendor Vendor) (Vendor, error) {
	result := d.db.WithContext(ctx).Save(&vendor)
	if result.Error != nil {
		return Vendor{}, result.Error
	}

	return vendor, nil
}

func (d *VendorDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Vendor{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorNotFound
	}

	return nil
}

func (d *VendorDAO) List(ctx context.Context, category string) ([]Vendor, error) {
	query := d.db.WithContext(ctx).Model(&Vendor{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var vendors []Vendor
	result := query.Order("name").Find(&vendors)
	if result.Error != nil {
		return nil, result.Error
	}

	return vendors, nil
}
