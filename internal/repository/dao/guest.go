package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrGuestNotFound = errors.New("guest not found")
	ErrGroupNotFound = errors.New("guest group not found")
)

type GuestGroup struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Guest struct {
	ID      uint `gorm:"primaryKey"`
	GroupID uint `gorm:"index;not null"`

	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"index"`
	Phone        string
	AgeCategory  string `gorm:"not null;default:adult"`
	GuestType    string `gorm:"index"`
	DietaryNotes string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// GuestFilter narrows List. Zero values are ignored.
type GuestFilter struct {
	GroupID     uint
	GuestType   string
	AgeCategory string
	Page        int
	PageSize    int
}

type GuestDAO struct {
	db *gorm.DB
}

func NewGuestDAO(db *gorm.DB) *GuestDAO {
	return &GuestDAO{
		db: db,
	}
}

func (d *GuestDAO) Insert(ctx context.Context, guest Guest) (Guest, error) {
	result := d.db.WithContext(ctx).Create(&guest)
	if result.Error != nil {
		return Guest{}, result.Error
	}

	return guest, nil
}

func (d *GuestDAO) InsertBatch(ctx context.Context, guests []Guest) ([]Guest, error) {
	result := d.db.WithContext(ctx).Create(&guests)
	if result.Error != nil {
		return nil, result.Error
	}

	return guests, nil
}

func (d *GuestDAO) FindByID(ctx context.Context, id uint) (Guest, error) {
	var guest Guest

	result := d.db.WithContext(ctx).First(&guest, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Guest{}, ErrGuestNotFound
		}

		return Guest{}, result.Error
	}

	return guest, nil
}

func (d *GuestDAO) Update(ctx context.Context, guest Guest) (Guest, error) {
	result := d.db.WithContext(ctx).Save(&guest)
	if result.Error != nil {
		return Guest{}, result.Error
	}

	return guest, nil
}

// Delete soft-deletes; the row stays behind gorm's DeletedAt scope.
func (d *GuestDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Guest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

func (d *GuestDAO) List(ctx context.Context, filter GuestFilter) ([]Guest, int64, error) {
	query := d.db.WithContext(ctx).Model(&Guest{})

	if filter.GroupID != 0 {
		query = query.Where("group_id = ?", filter.GroupID)
	}
	if filter.GuestType != "" {
		query = query.Where("guest_type = ?", filter.GuestType)
	}
	if filter.AgeCategory != "" {
		query = query.Where("age_category = ?", filter.AgeCategory)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	var guests []Guest
	result := query.
		Order("last_name, first_name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&guests)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return guests, total, nil
}

func (d *GuestDAO) InsertGroup(ctx context.Context, group GuestGroup) (GuestGroup, error) {
	result := d.db.WithContext(ctx).Create(&group)
	if result.Error != nil {
		return GuestGroup{}, result.Error
	}

	return group, nil
}

func (d *GuestDAO) FindGroupByID(ctx context.Context, id uint) (GuestGroup, error) {
	var group GuestGroup

	result := d.db.WithContext(ctx).First(&group, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GuestGroup{}, ErrGroupNotFound
		}

		return GuestGroup{}, result.Error
	}

	return group, nil
}

func (d *GuestDAO) ListGroups(ctx context.Context) ([]GuestGroup, error) {
	var groups []GuestGroup

	result := d.db.WithContext(ctx).Order("name").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	return groups, nil
}
