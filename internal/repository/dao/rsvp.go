package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrRSVPNotFound = errors.New("rsvp not found")
	ErrRSVPExists   = errors.New("rsvp already exists for this guest and event/activity")
)

type RSVP struct {
	ID      uint `gorm:"primaryKey"`
	GuestID uint `gorm:"not null;index;uniqueIndex:uni_rsvps_guest_event;uniqueIndex:uni_rsvps_guest_activity"`

	// Exactly one of EventID and ActivityID is set.
	EventID    *uint `gorm:"index;uniqueIndex:uni_rsvps_guest_event"`
	ActivityID *uint `gorm:"index;uniqueIndex:uni_rsvps_guest_activity"`

	Status       string `gorm:"not null;default:pending"`
	GuestCount   int    `gorm:"not null;default:1"`
	DietaryNotes string
	RespondedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RSVPFilter narrows List. Zero values are ignored.
type RSVPFilter struct {
	GuestID    uint
	EventID    uint
	ActivityID uint
	Status     string
	Page       int
	PageSize   int
}

type RSVPDAO struct {
	db *gorm.DB
}

func NewRSVPDAO(db *gorm.DB) *RSVPDAO {
	return &RSVPDAO{
		db: db,
	}
}

func (d *RSVPDAO) Insert(ctx context.Context, rsvp RSVP) (RSVP, error) {
	result := d.db.WithContext(ctx).Create(&rsvp)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return RSVP{}, ErrRSVPExists
		}

		return RSVP{}, result.Error
	}

	return rsvp, nil
}

func (d *RSVPDAO) FindByID(ctx context.Context, id uint) (RSVP, error) {
	var rsvp RSVP

	result := d.db.WithContext(ctx).First(&rsvp, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return RSVP{}, ErrRSVPNotFound
		}

		return RSVP{}, result.Error
	}

	return rsvp, nil
}

func (d *RSVPDAO) Update(ctx context.Context, rsvp RSVP) (RSVP, error) {
	result := d.db.WithContext(ctx).Save(&rsvp)
	if result.Error != nil {
		return RSVP{}, result.Error
	}

	return rsvp, nil
}

func (d *RSVPDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&RSVP{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRSVPNotFound
	}

	return nil
}

func (d *RSVPDAO) List(ctx context.Context, filter RSVPFilter) ([]RSVP, int64, error) {
	query := d.db.WithContext(ctx).Model(&RSVP{})

	if filter.GuestID != 0 {
		query = query.Where("guest_id = ?", filter.GuestID)
	}
	if filter.EventID != 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.ActivityID != 0 {
		query = query.Where("activity_id = ?", filter.ActivityID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
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

	var rsvps []RSVP
	result := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rsvps)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return rsvps, total, nil
}

// FindAttendingByActivity returns attending RSVPs for the activity,
// excluding excludeID when non-zero. This backs the capacity check.
func (d *RSVPDAO) FindAttendingByActivity(ctx context.Context, activityID, excludeID uint) ([]RSVP, error) {
	query := d.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Where("status = ?", "attending")
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var rsvps []RSVP
	result := query.Find(&rsvps)
	if result.Error != nil {
		return nil, result.Error
	}

	return rsvps, nil
}

func (d *RSVPDAO) FindByGuest(ctx context.Context, guestID uint) ([]RSVP, error) {
	var rsvps []RSVP

	result := d.db.WithContext(ctx).Where("guest_id = ?", guestID).Find(&rsvps)
	if result.Error != nil {
		return nil, result.Error
	}

	return rsvps, nil
}
