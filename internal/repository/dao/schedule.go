package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrActivityNotFound = errors.New("activity not found")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name         string `gorm:"not null"`
	Description  string
	StartTime    time.Time `gorm:"not null;index"`
	EndTime      time.Time `gorm:"not null"`
	LocationID   *uint     `gorm:"index"`
	RSVPDeadline *time.Time
	Status       string   `gorm:"not null;default:draft"`
	Visibility   []string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Activity struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string
	StartTime   time.Time `gorm:"not null;index"`
	EndTime     time.Time `gorm:"not null"`
	LocationID  *uint     `gorm:"index"`
	Capacity    *int      // nil = unlimited
	Status      string    `gorm:"not null;default:draft"`
	Visibility  []string  `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type ScheduleDAO struct {
	db *gorm.DB
}

func NewScheduleDAO(db *gorm.DB) *ScheduleDAO {
	return &ScheduleDAO{
		db: db,
	}
}

func (d *ScheduleDAO) InsertEvent(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *ScheduleDAO) FindEventByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *ScheduleDAO) UpdateEvent(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Save(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *ScheduleDAO) DeleteEvent(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *ScheduleDAO) ListEvents(ctx context.Context, status string) ([]Event, error) {
	query := d.db.WithContext(ctx).Model(&Event{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var events []Event
	result := query.Order("start_time").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *ScheduleDAO) InsertActivity(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ScheduleDAO) FindActivityByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ScheduleDAO) UpdateActivity(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Save(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ScheduleDAO) DeleteActivity(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

func (d *ScheduleDAO) ListActivities(ctx context.Context, status string) ([]Activity, error) {
	query := d.db.WithContext(ctx).Model(&Activity{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var activities []Activity
	result := query.Order("start_time").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

// ListActivitiesWithCapacity returns published activities that declare a
// capacity limit.
func (d *ScheduleDAO) ListActivitiesWithCapacity(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).
		Where("capacity IS NOT NULL").
		Where("status = ?", "published").
		Order("start_time").
		Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}
