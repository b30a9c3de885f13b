package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type NotificationLog struct {
	ID      uint  `gorm:"primaryKey"`
	GuestID *uint `gorm:"index"`

	Recipient string `gorm:"not null"`
	Channel   string `gorm:"not null"` // "email" or "sms"
	Subject   string
	Status    string `gorm:"not null"`
	Error     string

	CreatedAt time.Time
}

type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		db: db,
	}
}

func (d *NotificationDAO) Insert(ctx context.Context, log NotificationLog) (NotificationLog, error) {
	result := d.db.WithContext(ctx).Create(&log)
	if result.Error != nil {
		return NotificationLog{}, result.Error
	}

	return log, nil
}

func (d *NotificationDAO) List(ctx context.Context, channel string, limit int) ([]NotificationLog, error) {
	query := d.db.WithContext(ctx).Model(&NotificationLog{})
	if channel != "" {
		query = query.Where("channel = ?", channel)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logs []NotificationLog
	result := query.Order("created_at DESC").Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}
