package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

type NotificationDAO interface {
	Insert(ctx context.Context, log dao.NotificationLog) (dao.NotificationLog, error)
	List(ctx context.Context, channel string, limit int) ([]dao.NotificationLog, error)
}

type NotificationRepository struct {
	dao NotificationDAO
}

func NewNotificationRepository(dao NotificationDAO) *NotificationRepository {
	return &NotificationRepository{
		dao: dao,
	}
}

func (r *NotificationRepository) daoToDomain(l dao.NotificationLog) domain.NotificationLog {
	return domain.NotificationLog{
		ID:        l.ID,
		GuestID:   l.GuestID,
		Recipient: l.Recipient,
		Channel:   l.Channel,
		Subject:   l.Subject,
		Status:    l.Status,
		Error:     l.Error,
		CreatedAt: l.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, log domain.NotificationLog) (domain.NotificationLog, error) {
	created, err := r.dao.Insert(ctx, dao.NotificationLog{
		ID:        log.ID,
		GuestID:   log.GuestID,
		Recipient: log.Recipient,
		Channel:   log.Channel,
		Subject:   log.Subject,
		Status:    log.Status,
		Error:     log.Error,
	})
	if err != nil {
		return domain.NotificationLog{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *NotificationRepository) List(ctx context.Context, channel string, limit int) ([]domain.NotificationLog, error) {
	logs, err := r.dao.List(ctx, channel, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	converted := make([]domain.NotificationLog, len(logs))
	for i, l := range logs {
		converted[i] = r.daoToDomain(l)
	}

	return converted, nil
}
