package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/notifier"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var ErrGuestUnreachable = errors.New("guest has no email address or phone number")

type NotificationRepository interface {
	Create(ctx context.Context, log domain.NotificationLog) (domain.NotificationLog, error)
	List(ctx context.Context, channel string, limit int) ([]domain.NotificationLog, error)
}

type NotificationService struct {
	repo      NotificationRepository
	guestRepo GuestRepository
	sender    notifier.Sender
}

func NewNotificationService(repo NotificationRepository, guestRepo GuestRepository, sender notifier.Sender) *NotificationService {
	return &NotificationService{
		repo:      repo,
		guestRepo: guestRepo,
		sender:    sender,
	}
}

// EmailGuest sends one message and records the outcome. Guests without an
// email address fall back to SMS when a phone number is on file. Delivery
// failures are logged as failed rather than returned, so a broken address
// never aborts a bulk send.
func (s *NotificationService) EmailGuest(ctx context.Context, guestID uint, subject, body string) (domain.NotificationLog, error) {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return domain.NotificationLog{}, fmt.Errorf("s.guestRepo.FindByID -> %w", err)
	}
	if guest.Email == "" && guest.Phone == "" {
		return domain.NotificationLog{}, ErrGuestUnreachable
	}

	log := domain.NotificationLog{
		GuestID: &guest.ID,
		Subject: subject,
		Status:  domain.DeliveryStatusSent,
	}

	if guest.Email != "" {
		log.Recipient = guest.Email
		log.Channel = domain.NotificationChannelEmail
		err = s.sender.SendEmail(ctx, notifier.EmailMessage{
			To:      guest.Email,
			Subject: subject,
			Body:    body,
		})
	} else {
		log.Recipient = guest.Phone
		log.Channel = domain.NotificationChannelSMS
		err = s.sender.SendSMS(ctx, notifier.SMSMessage{
			To:   guest.Phone,
			Body: subject + "\n" + body,
		})
	}
	if err != nil {
		log.Status = domain.DeliveryStatusFailed
		log.Error = err.Error()
	}

	created, err := s.repo.Create(ctx, log)
	if err != nil {
		return domain.NotificationLog{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// BulkEmailResult summarizes a group send.
type BulkEmailResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// EmailGroup sends to every reachable guest in a group.
func (s *NotificationService) EmailGroup(ctx context.Context, groupID uint, subject, body string) (BulkEmailResult, error) {
	if _, err := s.guestRepo.FindGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return BulkEmailResult{}, ErrGroupNotFound
		}

		return BulkEmailResult{}, fmt.Errorf("s.guestRepo.FindGroupByID -> %w", err)
	}

	guests, _, err := s.guestRepo.List(ctx, repository.GuestFilter{GroupID: groupID})
	if err != nil {
		return BulkEmailResult{}, fmt.Errorf("s.guestRepo.List -> %w", err)
	}

	var result BulkEmailResult
	for _, guest := range guests {
		if guest.Email == "" && guest.Phone == "" {
			continue
		}

		log, err := s.EmailGuest(ctx, guest.ID, subject, body)
		if err != nil {
			return result, err
		}

		if log.Status == domain.DeliveryStatusSent {
			result.Sent++
		} else {
			result.Failed++
		}
	}

	return result, nil
}

func (s *NotificationService) History(ctx context.Context, channel string, limit int) ([]domain.NotificationLog, error) {
	logs, err := s.repo.List(ctx, channel, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return logs, nil
}
