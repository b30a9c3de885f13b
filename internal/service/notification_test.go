package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/notifier"
)

type fakeNotificationRepo struct {
	logs   []domain.NotificationLog
	nextID uint
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) Create(_ context.Context, log domain.NotificationLog) (domain.NotificationLog, error) {
	log.ID = f.nextID
	f.nextID++
	f.logs = append(f.logs, log)

	return log, nil
}

func (f *fakeNotificationRepo) List(_ context.Context, channel string, limit int) ([]domain.NotificationLog, error) {
	out := make([]domain.NotificationLog, 0, len(f.logs))
	for _, l := range f.logs {
		if channel != "" && l.Channel != channel {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

func TestNotificationService_EmailGuest(t *testing.T) {
	guests := newFakeGuestRepo()
	guest := guests.addGuest(domain.Guest{FirstName: "Ana", LastName: "Mora", Email: "ana@example.com"})
	repo := newFakeNotificationRepo()
	sender := notifier.NewMemorySender()

	svc := NewNotificationService(repo, guests, sender)

	log, err := svc.EmailGuest(context.Background(), guest.ID, "Schedule update", "The ceremony moved to 4pm.")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryStatusSent, log.Status)
	assert.Equal(t, "ana@example.com", log.Recipient)
	assert.Equal(t, domain.NotificationChannelEmail, log.Channel)

	require.Len(t, sender.Emails, 1)
	assert.Equal(t, "Schedule update", sender.Emails[0].Subject)
}

func TestNotificationService_EmailGuest_FallsBackToSMS(t *testing.T) {
	guests := newFakeGuestRepo()
	guest := guests.addGuest(domain.Guest{FirstName: "Nia", LastName: "Mora", Phone: "+50688881234"})
	repo := newFakeNotificationRepo()
	sender := notifier.NewMemorySender()

	svc := NewNotificationService(repo, guests, sender)

	log, err := svc.EmailGuest(context.Background(), guest.ID, "Schedule update", "The ceremony moved to 4pm.")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryStatusSent, log.Status)
	assert.Equal(t, "+50688881234", log.Recipient)
	assert.Equal(t, domain.NotificationChannelSMS, log.Channel)

	assert.Empty(t, sender.Emails)
	require.Len(t, sender.SMSes, 1)
	assert.Equal(t, "+50688881234", sender.SMSes[0].To)
}

func TestNotificationService_EmailGuest_NoContactDetails(t *testing.T) {
	guests := newFakeGuestRepo()
	guest := guests.addGuest(domain.Guest{FirstName: "Ana", LastName: "Mora"})

	svc := NewNotificationService(newFakeNotificationRepo(), guests, notifier.NewMemorySender())

	_, err := svc.EmailGuest(context.Background(), guest.ID, "Hi", "Body")
	require.ErrorIs(t, err, ErrGuestUnreachable)
}

func TestNotificationService_EmailGuest_DeliveryFailureIsRecorded(t *testing.T) {
	guests := newFakeGuestRepo()
	guest := guests.addGuest(domain.Guest{FirstName: "Ana", Email: "ana@example.com"})
	repo := newFakeNotificationRepo()
	sender := notifier.NewMemorySender()
	sender.Err = errors.New("smtp timeout")

	svc := NewNotificationService(repo, guests, sender)

	log, err := svc.EmailGuest(context.Background(), guest.ID, "Hi", "Body")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryStatusFailed, log.Status)
	assert.Equal(t, "smtp timeout", log.Error)
	require.Len(t, repo.logs, 1)
}

func TestNotificationService_EmailGroup(t *testing.T) {
	guests := newFakeGuestRepo()
	group := guests.addGroup("Family")
	guests.addGuest(domain.Guest{GroupID: group.ID, FirstName: "Ana", Email: "ana@example.com"})
	guests.addGuest(domain.Guest{GroupID: group.ID, FirstName: "Luis", Email: "luis@example.com"})
	guests.addGuest(domain.Guest{GroupID: group.ID, FirstName: "Nia"}) // unreachable, skipped
	guests.addGuest(domain.Guest{GroupID: 999, FirstName: "Outsider", Email: "out@example.com"})

	repo := newFakeNotificationRepo()
	sender := notifier.NewMemorySender()

	svc := NewNotificationService(repo, guests, sender)

	result, err := svc.EmailGroup(context.Background(), group.ID, "Welcome", "See you soon.")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, sender.Emails, 2)
	assert.Len(t, repo.logs, 2)
}

func TestNotificationService_EmailGroup_UnknownGroup(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo(), newFakeGuestRepo(), notifier.NewMemorySender())

	_, err := svc.EmailGroup(context.Background(), 42, "Hi", "Body")
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestNotificationService_History(t *testing.T) {
	repo := newFakeNotificationRepo()
	guests := newFakeGuestRepo()
	guest := guests.addGuest(domain.Guest{FirstName: "Ana", Email: "ana@example.com"})

	svc := NewNotificationService(repo, guests, notifier.NewMemorySender())

	for i := 0; i < 3; i++ {
		_, err := svc.EmailGuest(context.Background(), guest.ID, "Hi", "Body")
		require.NoError(t, err)
	}

	logs, err := svc.History(context.Background(), domain.NotificationChannelEmail, 2)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	logs, err = svc.History(context.Background(), domain.NotificationChannelSMS, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
