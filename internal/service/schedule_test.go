package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
)

func TestScheduleService_CreateEvent(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	created, err := svc.CreateEvent(context.Background(), domain.Event{
		Name:      "Ceremony",
		StartTime: day(20, 16),
		EndTime:   day(20, 17),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduleStatusDraft, created.Status)
	assert.NotZero(t, created.ID)
}

func TestScheduleService_CreateEvent_InvalidTimeRange(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	_, err := svc.CreateEvent(context.Background(), domain.Event{
		Name:      "Ceremony",
		StartTime: day(20, 17),
		EndTime:   day(20, 16),
	})
	require.ErrorIs(t, err, ErrInvalidTimeRange)

	// Zero-length events are rejected too.
	_, err = svc.CreateEvent(context.Background(), domain.Event{
		Name:      "Ceremony",
		StartTime: day(20, 16),
		EndTime:   day(20, 16),
	})
	require.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestScheduleService_PublishEvent(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)

	created, err := svc.CreateEvent(context.Background(), domain.Event{
		Name:      "Ceremony",
		StartTime: day(20, 16),
		EndTime:   day(20, 17),
	})
	require.NoError(t, err)

	published, err := svc.PublishEvent(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduleStatusPublished, published.Status)
}

func TestScheduleService_CreateActivity_DefaultsDraft(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	created, err := svc.CreateActivity(context.Background(), domain.Activity{
		Name:      "Snorkeling",
		StartTime: day(21, 9),
		EndTime:   day(21, 12),
		Capacity:  intPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduleStatusDraft, created.Status)
}

func TestScheduleService_ListEventsForGuest(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.events[1] = domain.Event{
		ID: 1, Name: "Ceremony", Status: domain.ScheduleStatusPublished,
	}
	repo.events[2] = domain.Event{
		ID: 2, Name: "Rehearsal", Status: domain.ScheduleStatusPublished,
		Visibility: []string{"wedding_party"},
	}
	repo.events[3] = domain.Event{
		ID: 3, Name: "Vendor Walkthrough", Status: domain.ScheduleStatusDraft,
	}

	svc := NewScheduleService(repo)

	forFamily, err := svc.ListEventsForGuest(context.Background(), "family")
	require.NoError(t, err)
	require.Len(t, forFamily, 1)
	assert.Equal(t, "Ceremony", forFamily[0].Name)

	forParty, err := svc.ListEventsForGuest(context.Background(), "wedding_party")
	require.NoError(t, err)
	assert.Len(t, forParty, 2)
}

func TestScheduleService_ListActivitiesForGuest(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.activities[1] = domain.Activity{
		ID: 1, Name: "Snorkeling", Status: domain.ScheduleStatusPublished,
	}
	repo.activities[2] = domain.Activity{
		ID: 2, Name: "Family Brunch", Status: domain.ScheduleStatusPublished,
		Visibility: []string{"family"},
	}

	svc := NewScheduleService(repo)

	visible, err := svc.ListActivitiesForGuest(context.Background(), "friend")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Snorkeling", visible[0].Name)
}

func TestScheduleService_UpdateEvent_KeepsCreatedAt(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)

	created, err := svc.CreateEvent(context.Background(), domain.Event{
		Name:      "Ceremony",
		StartTime: day(20, 16),
		EndTime:   day(20, 17),
	})
	require.NoError(t, err)

	stamp := day(1, 0)
	stored := repo.events[created.ID]
	stored.CreatedAt = stamp
	repo.events[created.ID] = stored

	updated, err := svc.UpdateEvent(context.Background(), domain.Event{
		ID:        created.ID,
		Name:      "Ceremony (updated)",
		StartTime: day(20, 16),
		EndTime:   day(20, 18),
	})
	require.NoError(t, err)
	assert.Equal(t, stamp, updated.CreatedAt)
	assert.Equal(t, "Ceremony (updated)", updated.Name)
}
