package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

type fakeRSVPRepo struct {
	rsvps   map[uint]domain.RSVP
	nextID  uint
	findErr error
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{rsvps: make(map[uint]domain.RSVP), nextID: 1}
}

func (f *fakeRSVPRepo) Create(_ context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	rsvp.ID = f.nextID
	f.nextID++
	f.rsvps[rsvp.ID] = rsvp

	return rsvp, nil
}

func (f *fakeRSVPRepo) FindByID(_ context.Context, id uint) (domain.RSVP, error) {
	rsvp, ok := f.rsvps[id]
	if !ok {
		return domain.RSVP{}, repository.ErrRSVPNotFound
	}

	return rsvp, nil
}

func (f *fakeRSVPRepo) Update(_ context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	if _, ok := f.rsvps[rsvp.ID]; !ok {
		return domain.RSVP{}, repository.ErrRSVPNotFound
	}
	f.rsvps[rsvp.ID] = rsvp

	return rsvp, nil
}

func (f *fakeRSVPRepo) Delete(_ context.Context, id uint) error {
	delete(f.rsvps, id)

	return nil
}

func (f *fakeRSVPRepo) List(_ context.Context, _ repository.RSVPFilter) ([]domain.RSVP, int64, error) {
	out := make([]domain.RSVP, 0, len(f.rsvps))
	for _, r := range f.rsvps {
		out = append(out, r)
	}

	return out, int64(len(out)), nil
}

func (f *fakeRSVPRepo) FindAttendingByActivity(_ context.Context, activityID, excludeID uint) ([]domain.RSVP, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	var out []domain.RSVP
	for _, r := range f.rsvps {
		if r.ActivityID != nil && *r.ActivityID == activityID &&
			r.Status == domain.RSVPStatusAttending && r.ID != excludeID {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeRSVPRepo) FindByGuest(_ context.Context, guestID uint) ([]domain.RSVP, error) {
	var out []domain.RSVP
	for _, r := range f.rsvps {
		if r.GuestID == guestID {
			out = append(out, r)
		}
	}

	return out, nil
}

type fakeScheduleRepo struct {
	events     map[uint]domain.Event
	activities map[uint]domain.Activity
	nextID     uint
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		events:     make(map[uint]domain.Event),
		activities: make(map[uint]domain.Activity),
		nextID:     100,
	}
}

func (f *fakeScheduleRepo) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	if event.ID == 0 {
		event.ID = f.nextID
		f.nextID++
	}
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeScheduleRepo) FindEventByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

func (f *fakeScheduleRepo) UpdateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeScheduleRepo) DeleteEvent(_ context.Context, id uint) error {
	delete(f.events, id)

	return nil
}

func (f *fakeScheduleRepo) ListEvents(_ context.Context, status string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		if status == "" || e.Status == status {
			out = append(out, e)
		}
	}

	return out, nil
}

func (f *fakeScheduleRepo) CreateActivity(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	if activity.ID == 0 {
		activity.ID = f.nextID
		f.nextID++
	}
	f.activities[activity.ID] = activity

	return activity, nil
}

func (f *fakeScheduleRepo) FindActivityByID(_ context.Context, id uint) (domain.Activity, error) {
	activity, ok := f.activities[id]
	if !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}

	return activity, nil
}

func (f *fakeScheduleRepo) UpdateActivity(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	f.activities[activity.ID] = activity

	return activity, nil
}

func (f *fakeScheduleRepo) DeleteActivity(_ context.Context, id uint) error {
	delete(f.activities, id)

	return nil
}

func (f *fakeScheduleRepo) ListActivities(_ context.Context, status string) ([]domain.Activity, error) {
	var out []domain.Activity
	for _, a := range f.activities {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}

	return out, nil
}

func (f *fakeScheduleRepo) ListActivitiesWithCapacity(_ context.Context) ([]domain.Activity, error) {
	var out []domain.Activity
	for _, a := range f.activities {
		if a.Capacity != nil {
			out = append(out, a)
		}
	}

	return out, nil
}

func intPtr(v int) *int {
	return &v
}

func uintPtr(v uint) *uint {
	return &v
}

func newTestRSVPService(repo *fakeRSVPRepo, schedule *fakeScheduleRepo) *RSVPService {
	svc := NewRSVPService(repo, schedule)
	svc.now = func() time.Time {
		return time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	}

	return svc
}

func seedAttending(repo *fakeRSVPRepo, activityID uint, counts ...int) {
	for _, c := range counts {
		_, _ = repo.Create(context.Background(), domain.RSVP{
			GuestID:    1,
			ActivityID: uintPtr(activityID),
			Status:     domain.RSVPStatusAttending,
			GuestCount: c,
		})
	}
}

func TestRSVPService_CheckCapacity(t *testing.T) {
	tests := []struct {
		name      string
		capacity  *int
		attending []int
		requested int
		wantErr   error
	}{
		{
			name:      "nil capacity always passes",
			capacity:  nil,
			attending: []int{50, 50, 50},
			requested: 100,
		},
		{
			name:      "exact fit passes",
			capacity:  intPtr(10),
			attending: []int{4, 4},
			requested: 2,
		},
		{
			name:      "one over fails",
			capacity:  intPtr(10),
			attending: []int{4, 4},
			requested: 3,
			wantErr:   ErrCapacityExceeded,
		},
		{
			name:      "empty activity accepts up to capacity",
			capacity:  intPtr(3),
			requested: 3,
		},
		{
			name:      "zero requested counts as one",
			capacity:  intPtr(5),
			attending: []int{5},
			requested: 0,
			wantErr:   ErrCapacityExceeded,
		},
		{
			name:      "negative requested counts as one",
			capacity:  intPtr(6),
			attending: []int{5},
			requested: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRSVPRepo()
			schedule := newFakeScheduleRepo()
			schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling", Capacity: tt.capacity}
			seedAttending(repo, 1, tt.attending...)

			svc := newTestRSVPService(repo, schedule)

			err := svc.CheckCapacity(context.Background(), 1, tt.requested, 0)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRSVPService_CheckCapacity_UnknownActivity(t *testing.T) {
	svc := newTestRSVPService(newFakeRSVPRepo(), newFakeScheduleRepo())

	err := svc.CheckCapacity(context.Background(), 42, 1, 0)
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestRSVPService_CheckCapacity_LookupFailureRejects(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.findErr = errors.New("connection reset")
	schedule := newFakeScheduleRepo()
	schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling", Capacity: intPtr(10)}

	svc := newTestRSVPService(repo, schedule)

	err := svc.CheckCapacity(context.Background(), 1, 1, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCapacityExceeded)
}

func TestRSVPService_Submit_AttendingActivityAtCapacity(t *testing.T) {
	repo := newFakeRSVPRepo()
	schedule := newFakeScheduleRepo()
	schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling", Capacity: intPtr(4)}
	seedAttending(repo, 1, 2, 2)

	svc := newTestRSVPService(repo, schedule)

	_, err := svc.Submit(context.Background(), domain.RSVP{
		GuestID:    7,
		ActivityID: uintPtr(1),
		Status:     domain.RSVPStatusAttending,
		GuestCount: 1,
	})
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestRSVPService_Submit_DecliningFullActivityPasses(t *testing.T) {
	repo := newFakeRSVPRepo()
	schedule := newFakeScheduleRepo()
	schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling", Capacity: intPtr(2)}
	seedAttending(repo, 1, 2)

	svc := newTestRSVPService(repo, schedule)

	created, err := svc.Submit(context.Background(), domain.RSVP{
		GuestID:    7,
		ActivityID: uintPtr(1),
		Status:     domain.RSVPStatusDeclined,
		GuestCount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPStatusDeclined, created.Status)
	require.NotNil(t, created.RespondedAt)
}

func TestRSVPService_Submit_PendingHasNoRespondedAt(t *testing.T) {
	repo := newFakeRSVPRepo()
	schedule := newFakeScheduleRepo()
	schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling"}

	svc := newTestRSVPService(repo, schedule)

	created, err := svc.Submit(context.Background(), domain.RSVP{
		GuestID:    7,
		ActivityID: uintPtr(1),
		Status:     domain.RSVPStatusPending,
		GuestCount: 1,
	})
	require.NoError(t, err)
	assert.Nil(t, created.RespondedAt)

	// Answering stamps the response time.
	updated, err := svc.UpdateResponse(context.Background(), domain.RSVP{
		ID:         created.ID,
		Status:     domain.RSVPStatusAttending,
		GuestCount: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.RespondedAt)
	stamped := *updated.RespondedAt

	// Reverting to pending keeps the original stamp untouched.
	reverted, err := svc.UpdateResponse(context.Background(), domain.RSVP{
		ID:         created.ID,
		Status:     domain.RSVPStatusPending,
		GuestCount: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, reverted.RespondedAt)
	assert.Equal(t, stamped, *reverted.RespondedAt)
}

func TestRSVPService_Submit_RequiresExactlyOneTarget(t *testing.T) {
	svc := newTestRSVPService(newFakeRSVPRepo(), newFakeScheduleRepo())

	_, err := svc.Submit(context.Background(), domain.RSVP{GuestID: 1})
	require.ErrorIs(t, err, ErrRSVPTargetRequired)

	_, err = svc.Submit(context.Background(), domain.RSVP{
		GuestID:    1,
		EventID:    uintPtr(1),
		ActivityID: uintPtr(2),
	})
	require.ErrorIs(t, err, ErrRSVPTargetRequired)
}

func TestRSVPService_Submit_EventDeadline(t *testing.T) {
	repo := newFakeRSVPRepo()
	schedule := newFakeScheduleRepo()
	svc := newTestRSVPService(repo, schedule)

	passed := svc.now().Add(-time.Hour)
	open := svc.now().Add(time.Hour)
	schedule.events[1] = domain.Event{ID: 1, Name: "Ceremony", RSVPDeadline: &passed}
	schedule.events[2] = domain.Event{ID: 2, Name: "Reception", RSVPDeadline: &open}
	schedule.events[3] = domain.Event{ID: 3, Name: "Welcome Dinner"}

	_, err := svc.Submit(context.Background(), domain.RSVP{
		GuestID: 1, EventID: uintPtr(1), Status: domain.RSVPStatusAttending,
	})
	require.ErrorIs(t, err, ErrRSVPDeadlinePassed)

	_, err = svc.Submit(context.Background(), domain.RSVP{
		GuestID: 1, EventID: uintPtr(2), Status: domain.RSVPStatusAttending,
	})
	require.NoError(t, err)

	// No deadline means always open.
	_, err = svc.Submit(context.Background(), domain.RSVP{
		GuestID: 1, EventID: uintPtr(3), Status: domain.RSVPStatusAttending,
	})
	require.NoError(t, err)
}

func TestRSVPService_UpdateResponse_ExcludesOwnSeats(t *testing.T) {
	repo := newFakeRSVPRepo()
	schedule := newFakeScheduleRepo()
	schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling", Capacity: intPtr(4)}

	svc := newTestRSVPService(repo, schedule)

	created, err := svc.Submit(context.Background(), domain.RSVP{
		GuestID:    7,
		ActivityID: uintPtr(1),
		Status:     domain.RSVPStatusAttending,
		GuestCount: 4,
	})
	require.NoError(t, err)

	// Shrinking a party that already holds every seat must succeed.
	updated, err := svc.UpdateResponse(context.Background(), domain.RSVP{
		ID:         created.ID,
		Status:     domain.RSVPStatusAttending,
		GuestCount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.GuestCount)

	// Growing past capacity must not.
	_, err = svc.UpdateResponse(context.Background(), domain.RSVP{
		ID:         created.ID,
		Status:     domain.RSVPStatusAttending,
		GuestCount: 5,
	})
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestRSVPService_UpdateResponse_PinsTarget(t *testing.T) {
	repo := newFakeRSVPRepo()
	schedule := newFakeScheduleRepo()
	schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling"}
	schedule.activities[2] = domain.Activity{ID: 2, Name: "Hiking"}

	svc := newTestRSVPService(repo, schedule)

	created, err := svc.Submit(context.Background(), domain.RSVP{
		GuestID:    7,
		ActivityID: uintPtr(1),
		Status:     domain.RSVPStatusMaybe,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateResponse(context.Background(), domain.RSVP{
		ID:         created.ID,
		GuestID:    99,
		ActivityID: uintPtr(2),
		Status:     domain.RSVPStatusAttending,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), updated.GuestID)
	require.NotNil(t, updated.ActivityID)
	assert.Equal(t, uint(1), *updated.ActivityID)
}

func TestRSVPService_CalculateActivityCapacity(t *testing.T) {
	repo := newFakeRSVPRepo()
	schedule := newFakeScheduleRepo()
	schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling", Capacity: intPtr(10)}
	schedule.activities[2] = domain.Activity{ID: 2, Name: "Hiking"}
	seedAttending(repo, 1, 3, 4)

	svc := newTestRSVPService(repo, schedule)

	bounded, err := svc.CalculateActivityCapacity(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, bounded.Capacity)
	assert.Equal(t, 10, *bounded.Capacity)
	assert.Equal(t, 7, bounded.AttendingCount)
	require.NotNil(t, bounded.Available)
	assert.Equal(t, 3, *bounded.Available)

	unlimited, err := svc.CalculateActivityCapacity(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, unlimited.Capacity)
	assert.Nil(t, unlimited.Available)
	assert.Equal(t, 0, unlimited.AttendingCount)
}

func TestRSVPService_GenerateCapacityAlerts(t *testing.T) {
	repo := newFakeRSVPRepo()
	schedule := newFakeScheduleRepo()
	schedule.activities[1] = domain.Activity{ID: 1, Name: "Snorkeling", Capacity: intPtr(10)}
	schedule.activities[2] = domain.Activity{ID: 2, Name: "Hiking", Capacity: intPtr(10)}
	schedule.activities[3] = domain.Activity{ID: 3, Name: "Spa Day", Capacity: intPtr(10)}
	schedule.activities[4] = domain.Activity{ID: 4, Name: "Beach Walk", Capacity: intPtr(10)}
	seedAttending(repo, 1, 10) // full
	seedAttending(repo, 2, 9)  // critical
	seedAttending(repo, 3, 8)  // warning
	seedAttending(repo, 4, 2)  // quiet

	svc := newTestRSVPService(repo, schedule)

	alerts, err := svc.GenerateCapacityAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	byActivity := make(map[uint]domain.CapacityAlert, len(alerts))
	for _, a := range alerts {
		byActivity[a.ActivityID] = a
	}

	assert.Equal(t, domain.CapacityAlertFull, byActivity[1].AlertLevel)
	assert.Equal(t, "Snorkeling is full (10/10)", byActivity[1].Message)
	assert.Equal(t, domain.CapacityAlertCritical, byActivity[2].AlertLevel)
	assert.Equal(t, 90, byActivity[2].UtilizationPercentage)
	assert.Equal(t, domain.CapacityAlertWarning, byActivity[3].AlertLevel)
	assert.NotContains(t, byActivity, uint(4))
}

func TestRSVP_PartySize(t *testing.T) {
	assert.Equal(t, 1, domain.RSVP{}.PartySize())
	assert.Equal(t, 1, domain.RSVP{GuestCount: -3}.PartySize())
	assert.Equal(t, 5, domain.RSVP{GuestCount: 5}.PartySize())
}
