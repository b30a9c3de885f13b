package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

type fakeAccommodationRepo struct {
	accommodations map[uint]domain.Accommodation
	roomTypes      map[uint]domain.RoomType
	assignments    map[uint]domain.RoomAssignment
	nextID         uint
}

func newFakeAccommodationRepo() *fakeAccommodationRepo {
	return &fakeAccommodationRepo{
		accommodations: make(map[uint]domain.Accommodation),
		roomTypes:      make(map[uint]domain.RoomType),
		assignments:    make(map[uint]domain.RoomAssignment),
		nextID:         1,
	}
}

func (f *fakeAccommodationRepo) Create(_ context.Context, accommodation domain.Accommodation) (domain.Accommodation, error) {
	accommodation.ID = f.nextID
	f.nextID++
	f.accommodations[accommodation.ID] = accommodation

	return accommodation, nil
}

func (f *fakeAccommodationRepo) FindByID(_ context.Context, id uint) (domain.Accommodation, error) {
	accommodation, ok := f.accommodations[id]
	if !ok {
		return domain.Accommodation{}, repository.ErrAccommodationNotFound
	}

	return accommodation, nil
}

func (f *fakeAccommodationRepo) Update(_ context.Context, accommodation domain.Accommodation) (domain.Accommodation, error) {
	f.accommodations[accommodation.ID] = accommodation

	return accommodation, nil
}

func (f *fakeAccommodationRepo) Delete(_ context.Context, id uint) error {
	delete(f.accommodations, id)

	return nil
}

func (f *fakeAccommodationRepo) ListAll(_ context.Context) ([]domain.Accommodation, error) {
	out := make([]domain.Accommodation, 0, len(f.accommodations))
	for _, a := range f.accommodations {
		out = append(out, a)
	}

	return out, nil
}

func (f *fakeAccommodationRepo) CreateRoomType(_ context.Context, roomType domain.RoomType) (domain.RoomType, error) {
	roomType.ID = f.nextID
	f.nextID++
	f.roomTypes[roomType.ID] = roomType

	return roomType, nil
}

func (f *fakeAccommodationRepo) FindRoomTypeByID(_ context.Context, id uint) (domain.RoomType, error) {
	roomType, ok := f.roomTypes[id]
	if !ok {
		return domain.RoomType{}, repository.ErrRoomTypeNotFound
	}

	return roomType, nil
}

func (f *fakeAccommodationRepo) UpdateRoomType(_ context.Context, roomType domain.RoomType) (domain.RoomType, error) {
	if _, ok := f.roomTypes[roomType.ID]; !ok {
		return domain.RoomType{}, repository.ErrRoomTypeNotFound
	}
	f.roomTypes[roomType.ID] = roomType

	return roomType, nil
}

func (f *fakeAccommodationRepo) DeleteRoomType(_ context.Context, id uint) error {
	if _, ok := f.roomTypes[id]; !ok {
		return repository.ErrRoomTypeNotFound
	}
	delete(f.roomTypes, id)

	return nil
}

func (f *fakeAccommodationRepo) ListRoomTypes(_ context.Context, accommodationID uint) ([]domain.RoomType, error) {
	var out []domain.RoomType
	for _, rt := range f.roomTypes {
		if rt.AccommodationID == accommodationID {
			out = append(out, rt)
		}
	}

	return out, nil
}

func (f *fakeAccommodationRepo) CreateRoomAssignment(_ context.Context, assignment domain.RoomAssignment) (domain.RoomAssignment, error) {
	assignment.ID = f.nextID
	f.nextID++
	f.assignments[assignment.ID] = assignment

	return assignment, nil
}

func (f *fakeAccommodationRepo) DeleteRoomAssignment(_ context.Context, id uint) error {
	if _, ok := f.assignments[id]; !ok {
		return repository.ErrRoomAssignmentNotFound
	}
	delete(f.assignments, id)

	return nil
}

func (f *fakeAccommodationRepo) ListGuestRoomAssignments(_ context.Context, guestID uint) ([]domain.RoomAssignment, error) {
	var out []domain.RoomAssignment
	for _, a := range f.assignments {
		if a.GuestID == guestID {
			out = append(out, a)
		}
	}

	return out, nil
}

func day(d int, hour int) time.Time {
	return time.Date(2026, time.June, d, hour, 0, 0, 0, time.UTC)
}

func TestItineraryService_Generate(t *testing.T) {
	guests := newFakeGuestRepo()
	guest := guests.addGuest(domain.Guest{
		FirstName: "Ana",
		LastName:  "Mora",
		GuestType: "wedding_party",
	})

	schedule := newFakeScheduleRepo()
	schedule.events[1] = domain.Event{
		ID: 1, Name: "Ceremony", Status: domain.ScheduleStatusPublished,
		StartTime: day(20, 16), EndTime: day(20, 17),
	}
	schedule.events[2] = domain.Event{
		ID: 2, Name: "Rehearsal", Status: domain.ScheduleStatusPublished,
		StartTime: day(19, 10), EndTime: day(19, 11),
		Visibility: []string{"wedding_party"},
	}
	schedule.events[3] = domain.Event{
		ID: 3, Name: "Vendor Walkthrough", Status: domain.ScheduleStatusDraft,
		StartTime: day(18, 9), EndTime: day(18, 10),
	}
	schedule.activities[4] = domain.Activity{
		ID: 4, Name: "Snorkeling", Status: domain.ScheduleStatusPublished,
		StartTime: day(21, 9), EndTime: day(21, 12),
	}
	schedule.activities[5] = domain.Activity{
		ID: 5, Name: "Family Brunch", Status: domain.ScheduleStatusPublished,
		StartTime: day(21, 10), EndTime: day(21, 11),
		Visibility: []string{"family"},
	}

	rsvps := newFakeRSVPRepo()
	_, err := rsvps.Create(context.Background(), domain.RSVP{
		GuestID: guest.ID, EventID: uintPtr(1), Status: domain.RSVPStatusAttending,
	})
	require.NoError(t, err)
	_, err = rsvps.Create(context.Background(), domain.RSVP{
		GuestID: guest.ID, ActivityID: uintPtr(4), Status: domain.RSVPStatusMaybe,
	})
	require.NoError(t, err)

	accommodations := newFakeAccommodationRepo()
	resort, err := accommodations.Create(context.Background(), domain.Accommodation{Name: "Playa Resort"})
	require.NoError(t, err)
	oceanView, err := accommodations.CreateRoomType(context.Background(), domain.RoomType{
		AccommodationID: resort.ID, Name: "Ocean View",
	})
	require.NoError(t, err)
	_, err = accommodations.CreateRoomAssignment(context.Background(), domain.RoomAssignment{
		GuestID: guest.ID, RoomTypeID: oceanView.ID,
		CheckIn: day(19, 15), CheckOut: day(22, 11),
	})
	require.NoError(t, err)

	svc := NewItineraryService(guests, rsvps, schedule, accommodations)
	svc.now = func() time.Time { return day(15, 12) }

	itinerary, err := svc.Generate(context.Background(), guest.ID)
	require.NoError(t, err)

	assert.Equal(t, guest.ID, itinerary.GuestID)
	assert.Equal(t, "Ana Mora", itinerary.GuestName)
	assert.Equal(t, day(15, 12), itinerary.GeneratedAt)

	// Draft events and activities for other guest types are excluded;
	// the rest are sorted by start time.
	require.Len(t, itinerary.Entries, 3)
	assert.Equal(t, "Rehearsal", itinerary.Entries[0].Name)
	assert.Equal(t, "Ceremony", itinerary.Entries[1].Name)
	assert.Equal(t, "Snorkeling", itinerary.Entries[2].Name)

	assert.Equal(t, domain.RSVPStatusAttending, itinerary.Entries[1].RSVPStatus)
	assert.Equal(t, domain.RSVPStatusMaybe, itinerary.Entries[2].RSVPStatus)
	assert.Empty(t, itinerary.Entries[0].RSVPStatus)

	require.Len(t, itinerary.Stays, 1)
	assert.Equal(t, "Playa Resort", itinerary.Stays[0].AccommodationName)
	assert.Equal(t, "Ocean View", itinerary.Stays[0].RoomType)
}

func TestItineraryService_Generate_UnknownGuest(t *testing.T) {
	svc := NewItineraryService(newFakeGuestRepo(), newFakeRSVPRepo(), newFakeScheduleRepo(), newFakeAccommodationRepo())

	_, err := svc.Generate(context.Background(), 42)
	require.ErrorIs(t, err, ErrGuestNotFound)
}

func TestAccommodationService_AssignRoom_InvalidStay(t *testing.T) {
	guests := newFakeGuestRepo()
	guest := guests.addGuest(domain.Guest{FirstName: "Ana"})
	accommodations := newFakeAccommodationRepo()
	resort, err := accommodations.Create(context.Background(), domain.Accommodation{Name: "Playa Resort"})
	require.NoError(t, err)
	room, err := accommodations.CreateRoomType(context.Background(), domain.RoomType{
		AccommodationID: resort.ID, Name: "Ocean View",
	})
	require.NoError(t, err)

	svc := NewAccommodationService(accommodations, guests)

	_, err = svc.AssignRoom(context.Background(), domain.RoomAssignment{
		GuestID:    guest.ID,
		RoomTypeID: room.ID,
		CheckIn:    day(22, 11),
		CheckOut:   day(19, 15),
	})
	require.ErrorIs(t, err, ErrInvalidStayRange)
}

func TestAccommodationService_EstimateStayCost(t *testing.T) {
	guests := newFakeGuestRepo()
	guest := guests.addGuest(domain.Guest{FirstName: "Ana"})
	accommodations := newFakeAccommodationRepo()
	resort, err := accommodations.Create(context.Background(), domain.Accommodation{Name: "Playa Resort"})
	require.NoError(t, err)
	room, err := accommodations.CreateRoomType(context.Background(), domain.RoomType{
		AccommodationID: resort.ID, Name: "Ocean View", NightlyCost: 150,
	})
	require.NoError(t, err)

	svc := NewAccommodationService(accommodations, guests)

	assignment, err := svc.AssignRoom(context.Background(), domain.RoomAssignment{
		GuestID:    guest.ID,
		RoomTypeID: room.ID,
		CheckIn:    day(19, 15),
		CheckOut:   day(22, 15),
	})
	require.NoError(t, err)

	cost, err := svc.EstimateStayCost(context.Background(), assignment)
	require.NoError(t, err)
	assert.Equal(t, 450, cost)
}
