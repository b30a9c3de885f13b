package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
)

type ItineraryService struct {
	guestRepo         GuestRepository
	rsvpRepo          RSVPRepository
	scheduleRepo      ScheduleRepository
	accommodationRepo AccommodationRepository
	now               func() time.Time
}

func NewItineraryService(
	guestRepo GuestRepository,
	rsvpRepo RSVPRepository,
	scheduleRepo ScheduleRepository,
	accommodationRepo AccommodationRepository,
) *ItineraryService {
	return &ItineraryService{
		guestRepo:         guestRepo,
		rsvpRepo:          rsvpRepo,
		scheduleRepo:      scheduleRepo,
		accommodationRepo: accommodationRepo,
		now:               time.Now,
	}
}

// Generate assembles a guest's personal schedule: the published events and
// activities visible to their guest type, annotated with their RSVP status,
// plus their room stays. Entries are sorted by start time.
func (s *ItineraryService) Generate(ctx context.Context, guestID uint) (domain.Itinerary, error) {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("s.guestRepo.FindByID -> %w", err)
	}

	rsvps, err := s.rsvpRepo.FindByGuest(ctx, guestID)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("s.rsvpRepo.FindByGuest -> %w", err)
	}

	eventStatus := map[uint]string{}
	activityStatus := map[uint]string{}
	for _, r := range rsvps {
		if r.EventID != nil {
			eventStatus[*r.EventID] = r.Status
		}
		if r.ActivityID != nil {
			activityStatus[*r.ActivityID] = r.Status
		}
	}

	events, err := s.scheduleRepo.ListEvents(ctx, domain.ScheduleStatusPublished)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("s.scheduleRepo.ListEvents -> %w", err)
	}

	activities, err := s.scheduleRepo.ListActivities(ctx, domain.ScheduleStatusPublished)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("s.scheduleRepo.ListActivities -> %w", err)
	}

	entries := make([]domain.ItineraryEntry, 0, len(events)+len(activities))
	for _, e := range events {
		if !e.VisibleTo(guest.GuestType) {
			continue
		}
		entries = append(entries, domain.ItineraryEntry{
			ID:         e.ID,
			Name:       e.Name,
			Type:       "event",
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			LocationID: e.LocationID,
			RSVPStatus: eventStatus[e.ID],
		})
	}
	for _, a := range activities {
		if !a.VisibleTo(guest.GuestType) {
			continue
		}
		entries = append(entries, domain.ItineraryEntry{
			ID:         a.ID,
			Name:       a.Name,
			Type:       "activity",
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
			LocationID: a.LocationID,
			RSVPStatus: activityStatus[a.ID],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartTime.Before(entries[j].StartTime)
	})

	stays, err := s.buildStays(ctx, guestID)
	if err != nil {
		return domain.Itinerary{}, err
	}

	return domain.Itinerary{
		GuestID:     guest.ID,
		GuestName:   guest.FirstName + " " + guest.LastName,
		Entries:     entries,
		Stays:       stays,
		GeneratedAt: s.now(),
	}, nil
}

func (s *ItineraryService) buildStays(ctx context.Context, guestID uint) ([]domain.ItineraryStay, error) {
	assignments, err := s.accommodationRepo.ListGuestRoomAssignments(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("s.accommodationRepo.ListGuestRoomAssignments -> %w", err)
	}

	stays := make([]domain.ItineraryStay, 0, len(assignments))
	for _, a := range assignments {
		roomType, err := s.accommodationRepo.FindRoomTypeByID(ctx, a.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("s.accommodationRepo.FindRoomTypeByID -> %w", err)
		}

		accommodation, err := s.accommodationRepo.FindByID(ctx, roomType.AccommodationID)
		if err != nil {
			return nil, fmt.Errorf("s.accommodationRepo.FindByID -> %w", err)
		}

		stays = append(stays, domain.ItineraryStay{
			AccommodationName: accommodation.Name,
			RoomType:          roomType.Name,
			CheckIn:           a.CheckIn,
			CheckOut:          a.CheckOut,
		})
	}

	sort.Slice(stays, func(i, j int) bool {
		return stays[i].CheckIn.Before(stays[j].CheckIn)
	})

	return stays, nil
}
