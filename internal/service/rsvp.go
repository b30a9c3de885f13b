package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var (
	ErrRSVPNotFound       = repository.ErrRSVPNotFound
	ErrRSVPExists         = repository.ErrRSVPExists
	ErrRSVPTargetRequired = errors.New("rsvp must target exactly one event or activity")
	ErrRSVPDeadlinePassed = errors.New("rsvp deadline has passed")
	ErrCapacityExceeded   = errors.New("activity capacity exceeded")
)

type RSVPRepository interface {
	Create(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error)
	FindByID(ctx context.Context, id uint) (domain.RSVP, error)
	Update(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter repository.RSVPFilter) ([]domain.RSVP, int64, error)
	FindAttendingByActivity(ctx context.Context, activityID, excludeID uint) ([]domain.RSVP, error)
	FindByGuest(ctx context.Context, guestID uint) ([]domain.RSVP, error)
}

type RSVPService struct {
	repo         RSVPRepository
	scheduleRepo ScheduleRepository
	now          func() time.Time
}

func NewRSVPService(repo RSVPRepository, scheduleRepo ScheduleRepository) *RSVPService {
	return &RSVPService{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

// Submit records a new response. For attending activity responses the
// activity's capacity is checked first, so an oversubscribing response
// never reaches the database.
func (s *RSVPService) Submit(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	if err := s.validateTarget(ctx, rsvp, 0); err != nil {
		return domain.RSVP{}, err
	}

	// A pending response is a placeholder, not an answer.
	if rsvp.Status != domain.RSVPStatusPending {
		now := s.now()
		rsvp.RespondedAt = &now
	} else {
		rsvp.RespondedAt = nil
	}

	created, err := s.repo.Create(ctx, rsvp)
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateResponse re-validates deadline and capacity, excluding the response
// being updated from the attending sum so a guest can adjust their own
// party size.
func (s *RSVPService) UpdateResponse(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	existing, err := s.repo.FindByID(ctx, rsvp.ID)
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	rsvp.GuestID = existing.GuestID
	rsvp.EventID = existing.EventID
	rsvp.ActivityID = existing.ActivityID
	rsvp.CreatedAt = existing.CreatedAt

	if err := s.validateTarget(ctx, rsvp, rsvp.ID); err != nil {
		return domain.RSVP{}, err
	}

	if rsvp.Status != domain.RSVPStatusPending {
		now := s.now()
		rsvp.RespondedAt = &now
	} else {
		rsvp.RespondedAt = existing.RespondedAt
	}

	updated, err := s.repo.Update(ctx, rsvp)
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *RSVPService) validateTarget(ctx context.Context, rsvp domain.RSVP, excludeID uint) error {
	hasEvent := rsvp.EventID != nil
	hasActivity := rsvp.ActivityID != nil
	if hasEvent == hasActivity {
		return ErrRSVPTargetRequired
	}

	if hasEvent {
		event, err := s.scheduleRepo.FindEventByID(ctx, *rsvp.EventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return ErrEventNotFound
			}

			return fmt.Errorf("s.scheduleRepo.FindEventByID -> %w", err)
		}

		if event.RSVPDeadline != nil && s.now().After(*event.RSVPDeadline) {
			return ErrRSVPDeadlinePassed
		}

		return nil
	}

	if rsvp.Status != domain.RSVPStatusAttending {
		if _, err := s.scheduleRepo.FindActivityByID(ctx, *rsvp.ActivityID); err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return ErrActivityNotFound
			}

			return fmt.Errorf("s.scheduleRepo.FindActivityByID -> %w", err)
		}

		return nil
	}

	return s.CheckCapacity(ctx, *rsvp.ActivityID, rsvp.PartySize(), excludeID)
}

// CheckCapacity rejects a request for seats that would push the activity's
// attending headcount past its capacity. A nil capacity means unlimited and
// always passes. Any lookup failure is returned as-is so callers reject the
// response rather than admit it blind.
func (s *RSVPService) CheckCapacity(ctx context.Context, activityID uint, requested int, excludeRSVPID uint) error {
	activity, err := s.scheduleRepo.FindActivityByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return ErrActivityNotFound
		}

		return fmt.Errorf("s.scheduleRepo.FindActivityByID -> %w", err)
	}

	if activity.Capacity == nil {
		return nil
	}

	attending, err := s.repo.FindAttendingByActivity(ctx, activityID, excludeRSVPID)
	if err != nil {
		return fmt.Errorf("s.repo.FindAttendingByActivity -> %w", err)
	}

	total := 0
	for _, r := range attending {
		total += r.PartySize()
	}

	if requested <= 0 {
		requested = 1
	}
	if total+requested > *activity.Capacity {
		return ErrCapacityExceeded
	}

	return nil
}

// CalculateActivityCapacity reports current occupancy for an activity.
func (s *RSVPService) CalculateActivityCapacity(ctx context.Context, activityID uint) (domain.ActivityCapacity, error) {
	activity, err := s.scheduleRepo.FindActivityByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domain.ActivityCapacity{}, ErrActivityNotFound
		}

		return domain.ActivityCapacity{}, fmt.Errorf("s.scheduleRepo.FindActivityByID -> %w", err)
	}

	attending, err := s.repo.FindAttendingByActivity(ctx, activityID, 0)
	if err != nil {
		return domain.ActivityCapacity{}, fmt.Errorf("s.repo.FindAttendingByActivity -> %w", err)
	}

	total := 0
	for _, r := range attending {
		total += r.PartySize()
	}

	result := domain.ActivityCapacity{AttendingCount: total}
	if activity.Capacity != nil {
		capacity := *activity.Capacity
		available := capacity - total
		if available < 0 {
			available = 0
		}
		result.Capacity = &capacity
		result.Available = &available
	}

	return result, nil
}

// GenerateCapacityAlerts scans every published, capacity-bounded activity
// and flags the ones filling up: warning at 75%, critical at 90%, full at
// capacity.
func (s *RSVPService) GenerateCapacityAlerts(ctx context.Context) ([]domain.CapacityAlert, error) {
	activities, err := s.scheduleRepo.ListActivitiesWithCapacity(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.scheduleRepo.ListActivitiesWithCapacity -> %w", err)
	}

	alerts := make([]domain.CapacityAlert, 0)
	for _, activity := range activities {
		if activity.Capacity == nil || *activity.Capacity <= 0 {
			continue
		}

		attending, err := s.repo.FindAttendingByActivity(ctx, activity.ID, 0)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindAttendingByActivity -> %w", err)
		}

		total := 0
		for _, r := range attending {
			total += r.PartySize()
		}

		capacity := *activity.Capacity
		utilization := total * 100 / capacity

		var level, message string
		switch {
		case total >= capacity:
			level = domain.CapacityAlertFull
			message = fmt.Sprintf("%s is full (%d/%d)", activity.Name, total, capacity)
		case utilization >= 90:
			level = domain.CapacityAlertCritical
			message = fmt.Sprintf("%s is nearly full (%d/%d)", activity.Name, total, capacity)
		case utilization >= 75:
			level = domain.CapacityAlertWarning
			message = fmt.Sprintf("%s is filling up (%d/%d)", activity.Name, total, capacity)
		default:
			continue
		}

		alerts = append(alerts, domain.CapacityAlert{
			ActivityID:            activity.ID,
			ActivityName:          activity.Name,
			Capacity:              capacity,
			AttendingCount:        total,
			UtilizationPercentage: utilization,
			AlertLevel:            level,
			Message:               message,
		})
	}

	return alerts, nil
}

func (s *RSVPService) GetRSVP(ctx context.Context, id uint) (domain.RSVP, error) {
	rsvp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.RSVP{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return rsvp, nil
}

func (s *RSVPService) DeleteRSVP(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *RSVPService) ListRSVPs(ctx context.Context, filter repository.RSVPFilter) ([]domain.RSVP, int64, error) {
	rsvps, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return rsvps, total, nil
}

func (s *RSVPService) ListGuestRSVPs(ctx context.Context, guestID uint) ([]domain.RSVP, error) {
	rsvps, err := s.repo.FindByGuest(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByGuest -> %w", err)
	}

	return rsvps, nil
}
