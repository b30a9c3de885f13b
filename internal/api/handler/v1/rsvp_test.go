package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/service"
)

type stubRSVPService struct {
	submitFn   func(rsvp domain.RSVP) (domain.RSVP, error)
	capacityFn func(activityID uint) (domain.ActivityCapacity, error)
	alertsFn   func() ([]domain.CapacityAlert, error)
}

func (s *stubRSVPService) Submit(_ context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	return s.submitFn(rsvp)
}

func (s *stubRSVPService) UpdateResponse(_ context.Context, rsvp domain.RSVP) (domain.RSVP, error) {
	return rsvp, nil
}

func (s *stubRSVPService) GetRSVP(_ context.Context, id uint) (domain.RSVP, error) {
	return domain.RSVP{ID: id}, nil
}

func (s *stubRSVPService) DeleteRSVP(_ context.Context, _ uint) error {
	return nil
}

func (s *stubRSVPService) ListRSVPs(_ context.Context, _ repository.RSVPFilter) ([]domain.RSVP, int64, error) {
	return []domain.RSVP{}, 0, nil
}

func (s *stubRSVPService) ListGuestRSVPs(_ context.Context, _ uint) ([]domain.RSVP, error) {
	return []domain.RSVP{}, nil
}

func (s *stubRSVPService) CalculateActivityCapacity(_ context.Context, activityID uint) (domain.ActivityCapacity, error) {
	return s.capacityFn(activityID)
}

func (s *stubRSVPService) GenerateCapacityAlerts(_ context.Context) ([]domain.CapacityAlert, error) {
	return s.alertsFn()
}

func newRSVPRouter(svc RSVPService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewRSVPHandler(svc)

	router := gin.New()
	router.POST("/rsvps", handler.HandleSubmitRSVP)
	router.GET("/activities/:activityID/capacity", handler.HandleGetActivityCapacity)
	router.GET("/capacity-alerts", handler.HandleGetCapacityAlerts)

	return router
}

func TestRSVPHandler_HandleSubmitRSVP_CapacityConflict(t *testing.T) {
	svc := &stubRSVPService{
		submitFn: func(domain.RSVP) (domain.RSVP, error) {
			return domain.RSVP{}, service.ErrCapacityExceeded
		},
	}
	router := newRSVPRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/rsvps",
		strings.NewReader(`{"guest_id":7,"activity_id":1,"status":"attending","guest_count":2}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "capacity")
}

func TestRSVPHandler_HandleSubmitRSVP_DeadlinePassed(t *testing.T) {
	svc := &stubRSVPService{
		submitFn: func(domain.RSVP) (domain.RSVP, error) {
			return domain.RSVP{}, service.ErrRSVPDeadlinePassed
		},
	}
	router := newRSVPRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/rsvps",
		strings.NewReader(`{"guest_id":7,"event_id":1,"status":"attending"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRSVPHandler_HandleSubmitRSVP_Validation(t *testing.T) {
	svc := &stubRSVPService{
		submitFn: func(rsvp domain.RSVP) (domain.RSVP, error) {
			rsvp.ID = 1

			return rsvp, nil
		},
	}
	router := newRSVPRouter(svc)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/rsvps", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		return resp
	}

	// Unknown status value.
	resp := post(`{"guest_id":7,"event_id":1,"status":"perhaps"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// A party brings at least one person.
	resp = post(`{"guest_id":7,"event_id":1,"status":"attending","guest_count":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = post(`{"guest_id":7,"event_id":1,"status":"attending","guest_count":-2}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = post(`{"guest_id":7,"event_id":1,"status":"attending","guest_count":2}`)
	require.Equal(t, http.StatusCreated, resp.Code)
}

func TestRSVPHandler_HandleSubmitRSVP_OmittedGuestCountDefaultsToOne(t *testing.T) {
	var submitted domain.RSVP
	svc := &stubRSVPService{
		submitFn: func(rsvp domain.RSVP) (domain.RSVP, error) {
			submitted = rsvp
			rsvp.ID = 1

			return rsvp, nil
		},
	}
	router := newRSVPRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/rsvps",
		strings.NewReader(`{"guest_id":7,"event_id":1,"status":"attending"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, 1, submitted.GuestCount)
}

func TestRSVPHandler_HandleGetActivityCapacity(t *testing.T) {
	svc := &stubRSVPService{
		capacityFn: func(activityID uint) (domain.ActivityCapacity, error) {
			capacity := 12
			available := 5

			return domain.ActivityCapacity{
				Capacity:       &capacity,
				AttendingCount: 7,
				Available:      &available,
			}, nil
		},
	}
	router := newRSVPRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/activities/3/capacity", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"attending_count":7`)
	assert.Contains(t, resp.Body.String(), `"available":5`)
}

func TestRSVPHandler_HandleGetCapacityAlerts(t *testing.T) {
	svc := &stubRSVPService{
		alertsFn: func() ([]domain.CapacityAlert, error) {
			return []domain.CapacityAlert{
				{
					ActivityID:     1,
					ActivityName:   "Snorkeling",
					Capacity:       10,
					AttendingCount: 10,
					AlertLevel:     domain.CapacityAlertFull,
					Message:        "Snorkeling is full (10/10)",
				},
			}, nil
		},
	}
	router := newRSVPRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/capacity-alerts", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"alert_level":"full"`)
}
