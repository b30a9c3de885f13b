package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/api/handler/v1/request"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/api/handler/v1/response"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/service"
)

type ScheduleService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	ListEvents(ctx context.Context, status string) ([]domain.Event, error)
	PublishEvent(ctx context.Context, id uint) (domain.Event, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	GetActivity(ctx context.Context, id uint) (domain.Activity, error)
	UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id uint) error
	ListActivities(ctx context.Context, status string) ([]domain.Activity, error)
	PublishActivity(ctx context.Context, id uint) (domain.Activity, error)
}

type ScheduleHandler struct {
	svc ScheduleService
}

func NewScheduleHandler(svc ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         schedule
// @Produce      json
// @Param        request   body      request.CreateEventRequest true "request body"
// @Success      201      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events [post]
func (h *ScheduleHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Name:         req.Name,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		LocationID:   req.LocationID,
		RSVPDeadline: req.RSVPDeadline,
		Visibility:   req.Visibility,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTimeRange))

			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleGetEvent godoc
// @Summary      Get an event by ID
// @Tags         schedule
// @Produce      json
// @Param        eventID   path      int  true "event ID"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [get]
func (h *ScheduleHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         schedule
// @Produce      json
// @Param        eventID   path      int  true "event ID"
// @Param        request   body      request.UpdateEventRequest true "request body"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [put]
func (h *ScheduleHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		LocationID:   req.LocationID,
		RSVPDeadline: req.RSVPDeadline,
		Status:       req.Status,
		Visibility:   req.Visibility,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))
		case errors.Is(err, service.ErrInvalidTimeRange):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTimeRange))
		default:
			err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         schedule
// @Produce      json
// @Param        eventID   path      int  true "event ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [delete]
func (h *ScheduleHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteEvent(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListEvents godoc
// @Summary      List events
// @Tags         schedule
// @Produce      json
// @Param        status   query     string false "filter by status"
// @Success      200      {array}    domain.Event
// @Failure      500      {object}   response.Err
// @Router       /events [get]
func (h *ScheduleHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandlePublishEvent godoc
// @Summary      Publish a draft event
// @Tags         schedule
// @Produce      json
// @Param        eventID   path      int  true "event ID"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/publish [post]
func (h *ScheduleHandler) HandlePublishEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.PublishEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))

			return
		}

		err = fmt.Errorf("v1.HandlePublishEvent -> h.svc.PublishEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Tags         schedule
// @Produce      json
// @Param        request   body      request.CreateActivityRequest true "request body"
// @Success      201      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities [post]
func (h *ScheduleHandler) HandleCreateActivity(ctx *gin.Context) {
	var req request.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.CreateActivity(ctx.Request.Context(), domain.Activity{
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		LocationID:  req.LocationID,
		Capacity:    req.Capacity,
		Visibility:  req.Visibility,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTimeRange))

			return
		}

		err = fmt.Errorf("v1.HandleCreateActivity -> h.svc.CreateActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, activity)
}

// HandleGetActivity godoc
// @Summary      Get an activity by ID
// @Tags         schedule
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities/{activityID} [get]
func (h *ScheduleHandler) HandleGetActivity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "activityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.GetActivity(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrActivityNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetActivity -> h.svc.GetActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleUpdateActivity godoc
// @Summary      Update an activity
// @Tags         schedule
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Param        request      body      request.UpdateActivityRequest true "request body"
// @Success      200      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities/{activityID} [put]
func (h *ScheduleHandler) HandleUpdateActivity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "activityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateActivityRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.UpdateActivity(ctx.Request.Context(), domain.Activity{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		LocationID:  req.LocationID,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Visibility:  req.Visibility,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrActivityNotFound))
		case errors.Is(err, service.ErrInvalidTimeRange):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTimeRange))
		default:
			err = fmt.Errorf("v1.HandleUpdateActivity -> h.svc.UpdateActivity -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleDeleteActivity godoc
// @Summary      Delete an activity
// @Tags         schedule
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities/{activityID} [delete]
func (h *ScheduleHandler) HandleDeleteActivity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "activityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteActivity(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrActivityNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteActivity -> h.svc.DeleteActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListActivities godoc
// @Summary      List activities
// @Tags         schedule
// @Produce      json
// @Param        status   query     string false "filter by status"
// @Success      200      {array}    domain.Activity
// @Failure      500      {object}   response.Err
// @Router       /activities [get]
func (h *ScheduleHandler) HandleListActivities(ctx *gin.Context) {
	activities, err := h.svc.ListActivities(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListActivities -> h.svc.ListActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandlePublishActivity godoc
// @Summary      Publish a draft activity
// @Tags         schedule
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities/{activityID}/publish [post]
func (h *ScheduleHandler) HandlePublishActivity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "activityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	activity, err := h.svc.PublishActivity(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrActivityNotFound))

			return
		}

		err = fmt.Errorf("v1.HandlePublishActivity -> h.svc.PublishActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activity)
}
