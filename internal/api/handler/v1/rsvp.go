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
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/service"
)

type RSVPService interface {
	Submit(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error)
	UpdateResponse(ctx context.Context, rsvp domain.RSVP) (domain.RSVP, error)
	GetRSVP(ctx context.Context, id uint) (domain.RSVP, error)
	DeleteRSVP(ctx context.Context, id uint) error
	ListRSVPs(ctx context.Context, filter repository.RSVPFilter) ([]domain.RSVP, int64, error)
	ListGuestRSVPs(ctx context.Context, guestID uint) ([]domain.RSVP, error)
	CalculateActivityCapacity(ctx context.Context, activityID uint) (domain.ActivityCapacity, error)
	GenerateCapacityAlerts(ctx context.Context) ([]domain.CapacityAlert, error)
}

type RSVPHandler struct {
	svc RSVPService
}

func NewRSVPHandler(svc RSVPService) *RSVPHandler {
	return &RSVPHandler{
		svc: svc,
	}
}

func renderRSVPErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRSVPNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrRSVPNotFound))
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))
	case errors.Is(err, service.ErrActivityNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrActivityNotFound))
	case errors.Is(err, service.ErrRSVPExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrRSVPExists))
	case errors.Is(err, service.ErrCapacityExceeded):
		response.RenderErr(ctx, response.ErrConflict(service.ErrCapacityExceeded))
	case errors.Is(err, service.ErrRSVPTargetRequired):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrRSVPTargetRequired))
	case errors.Is(err, service.ErrRSVPDeadlinePassed):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrRSVPDeadlinePassed))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleSubmitRSVP godoc
// @Summary      Submit an RSVP
// @Tags         rsvps
// @Produce      json
// @Param        request   body      request.SubmitRSVPRequest true "request body"
// @Success      201      {object}   domain.RSVP
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rsvps [post]
func (h *RSVPHandler) HandleSubmitRSVP(ctx *gin.Context) {
	var req request.SubmitRSVPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	rsvp, err := h.svc.Submit(ctx.Request.Context(), domain.RSVP{
		GuestID:      req.GuestID,
		EventID:      req.EventID,
		ActivityID:   req.ActivityID,
		Status:       req.Status,
		GuestCount:   req.PartySize(),
		DietaryNotes: req.DietaryNotes,
	})
	if err != nil {
		renderRSVPErr(ctx, fmt.Errorf("v1.HandleSubmitRSVP -> h.svc.Submit -> %w", err))

		return
	}

	ctx.JSON(http.StatusCreated, rsvp)
}

// HandleUpdateRSVP godoc
// @Summary      Update an RSVP
// @Tags         rsvps
// @Produce      json
// @Param        rsvpID    path      int  true "RSVP ID"
// @Param        request   body      request.UpdateRSVPRequest true "request body"
// @Success      200      {object}   domain.RSVP
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rsvps/{rsvpID} [put]
func (h *RSVPHandler) HandleUpdateRSVP(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "rsvpID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateRSVPRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	rsvp, err := h.svc.UpdateResponse(ctx.Request.Context(), domain.RSVP{
		ID:           id,
		Status:       req.Status,
		GuestCount:   req.PartySize(),
		DietaryNotes: req.DietaryNotes,
	})
	if err != nil {
		renderRSVPErr(ctx, fmt.Errorf("v1.HandleUpdateRSVP -> h.svc.UpdateResponse -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, rsvp)
}

// HandleGetRSVP godoc
// @Summary      Get an RSVP by ID
// @Tags         rsvps
// @Produce      json
// @Param        rsvpID   path      int  true "RSVP ID"
// @Success      200      {object}   domain.RSVP
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rsvps/{rsvpID} [get]
func (h *RSVPHandler) HandleGetRSVP(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "rsvpID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	rsvp, err := h.svc.GetRSVP(ctx.Request.Context(), id)
	if err != nil {
		renderRSVPErr(ctx, fmt.Errorf("v1.HandleGetRSVP -> h.svc.GetRSVP -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, rsvp)
}

// HandleDeleteRSVP godoc
// @Summary      Delete an RSVP
// @Tags         rsvps
// @Produce      json
// @Param        rsvpID   path      int  true "RSVP ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rsvps/{rsvpID} [delete]
func (h *RSVPHandler) HandleDeleteRSVP(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "rsvpID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteRSVP(ctx.Request.Context(), id); err != nil {
		renderRSVPErr(ctx, fmt.Errorf("v1.HandleDeleteRSVP -> h.svc.DeleteRSVP -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListRSVPs godoc
// @Summary      List RSVPs
// @Tags         rsvps
// @Produce      json
// @Param        guest_id     query     int    false "filter by guest"
// @Param        event_id     query     int    false "filter by event"
// @Param        activity_id  query     int    false "filter by activity"
// @Param        status       query     string false "filter by status"
// @Param        page         query     int    false "page number"
// @Param        page_size    query     int    false "page size"
// @Success      200      {object}   map[string]interface{}
// @Failure      500      {object}   response.Err
// @Router       /rsvps [get]
func (h *RSVPHandler) HandleListRSVPs(ctx *gin.Context) {
	filter := repository.RSVPFilter{
		GuestID:    uint(parseQueryInt(ctx, "guest_id", 0)),
		EventID:    uint(parseQueryInt(ctx, "event_id", 0)),
		ActivityID: uint(parseQueryInt(ctx, "activity_id", 0)),
		Status:     ctx.Query("status"),
		Page:       parseQueryInt(ctx, "page", 1),
		PageSize:   parseQueryInt(ctx, "page_size", 0),
	}

	rsvps, total, err := h.svc.ListRSVPs(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListRSVPs -> h.svc.ListRSVPs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"rsvps": rsvps,
		"total": total,
	})
}

// HandleGetActivityCapacity godoc
// @Summary      Get an activity's capacity usage
// @Tags         rsvps
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200      {object}   domain.ActivityCapacity
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities/{activityID}/capacity [get]
func (h *RSVPHandler) HandleGetActivityCapacity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "activityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	capacity, err := h.svc.CalculateActivityCapacity(ctx.Request.Context(), id)
	if err != nil {
		renderRSVPErr(ctx, fmt.Errorf("v1.HandleGetActivityCapacity -> h.svc.CalculateActivityCapacity -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, capacity)
}

// HandleGetCapacityAlerts godoc
// @Summary      List capacity alerts for filling activities
// @Tags         rsvps
// @Produce      json
// @Success      200      {array}    domain.CapacityAlert
// @Failure      500      {object}   response.Err
// @Router       /capacity-alerts [get]
func (h *RSVPHandler) HandleGetCapacityAlerts(ctx *gin.Context) {
	alerts, err := h.svc.GenerateCapacityAlerts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCapacityAlerts -> h.svc.GenerateCapacityAlerts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, alerts)
}
