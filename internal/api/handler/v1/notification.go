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

type NotificationService interface {
	EmailGuest(ctx context.Context, guestID uint, subject, body string) (domain.NotificationLog, error)
	EmailGroup(ctx context.Context, groupID uint, subject, body string) (service.BulkEmailResult, error)
	History(ctx context.Context, channel string, limit int) ([]domain.NotificationLog, error)
}

type NotificationHandler struct {
	svc NotificationService
}

func NewNotificationHandler(svc NotificationService) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
	}
}

// HandleEmailGuest godoc
// @Summary      Email a single guest
// @Tags         notifications
// @Produce      json
// @Param        guestID   path      int  true "guest ID"
// @Param        request   body      request.EmailGuestRequest true "request body"
// @Success      200      {object}   domain.NotificationLog
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guests/{guestID}/notify [post]
func (h *NotificationHandler) HandleEmailGuest(ctx *gin.Context) {
	guestID, err := parseIDParam(ctx, "guestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.EmailGuestRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	log, err := h.svc.EmailGuest(ctx.Request.Context(), guestID, req.Subject, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGuestNotFound))
		case errors.Is(err, service.ErrGuestUnreachable):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrGuestUnreachable))
		default:
			err = fmt.Errorf("v1.HandleEmailGuest -> h.svc.EmailGuest -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, log)
}

// HandleEmailGroup godoc
// @Summary      Email every guest in a group
// @Tags         notifications
// @Produce      json
// @Param        request   body      request.EmailGroupRequest true "request body"
// @Success      200      {object}   service.BulkEmailResult
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /notifications/group [post]
func (h *NotificationHandler) HandleEmailGroup(ctx *gin.Context) {
	var req request.EmailGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.EmailGroup(ctx.Request.Context(), req.GroupID, req.Subject, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGroupNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleEmailGroup -> h.svc.EmailGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleNotificationHistory godoc
// @Summary      List notification delivery history
// @Tags         notifications
// @Produce      json
// @Param        channel   query     string false "delivery channel"
// @Param        limit     query     int    false "max results"
// @Success      200      {array}    domain.NotificationLog
// @Failure      500      {object}   response.Err
// @Router       /notifications [get]
func (h *NotificationHandler) HandleNotificationHistory(ctx *gin.Context) {
	logs, err := h.svc.History(ctx.Request.Context(), ctx.Query("channel"), parseQueryInt(ctx, "limit", 100))
	if err != nil {
		err = fmt.Errorf("v1.HandleNotificationHistory -> h.svc.History -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, logs)
}
