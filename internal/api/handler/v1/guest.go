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

type GuestService interface {
	CreateGuest(ctx context.Context, guest domain.Guest) (domain.Guest, error)
	ImportGuests(ctx context.Context, guests []domain.Guest) ([]domain.Guest, error)
	GetGuest(ctx context.Context, id uint) (domain.Guest, error)
	UpdateGuest(ctx context.Context, guest domain.Guest) (domain.Guest, error)
	DeleteGuest(ctx context.Context, id uint) error
	ListGuests(ctx context.Context, filter repository.GuestFilter) ([]domain.Guest, int64, error)
	CreateGroup(ctx context.Context, group domain.GuestGroup) (domain.GuestGroup, error)
	GetGroup(ctx context.Context, id uint) (domain.GuestGroup, error)
	ListGroups(ctx context.Context) ([]domain.GuestGroup, error)
}

type GuestHandler struct {
	svc GuestService
}

func NewGuestHandler(svc GuestService) *GuestHandler {
	return &GuestHandler{
		svc: svc,
	}
}

// HandleCreateGuest godoc
// @Summary      Create a guest
// @Tags         guests
// @Produce      json
// @Param        request   body      request.CreateGuestRequest true "request body"
// @Success      201      {object}   domain.Guest
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guests [post]
func (h *GuestHandler) HandleCreateGuest(ctx *gin.Context) {
	var req request.CreateGuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	guest, err := h.svc.CreateGuest(ctx.Request.Context(), domain.Guest{
		GroupID:      req.GroupID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		AgeCategory:  req.AgeCategory,
		GuestType:    req.GuestType,
		DietaryNotes: req.DietaryNotes,
	})
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrGroupNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleCreateGuest -> h.svc.CreateGuest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, guest)
}

// HandleImportGuests godoc
// @Summary      Import guests in bulk
// @Tags         guests
// @Produce      json
// @Param        request   body      request.ImportGuestsRequest true "request body"
// @Success      201      {array}    domain.Guest
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guests/import [post]
func (h *GuestHandler) HandleImportGuests(ctx *gin.Context) {
	var req request.ImportGuestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	guests := make([]domain.Guest, len(req.Guests))
	for i, g := range req.Guests {
		guests[i] = domain.Guest{
			GroupID:      g.GroupID,
			FirstName:    g.FirstName,
			LastName:     g.LastName,
			Email:        g.Email,
			Phone:        g.Phone,
			AgeCategory:  g.AgeCategory,
			GuestType:    g.GuestType,
			DietaryNotes: g.DietaryNotes,
		}
	}

	created, err := h.svc.ImportGuests(ctx.Request.Context(), guests)
	if err != nil {
		err = fmt.Errorf("v1.HandleImportGuests -> h.svc.ImportGuests -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetGuest godoc
// @Summary      Get a guest by ID
// @Tags         guests
// @Produce      json
// @Param        guestID   path      int  true "guest ID"
// @Success      200      {object}   domain.Guest
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guests/{guestID} [get]
func (h *GuestHandler) HandleGetGuest(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "guestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	guest, err := h.svc.GetGuest(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGuestNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetGuest -> h.svc.GetGuest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, guest)
}

// HandleUpdateGuest godoc
// @Summary      Update a guest
// @Tags         guests
// @Produce      json
// @Param        guestID   path      int  true "guest ID"
// @Param        request   body      request.UpdateGuestRequest true "request body"
// @Success      200      {object}   domain.Guest
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guests/{guestID} [put]
func (h *GuestHandler) HandleUpdateGuest(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "guestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateGuestRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	guest, err := h.svc.UpdateGuest(ctx.Request.Context(), domain.Guest{
		ID:           id,
		GroupID:      req.GroupID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		AgeCategory:  req.AgeCategory,
		GuestType:    req.GuestType,
		DietaryNotes: req.DietaryNotes,
	})
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGuestNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateGuest -> h.svc.UpdateGuest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, guest)
}

// HandleDeleteGuest godoc
// @Summary      Delete a guest
// @Tags         guests
// @Produce      json
// @Param        guestID   path      int  true "guest ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guests/{guestID} [delete]
func (h *GuestHandler) HandleDeleteGuest(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "guestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteGuest(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGuestNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteGuest -> h.svc.DeleteGuest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListGuests godoc
// @Summary      List guests
// @Tags         guests
// @Produce      json
// @Param        group_id      query     int    false "filter by group"
// @Param        guest_type    query     string false "filter by guest type"
// @Param        age_category  query     string false "filter by age category"
// @Param        page          query     int    false "page number"
// @Param        page_size     query     int    false "page size"
// @Success      200      {object}   map[string]interface{}
// @Failure      500      {object}   response.Err
// @Router       /guests [get]
func (h *GuestHandler) HandleListGuests(ctx *gin.Context) {
	filter := repository.GuestFilter{
		GroupID:     uint(parseQueryInt(ctx, "group_id", 0)),
		GuestType:   ctx.Query("guest_type"),
		AgeCategory: ctx.Query("age_category"),
		Page:        parseQueryInt(ctx, "page", 1),
		PageSize:    parseQueryInt(ctx, "page_size", 0),
	}

	guests, total, err := h.svc.ListGuests(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListGuests -> h.svc.ListGuests -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"guests": guests,
		"total":  total,
	})
}

// HandleCreateGroup godoc
// @Summary      Create a guest group
// @Tags         guests
// @Produce      json
// @Param        request   body      request.CreateGuestGroupRequest true "request body"
// @Success      201      {object}   domain.GuestGroup
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guest-groups [post]
func (h *GuestHandler) HandleCreateGroup(ctx *gin.Context) {
	var req request.CreateGuestGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	group, err := h.svc.CreateGroup(ctx.Request.Context(), domain.GuestGroup{Name: req.Name})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateGroup -> h.svc.CreateGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// HandleListGroups godoc
// @Summary      List guest groups
// @Tags         guests
// @Produce      json
// @Success      200      {array}    domain.GuestGroup
// @Failure      500      {object}   response.Err
// @Router       /guest-groups [get]
func (h *GuestHandler) HandleListGroups(ctx *gin.Context) {
	groups, err := h.svc.ListGroups(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListGroups -> h.svc.ListGroups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, groups)
}
