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

type AccommodationService interface {
	CreateAccommodation(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error)
	GetAccommodation(ctx context.Context, id uint) (domain.Accommodation, error)
	UpdateAccommodation(ctx context.Context, accommodation domain.Accommodation) (domain.Accommodation, error)
	DeleteAccommodation(ctx context.Context, id uint) error
	ListAccommodations(ctx context.Context) ([]domain.Accommodation, error)
	CreateRoomType(ctx context.Context, roomType domain.RoomType) (domain.RoomType, error)
	UpdateRoomType(ctx context.Context, roomType domain.RoomType) (domain.RoomType, error)
	DeleteRoomType(ctx context.Context, id uint) error
	ListRoomTypes(ctx context.Context, accommodationID uint) ([]domain.RoomType, error)
	AssignRoom(ctx context.Context, assignment domain.RoomAssignment) (domain.RoomAssignment, error)
	UnassignRoom(ctx context.Context, id uint) error
	ListGuestStays(ctx context.Context, guestID uint) ([]domain.RoomAssignment, error)
}

type AccommodationHandler struct {
	svc AccommodationService
}

func NewAccommodationHandler(svc AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{
		svc: svc,
	}
}

// HandleCreateAccommodation godoc
// @Summary      Create an accommodation
// @Tags         accommodations
// @Produce      json
// @Param        request   body      request.CreateAccommodationRequest true "request body"
// @Success      201      {object}   domain.Accommodation
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accommodations [post]
func (h *AccommodationHandler) HandleCreateAccommodation(ctx *gin.Context) {
	var req request.CreateAccommodationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	accommodation, err := h.svc.CreateAccommodation(ctx.Request.Context(), domain.Accommodation{
		Name:        req.Name,
		LocationID:  req.LocationID,
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateAccommodation -> h.svc.CreateAccommodation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, accommodation)
}

// HandleGetAccommodation godoc
// @Summary      Get an accommodation by ID
// @Tags         accommodations
// @Produce      json
// @Param        accommodationID   path      int  true "accommodation ID"
// @Success      200      {object}   domain.Accommodation
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accommodations/{accommodationID} [get]
func (h *AccommodationHandler) HandleGetAccommodation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "accommodationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	accommodation, err := h.svc.GetAccommodation(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAccommodationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAccommodationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetAccommodation -> h.svc.GetAccommodation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, accommodation)
}

// HandleUpdateAccommodation godoc
// @Summary      Update an accommodation
// @Tags         accommodations
// @Produce      json
// @Param        accommodationID   path      int  true "accommodation ID"
// @Param        request           body      request.UpdateAccommodationRequest true "request body"
// @Success      200      {object}   domain.Accommodation
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accommodations/{accommodationID} [put]
func (h *AccommodationHandler) HandleUpdateAccommodation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "accommodationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateAccommodationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	accommodation, err := h.svc.UpdateAccommodation(ctx.Request.Context(), domain.Accommodation{
		ID:          id,
		Name:        req.Name,
		LocationID:  req.LocationID,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrAccommodationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAccommodationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateAccommodation -> h.svc.UpdateAccommodation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, accommodation)
}

// HandleDeleteAccommodation godoc
// @Summary      Delete an accommodation
// @Tags         accommodations
// @Produce      json
// @Param        accommodationID   path      int  true "accommodation ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accommodations/{accommodationID} [delete]
func (h *AccommodationHandler) HandleDeleteAccommodation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "accommodationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteAccommodation(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAccommodationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAccommodationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteAccommodation -> h.svc.DeleteAccommodation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListAccommodations godoc
// @Summary      List accommodations
// @Tags         accommodations
// @Produce      json
// @Success      200      {array}    domain.Accommodation
// @Failure      500      {object}   response.Err
// @Router       /accommodations [get]
func (h *AccommodationHandler) HandleListAccommodations(ctx *gin.Context) {
	accommodations, err := h.svc.ListAccommodations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAccommodations -> h.svc.ListAccommodations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, accommodations)
}

// HandleCreateRoomType godoc
// @Summary      Create a room type for an accommodation
// @Tags         accommodations
// @Produce      json
// @Param        accommodationID   path      int  true "accommodation ID"
// @Param        request           body      request.CreateRoomTypeRequest true "request body"
// @Success      201      {object}   domain.RoomType
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accommodations/{accommodationID}/room-types [post]
func (h *AccommodationHandler) HandleCreateRoomType(ctx *gin.Context) {
	accommodationID, err := parseIDParam(ctx, "accommodationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CreateRoomTypeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	roomType, err := h.svc.CreateRoomType(ctx.Request.Context(), domain.RoomType{
		AccommodationID: accommodationID,
		Name:            req.Name,
		Capacity:        req.Capacity,
		NightlyCost:     req.NightlyCost,
	})
	if err != nil {
		if errors.Is(err, service.ErrAccommodationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAccommodationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleCreateRoomType -> h.svc.CreateRoomType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, roomType)
}

// HandleUpdateRoomType godoc
// @Summary      Update a room type
// @Tags         accommodations
// @Produce      json
// @Param        roomTypeID   path      int  true "room type ID"
// @Param        request      body      request.CreateRoomTypeRequest true "request body"
// @Success      200      {object}   domain.RoomType
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /room-types/{roomTypeID} [put]
func (h *AccommodationHandler) HandleUpdateRoomType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "roomTypeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CreateRoomTypeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	roomType, err := h.svc.UpdateRoomType(ctx.Request.Context(), domain.RoomType{
		ID:          id,
		Name:        req.Name,
		Capacity:    req.Capacity,
		NightlyCost: req.NightlyCost,
	})
	if err != nil {
		if errors.Is(err, service.ErrRoomTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrRoomTypeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateRoomType -> h.svc.UpdateRoomType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, roomType)
}

// HandleDeleteRoomType godoc
// @Summary      Delete a room type
// @Tags         accommodations
// @Produce      json
// @Param        roomTypeID   path      int  true "room type ID"
// @Success      204      {object}   nil
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /room-types/{roomTypeID} [delete]
func (h *AccommodationHandler) HandleDeleteRoomType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "roomTypeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteRoomType(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRoomTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrRoomTypeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRoomType -> h.svc.DeleteRoomType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListRoomTypes godoc
// @Summary      List an accommodation's room types
// @Tags         accommodations
// @Produce      json
// @Param        accommodationID   path      int  true "accommodation ID"
// @Success      200      {array}    domain.RoomType
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /accommodations/{accommodationID}/room-types [get]
func (h *AccommodationHandler) HandleListRoomTypes(ctx *gin.Context) {
	accommodationID, err := parseIDParam(ctx, "accommodationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	roomTypes, err := h.svc.ListRoomTypes(ctx.Request.Context(), accommodationID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListRoomTypes -> h.svc.ListRoomTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, roomTypes)
}

// HandleAssignRoom godoc
// @Summary      Assign a guest to a room
// @Tags         accommodations
// @Produce      json
// @Param        request   body      request.AssignRoomRequest true "request body"
// @Success      201      {object}   domain.RoomAssignment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /room-assignments [post]
func (h *AccommodationHandler) HandleAssignRoom(ctx *gin.Context) {
	var req request.AssignRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	assignment, err := h.svc.AssignRoom(ctx.Request.Context(), domain.RoomAssignment{
		GuestID:    req.GuestID,
		RoomTypeID: req.RoomTypeID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGuestNotFound))
		case errors.Is(err, service.ErrRoomTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrRoomTypeNotFound))
		case errors.Is(err, service.ErrInvalidStayRange):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidStayRange))
		default:
			err = fmt.Errorf("v1.HandleAssignRoom -> h.svc.AssignRoom -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, assignment)
}

// HandleUnassignRoom godoc
// @Summary      Remove a room assignment
// @Tags         accommodations
// @Produce      json
// @Param        assignmentID   path      int  true "assignment ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /room-assignments/{assignmentID} [delete]
func (h *AccommodationHandler) HandleUnassignRoom(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "assignmentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.UnassignRoom(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRoomAssignmentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrRoomAssignmentNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUnassignRoom -> h.svc.UnassignRoom -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListGuestStays godoc
// @Summary      List a guest's room assignments
// @Tags         accommodations
// @Produce      json
// @Param        guestID   path      int  true "guest ID"
// @Success      200      {array}    domain.RoomAssignment
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guests/{guestID}/room-assignments [get]
func (h *AccommodationHandler) HandleListGuestStays(ctx *gin.Context) {
	guestID, err := parseIDParam(ctx, "guestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stays, err := h.svc.ListGuestStays(ctx.Request.Context(), guestID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListGuestStays -> h.svc.ListGuestStays -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stays)
}
