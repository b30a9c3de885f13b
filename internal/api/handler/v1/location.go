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

type LocationService interface {
	CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error)
	GetLocation(ctx context.Context, id uint) (domain.Location, error)
	UpdateLocation(ctx context.Context, location domain.Location) (domain.Location, error)
	DeleteLocation(ctx context.Context, id uint) error
	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetTree(ctx context.Context) ([]*service.LocationTreeNode, error)
}

type LocationHandler struct {
	svc LocationService
}

func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{
		svc: svc,
	}
}

// HandleCreateLocation godoc
// @Summary      Create a location
// @Tags         locations
// @Produce      json
// @Param        request   body      request.CreateLocationRequest true "request body"
// @Success      201      {object}   domain.Location
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /locations [post]
func (h *LocationHandler) HandleCreateLocation(ctx *gin.Context) {
	var req request.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	location, err := h.svc.CreateLocation(ctx.Request.Context(), domain.Location{
		Name:             req.Name,
		Address:          req.Address,
		ParentLocationID: req.ParentLocationID,
	})
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrLocationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleCreateLocation -> h.svc.CreateLocation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, location)
}

// HandleGetLocation godoc
// @Summary      Get a location by ID
// @Tags         locations
// @Produce      json
// @Param        locationID   path      int  true "location ID"
// @Success      200      {object}   domain.Location
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /locations/{locationID} [get]
func (h *LocationHandler) HandleGetLocation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "locationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	location, err := h.svc.GetLocation(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrLocationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetLocation -> h.svc.GetLocation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, location)
}

// HandleUpdateLocation godoc
// @Summary      Update a location, rejecting cyclic parent chains
// @Tags         locations
// @Produce      json
// @Param        locationID   path      int  true "location ID"
// @Param        request      body      request.UpdateLocationRequest true "request body"
// @Success      200      {object}   domain.Location
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /locations/{locationID} [put]
func (h *LocationHandler) HandleUpdateLocation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "locationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateLocationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	location, err := h.svc.UpdateLocation(ctx.Request.Context(), domain.Location{
		ID:               id,
		Name:             req.Name,
		Address:          req.Address,
		ParentLocationID: req.ParentLocationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLocationNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrLocationNotFound))
		case errors.Is(err, service.ErrLocationSelfParented):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrLocationSelfParented))
		case errors.Is(err, service.ErrCircularLocation):
			response.RenderErr(ctx, response.ErrConflict(service.ErrCircularLocation))
		default:
			err = fmt.Errorf("v1.HandleUpdateLocation -> h.svc.UpdateLocation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, location)
}

// HandleDeleteLocation godoc
// @Summary      Delete a location, reparenting its children to the root
// @Tags         locations
// @Produce      json
// @Param        locationID   path      int  true "location ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /locations/{locationID} [delete]
func (h *LocationHandler) HandleDeleteLocation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "locationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteLocation(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrLocationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteLocation -> h.svc.DeleteLocation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListLocations godoc
// @Summary      List all locations
// @Tags         locations
// @Produce      json
// @Success      200      {array}    domain.Location
// @Failure      500      {object}   response.Err
// @Router       /locations [get]
func (h *LocationHandler) HandleListLocations(ctx *gin.Context) {
	locations, err := h.svc.ListLocations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListLocations -> h.svc.ListLocations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, locations)
}

// HandleGetLocationTree godoc
// @Summary      Get the location hierarchy as a tree
// @Tags         locations
// @Produce      json
// @Success      200      {array}    service.LocationTreeNode
// @Failure      500      {object}   response.Err
// @Router       /locations/tree [get]
func (h *LocationHandler) HandleGetLocationTree(ctx *gin.Context) {
	tree, err := h.svc.GetTree(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetLocationTree -> h.svc.GetTree -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tree)
}
