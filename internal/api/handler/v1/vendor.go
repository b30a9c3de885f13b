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

type VendorService interface {
	CreateVendor(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error)
	GetVendor(ctx context.Context, id uint) (domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error)
	DeleteVendor(ctx context.Context, id uint) error
	ListVendors(ctx context.Context, category string) ([]domain.Vendor, error)
}

type VendorHandler struct {
	svc VendorService
}

func NewVendorHandler(svc VendorService) *VendorHandler {
	return &VendorHandler{
		svc: svc,
	}
}

// HandleCreateVendor godoc
// @Summary      Create a vendor
// @Tags         vendors
// @Produce      json
// @Param        request   body      request.CreateVendorRequest true "request body"
// @Success      201      {object}   domain.Vendor
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /vendors [post]
func (h *VendorHandler) HandleCreateVendor(ctx *gin.Context) {
	var req request.CreateVendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	vendor, err := h.svc.CreateVendor(ctx.Request.Context(), domain.Vendor{
		Name:     req.Name,
		Category: req.Category,
		Contact:  req.Contact,
		Notes:    req.Notes,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateVendor -> h.svc.CreateVendor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, vendor)
}

// HandleGetVendor godoc
// @Summary      Get a vendor by ID
// @Tags         vendors
// @Produce      json
// @Param        vendorID   path      int  true "vendor ID"
// @Success      200      {object}   domain.Vendor
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /vendors/{vendorID} [get]
func (h *VendorHandler) HandleGetVendor(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "vendorID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	vendor, err := h.svc.GetVendor(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrVendorNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetVendor -> h.svc.GetVendor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

// HandleUpdateVendor godoc
// @Summary      Update a vendor
// @Tags         vendors
// @Produce      json
// @Param        vendorID   path      int  true "vendor ID"
// @Param        request    body      request.UpdateVendorRequest true "request body"
// @Success      200      {object}   domain.Vendor
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /vendors/{vendorID} [put]
func (h *VendorHandler) HandleUpdateVendor(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "vendorID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateVendorRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	vendor, err := h.svc.UpdateVendor(ctx.Request.Context(), domain.Vendor{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Contact:  req.Contact,
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrVendorNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateVendor -> h.svc.UpdateVendor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

// HandleDeleteVendor godoc
// @Summary      Delete a vendor
// @Tags         vendors
// @Produce      json
// @Param        vendorID   path      int  true "vendor ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /vendors/{vendorID} [delete]
func (h *VendorHandler) HandleDeleteVendor(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "vendorID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteVendor(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrVendorNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteVendor -> h.svc.DeleteVendor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListVendors godoc
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Param        category   query     string false "filter by category"
// @Success      200      {array}    domain.Vendor
// @Failure      500      {object}   response.Err
// @Router       /vendors [get]
func (h *VendorHandler) HandleListVendors(ctx *gin.Context) {
	vendors, err := h.svc.ListVendors(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListVendors -> h.svc.ListVendors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, vendors)
}
