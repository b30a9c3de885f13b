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

type ContentService interface {
	CreatePage(ctx context.Context, page domain.ContentPage) (domain.ContentPage, error)
	GetPage(ctx context.Context, id uint) (domain.ContentPage, error)
	GetPageBySlug(ctx context.Context, slug string) (domain.ContentPage, error)
	UpdatePage(ctx context.Context, page domain.ContentPage) (domain.ContentPage, error)
	DeletePage(ctx context.Context, id uint) error
	ListPages(ctx context.Context) ([]domain.ContentPage, error)
	CreateSection(ctx context.Context, section domain.Section) (domain.Section, error)
	UpdateSection(ctx context.Context, section domain.Section) (domain.Section, error)
	DeleteSection(ctx context.Context, id uint) error
	ListSections(ctx context.Context, pageType string, pageID uint) ([]domain.Section, error)
	ValidateReferences(ctx context.Context, refs []domain.Reference) (domain.ReferenceValidation, error)
	DetectCircularReferences(ctx context.Context, pageType string, pageID uint) (bool, error)
}

type ContentHandler struct {
	svc ContentService
}

func NewContentHandler(svc ContentService) *ContentHandler {
	return &ContentHandler{
		svc: svc,
	}
}

func sectionFromRequest(req request.CreateSectionRequest) domain.Section {
	references := make([]domain.Reference, len(req.References))
	for i, ref := range req.References {
		references[i] = domain.Reference{Type: ref.Type, ID: ref.ID}
	}

	return domain.Section{
		PageType:     req.PageType,
		PageID:       req.PageID,
		DisplayOrder: req.DisplayOrder,
		Title:        req.Title,
		Body:         req.Body,
		References:   references,
	}
}

// HandleCreatePage godoc
// @Summary      Create a content page
// @Tags         content
// @Produce      json
// @Param        request   body      request.CreateContentPageRequest true "request body"
// @Success      201      {object}   domain.ContentPage
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pages [post]
func (h *ContentHandler) HandleCreatePage(ctx *gin.Context) {
	var req request.CreateContentPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	page, err := h.svc.CreatePage(ctx.Request.Context(), domain.ContentPage{
		Slug:   req.Slug,
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrPageSlugExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrPageSlugExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreatePage -> h.svc.CreatePage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, page)
}

// HandleGetPage godoc
// @Summary      Get a content page by ID
// @Tags         content
// @Produce      json
// @Param        pageID   path      int  true "page ID"
// @Success      200      {object}   domain.ContentPage
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pages/{pageID} [get]
func (h *ContentHandler) HandleGetPage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "pageID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	page, err := h.svc.GetPage(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPageNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetPage -> h.svc.GetPage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleGetPageBySlug godoc
// @Summary      Get a content page by slug
// @Tags         content
// @Produce      json
// @Param        slug   path      string  true "page slug"
// @Success      200      {object}   domain.ContentPage
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pages/slug/{slug} [get]
func (h *ContentHandler) HandleGetPageBySlug(ctx *gin.Context) {
	page, err := h.svc.GetPageBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPageNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetPageBySlug -> h.svc.GetPageBySlug -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleUpdatePage godoc
// @Summary      Update a content page
// @Tags         content
// @Produce      json
// @Param        pageID    path      int  true "page ID"
// @Param        request   body      request.UpdateContentPageRequest true "request body"
// @Success      200      {object}   domain.ContentPage
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pages/{pageID} [put]
func (h *ContentHandler) HandleUpdatePage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "pageID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateContentPageRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	page, err := h.svc.UpdatePage(ctx.Request.Context(), domain.ContentPage{
		ID:     id,
		Slug:   req.Slug,
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPageNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdatePage -> h.svc.UpdatePage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleDeletePage godoc
// @Summary      Delete a content page
// @Tags         content
// @Produce      json
// @Param        pageID   path      int  true "page ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /pages/{pageID} [delete]
func (h *ContentHandler) HandleDeletePage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "pageID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeletePage(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPageNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePage -> h.svc.DeletePage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListPages godoc
// @Summary      List content pages
// @Tags         content
// @Produce      json
// @Success      200      {array}    domain.ContentPage
// @Failure      500      {object}   response.Err
// @Router       /pages [get]
func (h *ContentHandler) HandleListPages(ctx *gin.Context) {
	pages, err := h.svc.ListPages(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPages -> h.svc.ListPages -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, pages)
}

// HandleCreateSection godoc
// @Summary      Create a section, validating its references
// @Tags         content
// @Produce      json
// @Param        request   body      request.CreateSectionRequest true "request body"
// @Success      201      {object}   domain.Section
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sections [post]
func (h *ContentHandler) HandleCreateSection(ctx *gin.Context) {
	var req request.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	section, err := h.svc.CreateSection(ctx.Request.Context(), sectionFromRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBrokenReference):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrBrokenReference))
		case errors.Is(err, service.ErrCircularReference):
			response.RenderErr(ctx, response.ErrConflict(service.ErrCircularReference))
		default:
			err = fmt.Errorf("v1.HandleCreateSection -> h.svc.CreateSection -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, section)
}

// HandleUpdateSection godoc
// @Summary      Update a section, re-validating its references
// @Tags         content
// @Produce      json
// @Param        sectionID   path      int  true "section ID"
// @Param        request     body      request.UpdateSectionRequest true "request body"
// @Success      200      {object}   domain.Section
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sections/{sectionID} [put]
func (h *ContentHandler) HandleUpdateSection(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "sectionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateSectionRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	section := sectionFromRequest(req.CreateSectionRequest)
	section.ID = id

	updated, err := h.svc.UpdateSection(ctx.Request.Context(), section)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSectionNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrSectionNotFound))
		case errors.Is(err, service.ErrBrokenReference):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrBrokenReference))
		case errors.Is(err, service.ErrCircularReference):
			response.RenderErr(ctx, response.ErrConflict(service.ErrCircularReference))
		default:
			err = fmt.Errorf("v1.HandleUpdateSection -> h.svc.UpdateSection -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteSection godoc
// @Summary      Delete a section
// @Tags         content
// @Produce      json
// @Param        sectionID   path      int  true "section ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sections/{sectionID} [delete]
func (h *ContentHandler) HandleDeleteSection(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "sectionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteSection(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrSectionNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteSection -> h.svc.DeleteSection -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListSections godoc
// @Summary      List a page's sections in display order
// @Tags         content
// @Produce      json
// @Param        page_type   query     string true "page type"
// @Param        page_id     query     int    true "page ID"
// @Success      200      {array}    domain.Section
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sections [get]
func (h *ContentHandler) HandleListSections(ctx *gin.Context) {
	pageType := ctx.Query("page_type")
	pageID := parseQueryInt(ctx, "page_id", 0)
	if pageType == "" || pageID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("page_type and page_id are required")))

		return
	}

	sections, err := h.svc.ListSections(ctx.Request.Context(), pageType, uint(pageID))
	if err != nil {
		err = fmt.Errorf("v1.HandleListSections -> h.svc.ListSections -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sections)
}

// HandleValidateReferences godoc
// @Summary      Validate a page's references
// @Tags         content
// @Produce      json
// @Param        page_type   query     string true "page type"
// @Param        page_id     query     int    true "page ID"
// @Success      200      {object}   domain.ReferenceValidation
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /references/validate [get]
func (h *ContentHandler) HandleValidateReferences(ctx *gin.Context) {
	pageType := ctx.Query("page_type")
	pageID := parseQueryInt(ctx, "page_id", 0)
	if pageType == "" || pageID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("page_type and page_id are required")))

		return
	}

	sections, err := h.svc.ListSections(ctx.Request.Context(), pageType, uint(pageID))
	if err != nil {
		err = fmt.Errorf("v1.HandleValidateReferences -> h.svc.ListSections -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	refs := make([]domain.Reference, 0)
	for _, s := range sections {
		refs = append(refs, s.References...)
	}

	validation, err := h.svc.ValidateReferences(ctx.Request.Context(), refs)
	if err != nil {
		err = fmt.Errorf("v1.HandleValidateReferences -> h.svc.ValidateReferences -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	circular, err := h.svc.DetectCircularReferences(ctx.Request.Context(), pageType, uint(pageID))
	if err != nil {
		err = fmt.Errorf("v1.HandleValidateReferences -> h.svc.DetectCircularReferences -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	validation.HasCircularReference = circular
	validation.Valid = validation.Valid && !circular

	ctx.JSON(http.StatusOK, validation)
}
