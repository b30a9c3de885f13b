package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/api/handler/v1/request"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/api/handler/v1/response"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/service"
)

type PhotoService interface {
	Upload(ctx context.Context, guestID *uint, contentType, caption string, r io.Reader) (domain.Photo, error)
	GetPhoto(ctx context.Context, id uint) (domain.Photo, error)
	Open(ctx context.Context, id uint) (domain.Photo, io.ReadCloser, error)
	Moderate(ctx context.Context, id uint, status string) (domain.Photo, error)
	DeletePhoto(ctx context.Context, id uint) error
	ListPhotos(ctx context.Context, status string, limit int) ([]domain.Photo, error)
}

type PhotoHandler struct {
	svc PhotoService
}

func NewPhotoHandler(svc PhotoService) *PhotoHandler {
	return &PhotoHandler{
		svc: svc,
	}
}

// HandleUploadPhoto godoc
// @Summary      Upload a photo
// @Tags         photos
// @Accept       mpfd
// @Produce      json
// @Param        photo     formData  file   true  "photo file"
// @Param        caption   formData  string false "caption"
// @Param        guest_id  formData  int    false "uploading guest ID"
// @Success      201      {object}   domain.Photo
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /photos [post]
func (h *PhotoHandler) HandleUploadPhoto(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var guestID *uint
	if raw := ctx.PostForm("guest_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("guest_id must be a positive integer")))

			return
		}

		id := uint(parsed)
		guestID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadPhoto -> fileHeader.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}
	defer file.Close()

	photo, err := h.svc.Upload(ctx.Request.Context(), guestID, fileHeader.Header.Get("Content-Type"), ctx.PostForm("caption"), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedContentType):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUnsupportedContentType))
		case errors.Is(err, service.ErrGuestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGuestNotFound))
		default:
			err = fmt.Errorf("v1.HandleUploadPhoto -> h.svc.Upload -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, photo)
}

// HandleGetPhoto godoc
// @Summary      Get photo metadata
// @Tags         photos
// @Produce      json
// @Param        photoID   path      int  true "photo ID"
// @Success      200      {object}   domain.Photo
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /photos/{photoID} [get]
func (h *PhotoHandler) HandleGetPhoto(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "photoID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	photo, err := h.svc.GetPhoto(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPhotoNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetPhoto -> h.svc.GetPhoto -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, photo)
}

// HandleDownloadPhoto godoc
// @Summary      Download a photo's binary content
// @Tags         photos
// @Produce      octet-stream
// @Param        photoID   path      int  true "photo ID"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /photos/{photoID}/content [get]
func (h *PhotoHandler) HandleDownloadPhoto(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "photoID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	photo, rc, err := h.svc.Open(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPhotoNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDownloadPhoto -> h.svc.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}
	defer rc.Close()

	ctx.DataFromReader(http.StatusOK, photo.SizeBytes, photo.ContentType, rc, nil)
}

// HandleModeratePhoto godoc
// @Summary      Approve or reject a photo
// @Tags         photos
// @Produce      json
// @Param        photoID   path      int  true "photo ID"
// @Param        request   body      request.ModeratePhotoRequest true "request body"
// @Success      200      {object}   domain.Photo
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /photos/{photoID}/moderate [post]
func (h *PhotoHandler) HandleModeratePhoto(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "photoID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ModeratePhotoRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	photo, err := h.svc.Moderate(ctx.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPhotoNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleModeratePhoto -> h.svc.Moderate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, photo)
}

// HandleDeletePhoto godoc
// @Summary      Delete a photo and its stored object
// @Tags         photos
// @Produce      json
// @Param        photoID   path      int  true "photo ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /photos/{photoID} [delete]
func (h *PhotoHandler) HandleDeletePhoto(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "photoID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeletePhoto(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPhotoNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePhoto -> h.svc.DeletePhoto -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListPhotos godoc
// @Summary      List photos, optionally filtered by moderation status
// @Tags         photos
// @Produce      json
// @Param        status   query     string false "moderation status"
// @Param        limit    query     int    false "max results"
// @Success      200      {array}    domain.Photo
// @Failure      500      {object}   response.Err
// @Router       /photos [get]
func (h *PhotoHandler) HandleListPhotos(ctx *gin.Context) {
	photos, err := h.svc.ListPhotos(ctx.Request.Context(), ctx.Query("status"), parseQueryInt(ctx, "limit", 100))
	if err != nil {
		err = fmt.Errorf("v1.HandleListPhotos -> h.svc.ListPhotos -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, photos)
}
