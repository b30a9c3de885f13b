package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/api/handler/v1/response"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/service"
)

type ItineraryService interface {
	Generate(ctx context.Context, guestID uint) (domain.Itinerary, error)
}

type ItineraryHandler struct {
	svc ItineraryService
}

func NewItineraryHandler(svc ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{
		svc: svc,
	}
}

// HandleGetItinerary godoc
// @Summary      Build a guest's personalized itinerary
// @Tags         itinerary
// @Produce      json
// @Param        guestID   path      int  true "guest ID"
// @Success      200      {object}   domain.Itinerary
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guests/{guestID}/itinerary [get]
func (h *ItineraryHandler) HandleGetItinerary(ctx *gin.Context) {
	guestID, err := parseIDParam(ctx, "guestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	itinerary, err := h.svc.Generate(ctx.Request.Context(), guestID)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGuestNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetItinerary -> h.svc.Generate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, itinerary)
}
