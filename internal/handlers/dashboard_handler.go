package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vidtube/backend/dto"
	"github.com/vidtube/backend/internal/authctx"
)

type DashboardHandler struct {
	Dashboard DashboardStore
}

// Stats handles GET /dashboard/stats for the authenticated channel.
//
// @Summary Channel statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	stats, err := h.Dashboard.Stats(c.Context(), user.ID)
	if err != nil {
		return dto.Internal(err.Error())
	}
	return dto.OK(c, stats, "channel stats fetched successfully")
}

// Videos handles GET /dashboard/videos: every video the channel owns,
// published or not.
func (h *DashboardHandler) Videos(c *fiber.Ctx) error {
	user, _ := authctx.UserFrom(c)

	videos, err := h.Dashboard.ChannelVideos(c.Context(), user.ID)
	if err != nil {
		return dto.Internal(err.Error())
	}

	message := "channel videos fetched successfully"
	if len(videos) == 0 {
		message = "no videos found"
	}
	return dto.OK(c, videos, message)
}
