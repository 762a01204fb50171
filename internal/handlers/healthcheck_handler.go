package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vidtube/backend/dto"
)

// Healthcheck reports liveness.
//
// @Summary Health check
// @Tags healthcheck
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Router /healthcheck [get]
func Healthcheck(c *fiber.Ctx) error {
	return dto.OK(c, "OK", "everything is OK")
}
