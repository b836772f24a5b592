package handlers_fiber

import (
	"net/http"

	"taskboard/internal/api"

	"github.com/gofiber/fiber/v2"
)

// GetRoot is the API health check.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "ok"})
}

// GetReady reports 503 while the repository is unreachable.
func (h *Handler) GetReady(c *fiber.Ctx) error {
	if err := h.uc.Ready(c.UserContext()); err != nil {
		h.log.Warnw("readiness check failed", "error", err)
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ready"})
}
