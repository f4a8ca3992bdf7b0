package handlers

import (
	"githubActivity/internal/store"

	"github.com/gofiber/fiber/v2"
)

const defaultLimit = store.Keep

// HTTP serves the lookup history read-only.
type HTTP struct {
	history store.HistoryInterface
}

func NewHTTP(h store.HistoryInterface) *HTTP {
	return &HTTP{
		history: h,
	}
}

func (h *HTTP) GetUserHistory(c *fiber.Ctx) error {
	username := c.Params("username")
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be positive"})
	}

	entries, err := h.history.Recent(username, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "history unavailable"})
	}
	if len(entries) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no history for " + username,
		})
	}
	return c.JSON(entries)
}

func (h *HTTP) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be positive"})
	}

	entries, err := h.history.All(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "history unavailable"})
	}
	if len(entries) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no history"})
	}
	return c.JSON(entries)
}
