package handler

import (
	"time"

	"go-challan-book/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns summary statistics over all challans.
// Optional query params start_date and end_date (YYYY-MM-DD, both or
// neither) restrict the stats to an inclusive date range.
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr == "" && endStr == "" {
		stats, err := h.service.GetStats()
		if err != nil {
			return respondError(c, err, "Failed to fetch dashboard statistics")
		}
		return c.JSON(stats)
	}

	if startStr == "" || endStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "start_date and end_date must be provided together"})
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start_date, use YYYY-MM-DD"})
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end_date, use YYYY-MM-DD"})
	}
	if end.Before(start) {
		return c.Status(400).JSON(fiber.Map{"error": "end_date must not be before start_date"})
	}

	stats, err := h.service.GetStatsForDateRange(start, end)
	if err != nil {
		return respondError(c, err, "Failed to fetch dashboard statistics for date range")
	}
	return c.JSON(stats)
}
