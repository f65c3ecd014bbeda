package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopdesk/internal/services"
)

type DashboardHandler struct {
	Stats *services.StatsService
}

// GET /api/v1/dashboard
func (h *DashboardHandler) Snapshot(c *fiber.Ctx) error {
	snap, err := h.Stats.Dashboard(c.UserContext())
	if err != nil {
		return fail(c, "dashboard.stats", err)
	}
	return c.JSON(snap)
}

// GET / — the back-office landing page.
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	snap, err := h.Stats.Dashboard(c.UserContext())
	if err != nil {
		return fail(c, "dashboard.page", err)
	}
	return c.Render("dashboard", fiber.Map{
		"TotalSales":    snap.TotalSales,
		"TotalRevenue":  snap.TotalRevenue,
		"TotalProducts": snap.TotalProducts,
		"TotalClients":  snap.TotalClients,
		"LowStock":      snap.LowStockProducts,
		"RecentSales":   snap.RecentSales,
	})
}
