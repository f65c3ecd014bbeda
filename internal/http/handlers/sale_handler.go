package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "shopdesk/internal/log"
	"shopdesk/internal/services"
)

type SaleHandler struct {
	Sales *services.SaleService
}

// GET /api/v1/sales?q=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		out, err := h.Sales.Search(ctx, q)
		if err != nil {
			return fail(c, "sales.search", err)
		}
		return c.JSON(out)
	}
	out, err := h.Sales.GetAll(ctx)
	if err != nil {
		return fail(c, "sales.list", err)
	}
	return c.JSON(out)
}

// GET /api/v1/sales/:id
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	s, ok, err := h.Sales.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, "sales.get", err)
	}
	if !ok {
		return absent(c, id)
	}
	return c.JSON(s)
}

// POST /api/v1/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var form services.SaleForm
	if err := c.BodyParser(&form); err != nil {
		return badBody(c, "sales.create")
	}
	s, err := h.Sales.Create(c.UserContext(), form)
	if err != nil {
		return fail(c, "sales.create", err)
	}
	applog.Audit(c, "sales.create", map[string]any{"sale_id": s.ID, "total": s.Total})
	return c.Status(fiber.StatusCreated).JSON(s)
}

// PATCH /api/v1/sales/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var patch services.SalePatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c, "sales.update")
	}
	id := c.Params("id")
	s, err := h.Sales.Update(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "sales.update", err)
	}
	applog.Audit(c, "sales.update", map[string]any{"sale_id": id})
	return c.JSON(s)
}

// DELETE /api/v1/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Sales.Delete(c.UserContext(), id); err != nil {
		return fail(c, "sales.delete", err)
	}
	applog.Audit(c, "sales.delete", map[string]any{"sale_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
