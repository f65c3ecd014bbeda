package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "shopdesk/internal/log"
	"shopdesk/internal/services"
	"shopdesk/internal/validate"
)

type SupplierHandler struct {
	Suppliers *services.SupplierService
}

// GET /api/v1/suppliers?q=
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		out, err := h.Suppliers.Search(ctx, q)
		if err != nil {
			return fail(c, "suppliers.search", err)
		}
		return c.JSON(out)
	}
	out, err := h.Suppliers.GetAll(ctx)
	if err != nil {
		return fail(c, "suppliers.list", err)
	}
	return c.JSON(out)
}

// GET /api/v1/suppliers/:id
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.SupplierID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "supplier id must be a positive integer"})
	}
	sp, found, err := h.Suppliers.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, "suppliers.get", err)
	}
	if !found {
		return absent(c, strconv.Itoa(id))
	}
	return c.JSON(sp)
}

// POST /api/v1/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var form services.SupplierForm
	if err := c.BodyParser(&form); err != nil {
		return badBody(c, "suppliers.create")
	}
	sp, err := h.Suppliers.Create(c.UserContext(), form)
	if err != nil {
		return fail(c, "suppliers.create", err)
	}
	applog.Audit(c, "suppliers.create", map[string]any{"supplier_id": sp.ID})
	return c.Status(fiber.StatusCreated).JSON(sp)
}

// PATCH /api/v1/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.SupplierID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "supplier id must be a positive integer"})
	}
	var patch services.SupplierPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c, "suppliers.update")
	}
	sp, err := h.Suppliers.Update(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "suppliers.update", err)
	}
	applog.Audit(c, "suppliers.update", map[string]any{"supplier_id": id})
	return c.JSON(sp)
}

// DELETE /api/v1/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.SupplierID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "supplier id must be a positive integer"})
	}
	if err := h.Suppliers.Delete(c.UserContext(), id); err != nil {
		return fail(c, "suppliers.delete", err)
	}
	applog.Audit(c, "suppliers.delete", map[string]any{"supplier_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
