package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "shopdesk/internal/log"
	"shopdesk/internal/services"
)

type ProductHandler struct {
	Products *services.ProductService
}

// GET /api/v1/products?q=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		out, err := h.Products.Search(ctx, q)
		if err != nil {
			return fail(c, "products.search", err)
		}
		return c.JSON(out)
	}
	out, err := h.Products.GetAll(ctx)
	if err != nil {
		return fail(c, "products.list", err)
	}
	return c.JSON(out)
}

// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	p, ok, err := h.Products.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, "products.get", err)
	}
	if !ok {
		return absent(c, id)
	}
	return c.JSON(p)
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var form services.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return badBody(c, "products.create")
	}
	p, err := h.Products.Create(c.UserContext(), form)
	if err != nil {
		return fail(c, "products.create", err)
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PATCH /api/v1/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var patch services.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c, "products.update")
	}
	id := c.Params("id")
	p, err := h.Products.Update(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "products.update", err)
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Products.Delete(c.UserContext(), id); err != nil {
		return fail(c, "products.delete", err)
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
