package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "shopdesk/internal/log"
	"shopdesk/internal/services"
)

type ClientHandler struct {
	Clients *services.ClientService
}

// GET /api/v1/clients?q=
func (h *ClientHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		out, err := h.Clients.Search(ctx, q)
		if err != nil {
			return fail(c, "clients.search", err)
		}
		return c.JSON(out)
	}
	out, err := h.Clients.GetAll(ctx)
	if err != nil {
		return fail(c, "clients.list", err)
	}
	return c.JSON(out)
}

// GET /api/v1/clients/:id
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	cl, ok, err := h.Clients.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, "clients.get", err)
	}
	if !ok {
		return absent(c, id)
	}
	return c.JSON(cl)
}

// POST /api/v1/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var form services.ClientForm
	if err := c.BodyParser(&form); err != nil {
		return badBody(c, "clients.create")
	}
	cl, err := h.Clients.Create(c.UserContext(), form)
	if err != nil {
		return fail(c, "clients.create", err)
	}
	applog.Audit(c, "clients.create", map[string]any{"client_id": cl.ID})
	return c.Status(fiber.StatusCreated).JSON(cl)
}

// PATCH /api/v1/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var patch services.ClientPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c, "clients.update")
	}
	id := c.Params("id")
	cl, err := h.Clients.Update(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "clients.update", err)
	}
	applog.Audit(c, "clients.update", map[string]any{"client_id": id})
	return c.JSON(cl)
}

// DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Clients.Delete(c.UserContext(), id); err != nil {
		return fail(c, "clients.delete", err)
	}
	applog.Audit(c, "clients.delete", map[string]any{"client_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
