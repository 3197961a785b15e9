package handlers

import (
	"log"

	"arabyprompts/internal/models"
	"arabyprompts/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the back-office. Routes must be mounted behind
// middleware.AdminRequired.
type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/overview", h.HandleOverview)
	router.Get("/site", h.HandleGetSite)
	router.Put("/site", h.HandleUpdateSite)
	router.Put("/content", h.HandleUpdateContent)

	registerCollection(router, h, h.admin.Ads)
	registerCollection(router, h, h.admin.Services)
	registerCollection(router, h, h.admin.Styles)
	registerCollection(router, h, h.admin.Bundles)
	registerCollection(router, h, h.admin.Sections)
	registerCollection(router, h, h.admin.Users)

	router.Post("/sections/:index/move/:direction", h.HandleMoveSection)
	router.Post("/users/:id/plan/toggle", h.HandleTogglePlan)

	confirmations := router.Group("/confirmations")
	confirmations.Post("/:ticket/confirm", h.HandleConfirm)
	confirmations.Post("/:ticket/cancel", h.HandleCancel)
}

func (h *AdminHandler) HandleOverview(c *fiber.Ctx) error {
	return c.JSON(h.admin.Overview())
}

func (h *AdminHandler) HandleGetSite(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"site":    h.admin.SiteConfig(),
		"content": h.admin.ContentConfig(),
	})
}

func (h *AdminHandler) HandleUpdateSite(c *fiber.Ctx) error {
	var cfg models.SiteConfig
	if err := c.BodyParser(&cfg); err != nil {
		return badBody(c, err)
	}
	if err := h.admin.UpdateSiteConfig(cfg); err != nil {
		return serviceError(c, "Could not update site config", err)
	}
	return c.JSON(h.admin.SiteConfig())
}

func (h *AdminHandler) HandleUpdateContent(c *fiber.Ctx) error {
	var cfg models.ContentConfig
	if err := c.BodyParser(&cfg); err != nil {
		return badBody(c, err)
	}
	if err := h.admin.UpdateContentConfig(cfg); err != nil {
		return serviceError(c, "Could not update content", err)
	}
	return c.JSON(h.admin.ContentConfig())
}

// HandleMoveSection swaps a section with its neighbour. Moves past either
// end leave the order unchanged.
func (h *AdminHandler) HandleMoveSection(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Section index must be a number",
			"error":   err.Error(),
		})
	}
	direction := services.Direction(c.Params("direction"))
	if direction != services.DirectionUp && direction != services.DirectionDown {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Direction must be 'up' or 'down'",
		})
	}
	return c.JSON(h.admin.MoveSection(index, direction))
}

func (h *AdminHandler) HandleTogglePlan(c *fiber.Ctx) error {
	return c.JSON(h.admin.ToggleUserPlan(c.Params("id")))
}

// HandleConfirm performs the delete held by the ticket.
func (h *AdminHandler) HandleConfirm(c *fiber.Ctx) error {
	ticket := c.Params("ticket")
	if !h.admin.ConfirmDelete(ticket) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Unknown or expired confirmation",
		})
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}

func (h *AdminHandler) HandleCancel(c *fiber.Ctx) error {
	if !h.admin.CancelDelete(c.Params("ticket")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Unknown or expired confirmation",
		})
	}
	return c.JSON(fiber.Map{"message": "Cancelled"})
}

func (h *AdminHandler) requestDelete(c *fiber.Ctx, collection string) error {
	ticket, err := h.admin.RequestDelete(collection, c.Params("id"))
	if err != nil {
		return serviceError(c, "Could not request delete", err)
	}
	return c.Status(fiber.StatusAccepted).JSON(ticket)
}

type fieldEdit struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

// registerCollection mounts the generic list/replace/patch/add/delete routes
// of one managed collection under /<name>.
func registerCollection[T models.Entity, P models.Patch[T]](router fiber.Router, h *AdminHandler, col *services.CollectionAdmin[T, P]) {
	name := col.Name()
	routes := router.Group("/" + name)

	routes.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(col.List())
	})

	routes.Put("/", func(c *fiber.Ctx) error {
		var all []T
		if err := c.BodyParser(&all); err != nil {
			return badBody(c, err)
		}
		if err := col.Replace(all); err != nil {
			return serviceError(c, "Could not replace "+name, err)
		}
		log.Printf("Replaced %s (%d items)", name, len(all))
		return c.JSON(col.List())
	})

	routes.Post("/", func(c *fiber.Ctx) error {
		item, err := col.Add()
		if err != nil {
			return serviceError(c, "Could not add to "+name, err)
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	routes.Patch("/:id", func(c *fiber.Ctx) error {
		var patch P
		if err := c.BodyParser(&patch); err != nil {
			return badBody(c, err)
		}
		out, err := col.Patch(c.Params("id"), patch)
		if err != nil {
			return serviceError(c, "Could not update "+name, err)
		}
		return c.JSON(out)
	})

	routes.Patch("/:id/field", func(c *fiber.Ctx) error {
		var edit fieldEdit
		if err := c.BodyParser(&edit); err != nil {
			return badBody(c, err)
		}
		if edit.Field == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Field name is required",
			})
		}
		out, err := col.UpdateField(c.Params("id"), edit.Field, edit.Value)
		if err != nil {
			return serviceError(c, "Could not update "+name, err)
		}
		return c.JSON(out)
	})

	routes.Post("/:id/delete", func(c *fiber.Ctx) error {
		return h.requestDelete(c, name)
	})
}
