package handlers

import (
	"arabyprompts/internal/models"
	"arabyprompts/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PublicHandler serves the read-only pages of the site.
type PublicHandler struct {
	community *services.CommunityService
}

func NewPublicHandler(community *services.CommunityService) *PublicHandler {
	return &PublicHandler{community: community}
}

// RegisterRoutes registers the public routes with the Fiber app.
func (h *PublicHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/site", h.HandleSite)
	router.Get("/sections", h.HandleSections)
	router.Get("/styles", h.HandleStyles)
	router.Get("/bundles", h.HandleBundles)
	router.Get("/services", h.HandleServices)
	router.Get("/ads/banner/:placement", h.HandleBanner)
	router.Get("/feed", h.HandleFeed)
	router.Get("/leaderboard", h.HandleLeaderboard)
	router.Get("/courses", h.HandleCourses)
}

func (h *PublicHandler) HandleSite(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"site":    h.community.SiteConfig(),
		"content": h.community.ContentConfig(),
	})
}

// HandleSections returns the visible navigation entries in display order.
func (h *PublicHandler) HandleSections(c *fiber.Ctx) error {
	return c.JSON(h.community.VisibleSections())
}

func (h *PublicHandler) HandleStyles(c *fiber.Ctx) error {
	return c.JSON(h.community.Styles())
}

func (h *PublicHandler) HandleBundles(c *fiber.Ctx) error {
	return c.JSON(h.community.Bundles())
}

func (h *PublicHandler) HandleServices(c *fiber.Ctx) error {
	return c.JSON(h.community.ActiveServices())
}

// HandleBanner returns the first active banner for the placement.
func (h *PublicHandler) HandleBanner(c *fiber.Ctx) error {
	ad, ok := h.community.BannerFor(models.AdPlacement(c.Params("placement")))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No active banner for this placement",
		})
	}
	return c.JSON(ad)
}

func (h *PublicHandler) HandleFeed(c *fiber.Ctx) error {
	return c.JSON(h.community.Feed())
}

// HandleLeaderboard returns the top users; ?limit overrides the default of 5.
func (h *PublicHandler) HandleLeaderboard(c *fiber.Ctx) error {
	return c.JSON(h.community.Leaderboard(c.QueryInt("limit", services.LeaderboardSize)))
}

func (h *PublicHandler) HandleCourses(c *fiber.Ctx) error {
	return c.JSON(h.community.Courses())
}
