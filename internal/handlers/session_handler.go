package handlers

import (
	"log"

	"arabyprompts/internal/middleware"
	"arabyprompts/internal/models"
	"arabyprompts/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles sign in, sign out and the signed-in user's profile.
type SessionHandler struct {
	sessions    *services.SessionService
	publicEntry string
}

func NewSessionHandler(sessions *services.SessionService, publicEntry string) *SessionHandler {
	return &SessionHandler{sessions: sessions, publicEntry: publicEntry}
}

// RegisterRoutes registers the session routes with the Fiber app.
func (h *SessionHandler) RegisterRoutes(router fiber.Router) {
	sessionRoutes := router.Group("/session")
	sessionRoutes.Post("/login", h.HandleLogin)
	sessionRoutes.Post("/logout", h.HandleLogout)

	router.Get("/me", middleware.AuthRequired(), h.HandleMe)
	router.Patch("/me", middleware.AuthRequired(), h.HandleUpdateProfile)
}

// HandleLogin signs a user in by e-mail and issues a token.
func (h *SessionHandler) HandleLogin(c *fiber.Ctx) error {
	var req services.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	token, user, err := h.sessions.Login(req)
	if err != nil {
		return serviceError(c, "Login failed", err)
	}
	log.Printf("User %s signed in", user.ID)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// HandleLogout empties the signed-in slot and sends the client to the public
// entry. Only the signed-in user's own token can empty the slot; anonymous
// requests are just redirected.
func (h *SessionHandler) HandleLogout(c *fiber.Ctx) error {
	if user := middleware.CurrentUser(c); user != nil {
		h.sessions.Logout()
		log.Printf("User %s signed out", user.ID)
	}
	return c.Redirect(h.publicEntry, fiber.StatusSeeOther)
}

func (h *SessionHandler) HandleMe(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// HandleUpdateProfile edits the signed-in user's own profile fields.
func (h *SessionHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var patch models.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c, err)
	}
	user, err := h.sessions.UpdateProfile(patch)
	if err != nil {
		return serviceError(c, "Could not update profile", err)
	}
	return c.JSON(user)
}
