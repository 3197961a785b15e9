package handlers

import (
	"fmt"
	"io"
	"strings"

	"arabyprompts/internal/services"

	"github.com/gofiber/fiber/v2"
)

// maxImageSize bounds uploads to the image-to-prompt endpoint.
const maxImageSize = 8 << 20

// GeneratorHandler handles the prompt generator endpoints.
type GeneratorHandler struct {
	generator *services.GeneratorService
}

func NewGeneratorHandler(generator *services.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{generator: generator}
}

// RegisterRoutes registers the generator routes with the Fiber app.
func (h *GeneratorHandler) RegisterRoutes(router fiber.Router) {
	genRoutes := router.Group("/generator")
	genRoutes.Post("/enhance", h.HandleEnhance)
	genRoutes.Post("/prompt", h.HandleGenerate)
	genRoutes.Post("/analyze", h.HandleAnalyze)
	genRoutes.Post("/image", h.HandleImage)
	genRoutes.Get("/history", h.HandleHistory)
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *GeneratorHandler) parseText(c *fiber.Ctx) (string, error) {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Text) == "" {
		return "", fmt.Errorf("text is required")
	}
	return req.Text, nil
}

// HandleEnhance expands a short idea into a richer prompt.
func (h *GeneratorHandler) HandleEnhance(c *fiber.Ctx) error {
	text, err := h.parseText(c)
	if err != nil {
		return badBody(c, err)
	}
	return c.JSON(fiber.Map{"result": h.generator.MagicEnhance(c.UserContext(), text)})
}

// HandleAnalyze runs the prompt doctor over a prompt.
func (h *GeneratorHandler) HandleAnalyze(c *fiber.Ctx) error {
	text, err := h.parseText(c)
	if err != nil {
		return badBody(c, err)
	}
	return c.JSON(fiber.Map{"result": h.generator.AnalyzePrompt(c.UserContext(), text)})
}

func (h *GeneratorHandler) HandleGenerate(c *fiber.Ctx) error {
	var req services.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	res, err := h.generator.Generate(c.UserContext(), req)
	if err != nil {
		return serviceError(c, "Could not generate prompt", err)
	}
	return c.JSON(res)
}

// HandleImage reads the multipart "image" file and reverse-engineers a prompt from it.
func (h *GeneratorHandler) HandleImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return badBody(c, err)
	}
	if fh.Size > maxImageSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"message": "Image is too large",
		})
	}
	mimeType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"message": "Upload must be an image",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return serviceError(c, "Could not read image", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageSize))
	if err != nil {
		return serviceError(c, "Could not read image", err)
	}

	return c.JSON(h.generator.ImageToPrompt(c.UserContext(), data, mimeType))
}

func (h *GeneratorHandler) HandleHistory(c *fiber.Ctx) error {
	return c.JSON(h.generator.History())
}
