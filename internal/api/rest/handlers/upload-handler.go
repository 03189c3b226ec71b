package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/interview-express/experience_service/internal/api/rest/middleware"
	"github.com/interview-express/experience_service/internal/helper"
	"github.com/interview-express/experience_service/internal/interfaces"
	"github.com/interview-express/experience_service/pkg/utils"
)

type UploadResponse struct {
	URL string `json:"url"`
}

type UploadHandler struct {
	uploader interfaces.Uploader
	auth     helper.Auth
}

func NewUploadHandler(uploader interfaces.Uploader, auth helper.Auth) *UploadHandler {
	return &UploadHandler{uploader: uploader, auth: auth}
}

func (h *UploadHandler) SetupRoutes(api fiber.Router) {
	uploads := api.Group("/uploads", middleware.AuthMiddleware(h.auth))
	uploads.Post("/avatar", h.UploadAvatar)
}

// POST /api/v1/uploads/avatar
// form-data: file=<image>
func (h *UploadHandler) UploadAvatar(c *fiber.Ctx) error {
	if h.uploader == nil {
		return c.Status(503).JSON(fiber.Map{"message": "uploads are not configured"})
	}

	phone, err := h.auth.GetCurrentPhone(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": err.Error()})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "file is required"})
	}

	// validate extension
	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	if !allowed[ext] {
		return c.Status(400).JSON(fiber.Map{"message": "only jpg/jpeg/png/webp allowed"})
	}

	const maxSize = 5 * 1024 * 1024 //5MB
	if file.Size > maxSize {
		return c.Status(400).JSON(fiber.Map{"message": "file too large (max 5MB)"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "cannot open uploaded file"})
	}
	defer f.Close()

	b, err := utils.ReadAllLimit(f, maxSize)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	url, err := h.uploader.UploadBytes(ctx, "experience/avatars", phone+ext, b)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": fmt.Sprintf("avatar upload failed: %v", err)})
	}

	return c.JSON(UploadResponse{URL: url})
}
