package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// FilesHandler handles product image upload and static serving.
type FilesHandler struct {
	staticDir string
}

// NewFilesHandler creates a new FilesHandler storing files under staticDir.
func NewFilesHandler(staticDir string) *FilesHandler {
	return &FilesHandler{
		staticDir: staticDir,
	}
}

// RegisterRoutes registers the file routes with the Fiber app.
func (h *FilesHandler) RegisterRoutes(router fiber.Router) {
	fileRoutes := router.Group("/files")
	fileRoutes.Post("/product", h.HandleUploadProductImage)
	fileRoutes.Get("/product/:imageName", h.HandleGetProductImage)
}

// HandleUploadProductImage stores an uploaded product image under a fresh
// UUID filename and returns the name and URL to reach it.
func (h *FilesHandler) HandleUploadProductImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Make sure the file is an image",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("File extension %q is not allowed", ext),
		})
	}

	fileName := uuid.New().String() + ext
	if err := os.MkdirAll(h.staticDir, 0o755); err != nil {
		log.Printf("Error creating static dir %s: %v", h.staticDir, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store file",
		})
	}
	if err := c.SaveFile(file, filepath.Join(h.staticDir, fileName)); err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store file",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"fileName":  fileName,
		"secureUrl": c.BaseURL() + "/api/files/product/" + fileName,
	})
}

// HandleGetProductImage serves a stored product image by name.
func (h *FilesHandler) HandleGetProductImage(c *fiber.Ctx) error {
	imageName := filepath.Base(c.Params("imageName"))
	path := filepath.Join(h.staticDir, imageName)

	if _, err := os.Stat(path); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("No product found with image %s", imageName),
		})
	}
	return c.SendFile(path)
}
