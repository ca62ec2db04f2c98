package handlers

import (
	"log"

	"tienda/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SeedHandler exposes the one-shot database seeder.
type SeedHandler struct {
	service *services.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(service *services.SeedService) *SeedHandler {
	return &SeedHandler{
		service: service,
	}
}

// RegisterRoutes registers the seed route with the Fiber app.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/seed", h.HandleSeed)
}

// HandleSeed wipes and repopulates the user and product tables.
func (h *SeedHandler) HandleSeed(c *fiber.Ctx) error {
	marker, err := h.service.RunSeed()
	if err != nil {
		log.Printf("Error running seed: %v", err)
		return serviceError(c, err, "Could not run seed")
	}
	return c.JSON(fiber.Map{
		"message": marker,
	})
}
