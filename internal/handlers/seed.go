// internal/handlers/seed.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-backend/internal/services"
	"github.com/javajoker/catalog-backend/internal/utils"
)

type SeedHandler struct {
	seedService *services.SeedService
}

func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
	}
}

// GET /seed — wipes users and products and rebuilds the demo dataset.
func (h *SeedHandler) ExecuteSeed(c *gin.Context) {
	message, err := h.seedService.Run()
	if err != nil {
		utils.InternalErrorResponse(c, "Unexpected error, check server logs")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": message,
	})
}
