package handlers

import (
	"net/http"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// RegistryHandler handles owner registry HTTP requests
type RegistryHandler struct {
	registryService services.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler
func NewRegistryHandler(registryService services.RegistryService) *RegistryHandler {
	return &RegistryHandler{registryService: registryService}
}

// CreateRegistry handles POST /registries
func (h *RegistryHandler) CreateRegistry(c *gin.Context) {
	var req models.CreateRegistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	registry, err := h.registryService.CreateRegistry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registry)
}

// AddOwners handles POST /registries/:id/owners
func (h *RegistryHandler) AddOwners(c *gin.Context) {
	var req models.AddOwnersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	registry, err := h.registryService.AddOwners(c.Request.Context(), c.Param("id"), req.Owners)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, registry)
}

// FinalizeRegistry handles POST /registries/:id/finalize
func (h *RegistryHandler) FinalizeRegistry(c *gin.Context) {
	registry, err := h.registryService.FinalizeRegistry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, registry)
}

// GetRegistry handles GET /registries/:id
func (h *RegistryHandler) GetRegistry(c *gin.Context) {
	registry, err := h.registryService.GetRegistry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, registry)
}

// ListRegistries handles GET /registries
func (h *RegistryHandler) ListRegistries(c *gin.Context) {
	registries, err := h.registryService.ListRegistries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, registries)
}
