package handlers

import (
	"net/http"
	"strconv"

	"github.com/ArowuTest/nft-raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// EventHandler serves the audit trail
type EventHandler struct {
	eventService services.EventServiceInterface
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService services.EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents handles GET /events?page=&limit=
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page, "events": events})
}
