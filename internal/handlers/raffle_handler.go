package handlers

import (
	"fmt"
	"net/http"

	"github.com/ArowuTest/nft-raffle-backend/internal/middleware"
	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// RaffleHandler handles raffle-related HTTP requests
type RaffleHandler struct {
	raffleService services.RaffleService
}

// NewRaffleHandler creates a new RaffleHandler
func NewRaffleHandler(raffleService services.RaffleService) *RaffleHandler {
	return &RaffleHandler{raffleService: raffleService}
}

// ScheduleRaffle handles POST /raffles
func (h *RaffleHandler) ScheduleRaffle(c *gin.Context) {
	var req models.ScheduleRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	raffle, err := h.raffleService.ScheduleRaffle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, raffle)
}

// ExecuteRaffle handles POST /raffles/:id/execute
func (h *RaffleHandler) ExecuteRaffle(c *gin.Context) {
	executedBy := c.GetString(middleware.ContextUserEmail)
	if executedBy == "" {
		if v, ok := c.Get(middleware.ContextUserID); ok {
			executedBy = fmt.Sprint(v)
		}
	}

	raffle, err := h.raffleService.ExecuteRaffle(c.Request.Context(), c.Param("id"), executedBy)
	if err != nil {
		// A raffle that ran and failed is still reported with its log.
		if raffle != nil && raffle.Status == models.RaffleStatusFailed {
			c.JSON(statusFor(err), gin.H{"error": err.Error(), "raffle": raffle})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raffle)
}

// CancelRaffle handles POST /raffles/:id/cancel
func (h *RaffleHandler) CancelRaffle(c *gin.Context) {
	raffle, err := h.raffleService.CancelRaffle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raffle)
}

// GetRaffle handles GET /raffles/:id
func (h *RaffleHandler) GetRaffle(c *gin.Context) {
	raffle, err := h.raffleService.GetRaffle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raffle)
}

// ListRaffles handles GET /raffles?status=
func (h *RaffleHandler) ListRaffles(c *gin.Context) {
	raffles, err := h.raffleService.ListRaffles(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raffles)
}

// GetWinners handles GET /raffles/:id/winners
func (h *RaffleHandler) GetWinners(c *gin.Context) {
	winners, err := h.raffleService.GetWinners(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, winners)
}

// GetSummary handles GET /raffles/:id/summary
func (h *RaffleHandler) GetSummary(c *gin.Context) {
	summary, err := h.raffleService.GetSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// maxDrawBody caps the public draw request body.
const maxDrawBody = 1 << 20

// Draw handles POST /draw
func (h *RaffleHandler) Draw(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDrawBody)
	var req models.DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.raffleService.Draw(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
