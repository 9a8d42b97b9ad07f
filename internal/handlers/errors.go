package handlers

import (
	"errors"
	"net/http"

	"github.com/ArowuTest/nft-raffle-backend/internal/owners"
	"github.com/ArowuTest/nft-raffle-backend/internal/raffle"
	"github.com/ArowuTest/nft-raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// statusFor maps service and draw errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, raffle.ErrInsufficientParticipants):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrUnknownRandomSource),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, raffle.ErrInvalidArgument),
		errors.Is(err, raffle.ErrDuplicateInput),
		errors.Is(err, owners.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRegistryFinalized),
		errors.Is(err, services.ErrRegistryNotFinalized),
		errors.Is(err, services.ErrRegistryEmpty),
		errors.Is(err, services.ErrRaffleNotSchedulable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Unexpected errors are logged and
// hidden from the caller.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err, "path", c.FullPath(), "requestId", c.GetString("RequestID"))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
