package routes

import (
	"net/http"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/ArowuTest/nft-raffle-backend/internal/handlers"
	"github.com/ArowuTest/nft-raffle-backend/internal/middleware"
	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandlerDependencies holds the handlers wired into the router
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	RaffleHandler   *handlers.RaffleHandler
	RegistryHandler *handlers.RegistryHandler
	EventHandler    *handlers.EventHandler
	// MetricsHandler serves /metrics; nil uses the default prometheus registry.
	MetricsHandler http.Handler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)
		public.POST("/draw", deps.RaffleHandler.Draw)

		raffles := public.Group("/raffles")
		{
			raffles.GET("", deps.RaffleHandler.ListRaffles)
			raffles.GET("/:id", deps.RaffleHandler.GetRaffle)
			raffles.GET("/:id/winners", deps.RaffleHandler.GetWinners)
			raffles.GET("/:id/summary", deps.RaffleHandler.GetSummary)
		}

		public.GET("/registries/:id", deps.RegistryHandler.GetRegistry)
	}

	// Admin routes
	admin := router.Group("/api/v1")
	admin.Use(middleware.JWTAuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
	{
		registries := admin.Group("/registries")
		{
			registries.GET("", deps.RegistryHandler.ListRegistries)
			registries.POST("", deps.RegistryHandler.CreateRegistry)
			registries.POST("/:id/owners", deps.RegistryHandler.AddOwners)
			registries.POST("/:id/finalize", deps.RegistryHandler.FinalizeRegistry)
		}

		raffles := admin.Group("/raffles")
		{
			raffles.POST("", deps.RaffleHandler.ScheduleRaffle)
			raffles.POST("/:id/execute", deps.RaffleHandler.ExecuteRaffle)
			raffles.POST("/:id/cancel", deps.RaffleHandler.CancelRaffle)
		}

		admin.GET("/events", deps.EventHandler.ListEvents)
	}

	return router
}
