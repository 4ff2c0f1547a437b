package routes

import (
	"net/http"
	"time"

	"deskly/handlers"
	"deskly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPlanRoutes registers the floor-plan editor endpoints.
func RegisterPlanRoutes(r *gin.Engine, plan *handlers.PlanHandler) {
	api := r.Group("/api/plans")
	{
		api.POST("/:locationID/load", plan.LoadPlanHandler)
		api.POST("/:locationID/save", plan.SavePlanHandler)
		api.GET("/:locationID/export", plan.ExportPlanHandler)
		api.POST("/:locationID/import", plan.ImportPlanHandler)
		api.DELETE("/:locationID/session", plan.ClosePlanHandler)
	}
}

// RegisterPresetRoutes registers the preset catalog endpoints.
func RegisterPresetRoutes(r *gin.Engine, preset *handlers.PresetHandler) {
	api := r.Group("/api/presets")
	{
		api.GET("", preset.ListPresetsHandler)
		api.POST("", preset.CreatePresetHandler)
		api.DELETE("/:id", preset.DeletePresetHandler)
	}
}

// RegisterAvailabilityRoutes registers the slot expansion endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, avail *handlers.AvailabilityHandler) {
	r.POST("/api/availability", avail.GetSlotsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, plan *handlers.PlanHandler, preset *handlers.PresetHandler, avail *handlers.AvailabilityHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPlanRoutes(r, plan)
	RegisterPresetRoutes(r, preset)
	RegisterAvailabilityRoutes(r, avail)
	RegisterHealthRoute(r)
}
