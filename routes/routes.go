package routes

import (
	"drone-delivery-api/handlers"
	"drone-delivery-api/middleware"
	"drone-delivery-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Auth (public) ──────────────────────────────────────────────
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/orders", h.ListOrders)
		customer.GET("/orders/:id", h.GetOrderDetail)
		customer.GET("/missions/:id", h.GetMission)
		customer.GET("/missions/:id/tracks", h.GetMissionTracks)
		customer.POST("/missions/:id/rating", h.RateMission)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/drones", h.ListDrones)
		admin.POST("/drones", h.CreateDrone)
		admin.PUT("/drones/:id", h.UpdateDrone)
		admin.DELETE("/drones/:id", h.DeleteDrone)

		admin.GET("/pilots", h.ListPilots)
		admin.POST("/pilots", h.CreatePilot)
		admin.PUT("/pilots/:id", h.UpdatePilot)
		admin.DELETE("/pilots/:id", h.DeletePilot)

		admin.GET("/missions", h.ListMissions)
		admin.PUT("/missions/:id", h.UpdateMissionStatus)

		admin.GET("/stats", h.Stats)
	}
}
