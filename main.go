package main

import (
	"log"
	"net/http"

	"drone-delivery-api/config"
	"drone-delivery-api/handlers"
	"drone-delivery-api/middleware"
	"drone-delivery-api/routes"
	"drone-delivery-api/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.New(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer st.Close()

	// Gin with default middleware (logger + recovery)
	r := gin.Default()

	// Session cookie, HTTP-only, signed with the secret key
	sessionStore := cookie.NewStore([]byte(cfg.SecretKey))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("session", sessionStore))

	// Cross-origin policy: configured origins only, cookies included
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Use(middleware.SecurityHeaders())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Drone Delivery Order Management API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Drone Delivery Order Management API",
			"health":  "/health",
			"roles":   []string{"customer", "admin"},
		})
	})

	routes.SetupRoutes(r, handlers.New(st))

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
