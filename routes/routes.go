package routes

import (
	"os"

	"github.com/stuffkeeper/stuffkeeper/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Session middleware backs the per-session item edit drafts.
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "stuffkeeper-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("stuffkeeper", store))

	// Uploaded images are served straight from disk.
	router.Static("/uploads", "./uploads")

	api := router.Group("")
	{
		initCategoryRoutes(api)
		initItemRoutes(api)
	}

	return router
}
