package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hive-match.backend/internal/interfaces/http/handlers"
	"hive-match.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	profileHandler   *handlers.ProfileHandler
	matchHandler     *handlers.MatchHandler
	adminHandler     *handlers.AdminHandler
	authMiddleware   gin.HandlerFunc
	adminMiddleware  gin.HandlerFunc
	setPasswordLimit gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(middleware.CORSMiddleware())
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/request-reset", d.authHandler.RequestReset)
			auth.GET("/reset-session", d.authHandler.CheckResetSession)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Profile routes (protected)
		profiles := v1.Group("/profiles")
		profiles.Use(d.authMiddleware)
		{
			profiles.GET("/me", d.profileHandler.GetOwnProfile)
			profiles.PUT("/me", d.profileHandler.UpdateOwnProfile)
			profiles.GET("", d.profileHandler.Browse)
			profiles.POST("/:id/decision", d.matchHandler.Decide)
		}

		// Match routes (protected)
		matches := v1.Group("/matches")
		matches.Use(d.authMiddleware)
		{
			matches.GET("", d.matchHandler.ListMatches)
			matches.GET("/liked-count", d.matchHandler.LikedCount)
		}

		// Admin routes (protected, admin membership checked per request)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, d.adminMiddleware)
		{
			admin.GET("/profiles/pending", d.adminHandler.ListPendingProfiles)
			admin.PUT("/profiles/:id/status", d.adminHandler.ReviewProfile)
			admin.POST("/set-password", d.setPasswordLimit, d.adminHandler.SetPassword)
		}
	}
}
