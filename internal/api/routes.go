package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ahmetberacelik/legalcase/internal/cache"
	"github.com/ahmetberacelik/legalcase/internal/service"
	"github.com/ahmetberacelik/legalcase/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine,
	auth *service.AuthService, cases *service.CaseService, clients *service.ClientService,
	hearings *service.HearingService, documents *service.DocumentService,
	cache cache.Cache, logger *logger.Logger) {
	h := NewHandlers(auth, cases, clients, hearings, documents, cache, logger)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", h.HealthCheck)

		// Authentication
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
	}

	// Everything below requires a logged-in user
	authed := router.Group("/api")
	authed.Use(h.RequireLogin())
	{
		authed.GET("/auth/me", h.Me)

		// Cache stats
		authed.GET("/cache/stats", h.CacheStats)

		// Case endpoints
		authed.POST("/cases", h.CreateCase)
		authed.GET("/cases", h.ListCases)
		authed.GET("/cases/:id", h.GetCase)
		authed.PUT("/cases/:id", h.UpdateCase)
		authed.DELETE("/cases/:id", h.DeleteCase)
		authed.GET("/cases/:id/clients", h.CaseClients)
		authed.POST("/cases/:id/clients/:clientID", h.LinkClient)
		authed.DELETE("/cases/:id/clients/:clientID", h.UnlinkClient)

		// Client endpoints
		authed.POST("/clients", h.CreateClient)
		authed.GET("/clients", h.ListClients)
		authed.GET("/clients/:id", h.GetClient)
		authed.PUT("/clients/:id", h.UpdateClient)
		authed.DELETE("/clients/:id", h.DeleteClient)
		authed.GET("/clients/:id/cases", h.ClientCases)

		// Hearing endpoints
		authed.POST("/hearings", h.CreateHearing)
		authed.GET("/hearings", h.ListHearings)
		authed.GET("/hearings/:id", h.GetHearing)
		authed.PUT("/hearings/:id", h.UpdateHearing)
		authed.PUT("/hearings/:id/status", h.UpdateHearingStatus)
		authed.POST("/hearings/:id/reschedule", h.RescheduleHearing)
		authed.DELETE("/hearings/:id", h.DeleteHearing)

		// Document endpoints
		authed.POST("/documents", h.CreateDocument)
		authed.GET("/documents", h.ListDocuments)
		authed.GET("/documents/:id", h.GetDocument)
		authed.PUT("/documents/:id", h.UpdateDocument)
		authed.PUT("/documents/:id/content-type", h.UpdateDocumentContentType)
		authed.DELETE("/documents/:id", h.DeleteDocument)
	}
}
