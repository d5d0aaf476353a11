package cli

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/resumecoach/backend/auth"
	_ "github.com/resumecoach/backend/docs"
	"github.com/resumecoach/backend/handlers"
	"github.com/resumecoach/backend/mcp"
	"github.com/resumecoach/backend/rag"
)

// NewRouter builds the gin engine serving the HTTP API
func NewRouter(app *App) *gin.Engine {
	var docs *rag.Service
	if app.DocsEnabled() {
		docs = app.Docs
	}

	maxUpload := app.Config.MaxUploadMB
	feedbackHandler := handlers.NewFeedbackHandler(app.Coach, app.Extractor, maxUpload)
	documentHandler := handlers.NewDocumentHandler(app.Extractor, app.Fetcher, app.Config.DefaultTrendQuery, maxUpload)
	askHandler := handlers.NewAskHandler(docs)
	chatHandler := handlers.NewChatHandler(app.Chat, app.Sessions)
	toolsHandler := handlers.NewToolsHandler(app.Tools)
	mcpServer := mcp.NewServer(app.Tools, "resumecoach", version)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8501"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Multipart bodies above this spill to temp files
	if maxUpload > 0 {
		router.MaxMultipartMemory = int64(maxUpload) << 20
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/feedback", feedbackHandler.Feedback)
		api.POST("/sections", documentHandler.Sections)
		api.POST("/trends", documentHandler.Trends)
		api.POST("/ask", askHandler.Ask)
		api.GET("/documents", askHandler.Documents)

		api.POST("/chat/sessions", chatHandler.CreateSession)
		session := api.Group("/chat")
		session.Use(auth.SessionMiddleware(app.Sessions))
		{
			session.DELETE("/sessions", chatHandler.EndSession)
			session.POST("/messages", chatHandler.SendMessage)
			session.GET("/messages", chatHandler.GetHistory)
			session.DELETE("/messages", chatHandler.ClearHistory)
		}

		// Tools introspection endpoint
		api.GET("/tools", toolsHandler.GetTools)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	return router
}
