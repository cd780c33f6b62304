package handlers

import (
	"net/http"

	"blogapi/internal/logger"
	"blogapi/internal/service"
	"blogapi/internal/session"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, the session store, the live feed
// and logging.
type Handler struct {
	services *service.Service
	sessions session.Tracker
	feed     *FeedHub
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. sessions,
// feed and log may be nil (e.g. in tests); the affected features degrade
// to no-ops.
func NewHandler(services *service.Service, sessions session.Tracker, feed *FeedHub, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, feed: feed, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLog, h.cors, h.trackSession)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Static frontend pages
	router.Static("/frontend", "./frontend")
	router.StaticFile("/login", "./frontend/login.html")
	router.StaticFile("/home", "./frontend/index.html")
	router.StaticFile("/admin", "./frontend/admin.html")

	h.registerAPIRoutes(router)

	// Live post feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsFeed)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/users", h.createUser)
		api.POST("/auth", h.login)

		api.GET("/posts", h.listPosts)
		api.GET("/posts/:id", h.getPost)
		// Creation is the only write that touches storage and the only
		// route behind the bearer gate.
		api.POST("/posts", h.bearerAuth, h.createPost)
		api.PUT("/posts/:id", h.updatePost)
		api.DELETE("/posts/:id", h.deletePost)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
