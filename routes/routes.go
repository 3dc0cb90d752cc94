package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/portfolio-api/api/v1"
	"github.com/portfolio-api/config"
	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/middleware"
)

// Fallback messages for requests that match no handler
const (
	MsgMethodNotAllowed = "Method not allowed."
	MsgPathNotFound     = "Path not found."
)

// NewRouter builds the gin engine with middleware and every route mounted
func NewRouter(cfg config.Config, projects *v1.ProjectController) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	// Trailing-slash redirects answer with an HTML body
	router.RedirectTrailingSlash = false

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(corsConfig(cfg)))

	SetupRoutes(router, cfg.BasePath, projects)
	return router
}

// SetupRoutes mounts the health check, the project routes under basePath
// and the JSON fallbacks
func SetupRoutes(router *gin.Engine, basePath string, projects *v1.ProjectController) {
	router.GET("/health", v1.HealthCheck)

	projects.RegisterRoutes(router.Group(basePath))

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Msg: MsgMethodNotAllowed})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Msg: MsgPathNotFound})
	})
}

func corsConfig(cfg config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return corsCfg
}
