package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers project routes on the mount group
func (pc *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", pc.ListProjects)
	// "/api" and "/api/" both list projects when mounted under a prefix
	if router.BasePath() != "/" {
		router.GET("", pc.ListProjects)
	}
	router.GET("/projects", pc.ListProjects)
	router.GET("/project/:id", pc.GetProject)
}
