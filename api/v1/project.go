package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/middleware"
	"github.com/portfolio-api/query"
	"github.com/portfolio-api/services"
)

// MsgProjectNotFound is returned when GET /project/:id matches nothing
const MsgProjectNotFound = "Project not found."

// ProjectController handles project-related API endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// ListProjects godoc
// @Summary List projects with optional filtering and sorting
// @Tags projects
// @Produce json
// @Param type query string false "Solo, Pair or Group"
// @Param techTags query []string false "Every listed tag must be present"
// @Param sortby query string false "title, type or creationDate"
// @Param order query string false "asc or desc"
// @Success 200 {object} dto.ProjectListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /projects [get]
func (pc *ProjectController) ListProjects(c *gin.Context) {
	params := query.ParseParams(c.Request.URL.RawQuery)

	projects, err := pc.projectService.ListProjects(c.Request.Context(), params)
	if err != nil {
		if verr, ok := query.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: verr.Message})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectListResponse{Projects: projects})
}

// GetProject godoc
// @Summary Get a single project by id
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /project/{id} [get]
func (pc *ProjectController) GetProject(c *gin.Context) {
	project, err := pc.projectService.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Msg: MsgProjectNotFound})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// internalError logs the cause and answers with the generic 500 envelope
func internalError(c *gin.Context, err error) {
	log.Printf("❌ [%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: middleware.MsgInternalServerError})
}
