package dto

import (
	"github.com/portfolio-api/models"
)

// ProjectResponse is the only shape a project leaves the API in. It carries
// exactly the 13 catalog fields whatever the store returned.
type ProjectResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Overview           string   `json:"overview"`
	Description        string   `json:"description"`
	CreationDate       string   `json:"creationDate"`
	Type               string   `json:"type"`
	TechTags           []string `json:"techTags"`
	BackendGithubLink  string   `json:"backendGithubLink"`
	FrontendGithubLink string   `json:"frontendGithubLink"`
	BackendHostedLink  string   `json:"backendHostedLink"`
	FrontendHostedLink string   `json:"frontendHostedLink"`
	MainImage          string   `json:"mainImage"`
	Screenshots        []string `json:"screenshots"`
}

// ProjectListResponse represents the project list response
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ErrorResponse is the error envelope for every non-2xx response
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// NewProjectResponse maps a stored project to its response shape
func NewProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Overview:           p.Overview,
		Description:        p.Description,
		CreationDate:       p.CreationDate,
		Type:               p.Type,
		TechTags:           cloneList(p.TechTags),
		BackendGithubLink:  p.BackendGithubLink,
		FrontendGithubLink: p.FrontendGithubLink,
		BackendHostedLink:  p.BackendHostedLink,
		FrontendHostedLink: p.FrontendHostedLink,
		MainImage:          p.MainImage,
		Screenshots:        cloneList(p.Screenshots),
	}
}

// NewProjectResponses maps a slice of stored projects, never returning nil
func NewProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, NewProjectResponse(p))
	}
	return responses
}

// lists are always JSON arrays, never null
func cloneList(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
