package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/query"
)

// DefaultQueryTimeout bounds a single store call
const DefaultQueryTimeout = 5 * time.Second

// ErrProjectNotFound is returned when no project has the requested id
var ErrProjectNotFound = errors.New("project not found")

// ProjectStore is the record store the service reads from
type ProjectStore interface {
	Find(ctx context.Context, q query.StoreQuery) ([]models.Project, error)
	FindByID(ctx context.Context, id string) ([]models.Project, error)
}

// ProjectService handles business logic for projects
type ProjectService struct {
	store   ProjectStore
	timeout time.Duration
}

// NewProjectService creates a new project service instance. A timeout of
// zero or less uses DefaultQueryTimeout.
func NewProjectService(store ProjectStore, timeout time.Duration) *ProjectService {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &ProjectService{
		store:   store,
		timeout: timeout,
	}
}

// ListProjects validates params, then retrieves the matching projects.
// A rejected query returns the *query.ValidationError untouched and never
// reaches the store.
func (s *ProjectService) ListProjects(ctx context.Context, params query.Params) ([]dto.ProjectResponse, error) {
	descriptor, err := query.Validate(params)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	projects, err := s.store.Find(ctx, query.Translate(descriptor))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return dto.NewProjectResponses(projects), nil
}

// GetProjectByID retrieves a project by its id
func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (dto.ProjectResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	projects, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.ProjectResponse{}, fmt.Errorf("get project %q: %w", id, err)
	}
	if len(projects) == 0 {
		return dto.ProjectResponse{}, ErrProjectNotFound
	}

	return dto.NewProjectResponse(projects[0]), nil
}
