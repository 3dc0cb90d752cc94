package repositories

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/portfolio-api/models"
	"github.com/portfolio-api/query"
)

// MemoryProjectStore keeps projects in process. It answers the same queries
// as ProjectRepository and backs STORE_DRIVER=memory and the tests.
type MemoryProjectStore struct {
	mu       sync.RWMutex
	projects []models.Project
}

// NewMemoryProjectStore creates a store holding copies of projects. A later
// project replaces an earlier one with the same id.
func NewMemoryProjectStore(projects ...models.Project) *MemoryProjectStore {
	s := &MemoryProjectStore{}
	for _, p := range projects {
		s.upsert(p)
	}
	return s
}

// Find retrieves projects matching every filter of q, in q's order
func (s *MemoryProjectStore) Find(ctx context.Context, q query.StoreQuery) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		ok, err := matches(p, q.Filters)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, cloneProject(p))
		}
	}

	if _, ok := query.ColumnFor(q.Sort.Field); !ok {
		return nil, fmt.Errorf("unknown sort field %q", q.Sort.Field)
	}
	slices.SortStableFunc(matched, func(a, b models.Project) int {
		c := strings.Compare(sortKey(a, q.Sort.Field), sortKey(b, q.Sort.Field))
		if q.Sort.Descending() {
			c = -c
		}
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		return c
	})
	return matched, nil
}

// FindByID retrieves the project with the given id, as a slice of zero or one
func (s *MemoryProjectStore) FindByID(ctx context.Context, id string) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			return []models.Project{cloneProject(p)}, nil
		}
	}
	return []models.Project{}, nil
}

// upsert inserts p or replaces the project with the same id
func (s *MemoryProjectStore) upsert(p models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = cloneProject(p)
			return
		}
	}
	s.projects = append(s.projects, cloneProject(p))
}

func matches(p models.Project, filters []query.Filter) (bool, error) {
	for _, f := range filters {
		switch f.Operator {
		case query.OpEquals:
			if len(f.Values) != 1 {
				return false, fmt.Errorf("equality filter on %s needs one value, got %d", f.Field, len(f.Values))
			}
			if sortKey(p, f.Field) != f.Values[0] {
				return false, nil
			}
		case query.OpContainsAll:
			list, ok := listField(p, f.Field)
			if !ok {
				return false, fmt.Errorf("field %s is not a list", f.Field)
			}
			for _, v := range f.Values {
				if !slices.Contains(list, v) {
					return false, nil
				}
			}
		default:
			return false, fmt.Errorf("unsupported operator %q", f.Operator)
		}
	}
	return true, nil
}

func sortKey(p models.Project, f query.Field) string {
	switch f {
	case query.FieldID:
		return p.ID
	case query.FieldTitle:
		return p.Title
	case query.FieldOverview:
		return p.Overview
	case query.FieldDescription:
		return p.Description
	case query.FieldCreationDate:
		return p.CreationDate
	case query.FieldType:
		return p.Type
	case query.FieldBackendGithubLink:
		return p.BackendGithubLink
	case query.FieldFrontendGithubLink:
		return p.FrontendGithubLink
	case query.FieldBackendHostedLink:
		return p.BackendHostedLink
	case query.FieldFrontendHostedLink:
		return p.FrontendHostedLink
	case query.FieldMainImage:
		return p.MainImage
	}
	return ""
}

func listField(p models.Project, f query.Field) ([]string, bool) {
	switch f {
	case query.FieldTechTags:
		return p.TechTags, true
	case query.FieldScreenshots:
		return p.Screenshots, true
	}
	return nil, false
}

func cloneProject(p models.Project) models.Project {
	p.TechTags = slices.Clone(p.TechTags)
	p.Screenshots = slices.Clone(p.Screenshots)
	return p
}
