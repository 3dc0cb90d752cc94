package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/portfolio-api/models"
	"github.com/portfolio-api/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Find retrieves projects matching every filter of q, in q's order
func (r *ProjectRepository) Find(ctx context.Context, q query.StoreQuery) ([]models.Project, error) {
	db, err := r.scope(r.db.WithContext(ctx).Model(&models.Project{}), q)
	if err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0)
	if err := db.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// FindByID retrieves the project with the given id, as a slice of zero or one
func (r *ProjectRepository) FindByID(ctx context.Context, id string) ([]models.Project, error) {
	projects := make([]models.Project, 0, 1)
	result := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: id}).
		Limit(1).
		Find(&projects)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get project %q: %w", id, result.Error)
	}
	return projects, nil
}

// scope applies filters and ordering. Column names only ever come from the
// field catalog.
func (r *ProjectRepository) scope(db *gorm.DB, q query.StoreQuery) (*gorm.DB, error) {
	for _, f := range q.Filters {
		col, ok := query.ColumnFor(f.Field)
		if !ok {
			return nil, fmt.Errorf("unknown filter field %q", f.Field)
		}
		switch f.Operator {
		case query.OpEquals:
			if len(f.Values) != 1 {
				return nil, fmt.Errorf("equality filter on %s needs one value, got %d", f.Field, len(f.Values))
			}
			db = db.Where(clause.Eq{Column: clause.Column{Name: col}, Value: f.Values[0]})
		case query.OpContainsAll:
			payload, err := json.Marshal(f.Values)
			if err != nil {
				return nil, fmt.Errorf("failed to encode %s filter: %w", f.Field, err)
			}
			db = db.Where(clause.Expr{
				SQL:  "? @> ?::jsonb",
				Vars: []interface{}{clause.Column{Name: col}, string(payload)},
			})
		default:
			return nil, fmt.Errorf("unsupported operator %q", f.Operator)
		}
	}

	sortCol, ok := query.ColumnFor(q.Sort.Field)
	if !ok {
		return nil, fmt.Errorf("unknown sort field %q", q.Sort.Field)
	}
	db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: sortCol}, Desc: q.Sort.Descending()})
	if sortCol != "id" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
	return db, nil
}
