package repositories

import (
	"reflect"
	"strings"
	"testing"

	"github.com/portfolio-api/models"
	"github.com/portfolio-api/query"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB builds statements without ever talking to a server
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=postgres dbname=portfolio sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func buildFind(t *testing.T, q query.StoreQuery) *gorm.Statement {
	t.Helper()
	db := dryRunDB(t)
	repo := NewProjectRepository(db)
	scoped, err := repo.scope(db.Model(&models.Project{}), q)
	if err != nil {
		t.Fatalf("scope: %v", err)
	}
	var projects []models.Project
	return scoped.Find(&projects).Statement
}

func TestProjectRepositoryDefaultOrder(t *testing.T) {
	stmt := buildFind(t, query.StoreQuery{
		Sort: query.Sort{Field: query.FieldCreationDate, Direction: query.SortDirectionDesc},
	})
	sql := stmt.SQL.String()

	if strings.Contains(sql, "WHERE") {
		t.Fatalf("expected no WHERE clause, got %s", sql)
	}
	if !strings.Contains(sql, `ORDER BY "creation_date" DESC,"id"`) {
		t.Fatalf("unexpected order in %s", sql)
	}
}

func TestProjectRepositoryFilters(t *testing.T) {
	stmt := buildFind(t, query.StoreQuery{
		Filters: []query.Filter{
			{Field: query.FieldType, Operator: query.OpEquals, Values: []string{"Group"}},
			{Field: query.FieldTechTags, Operator: query.OpContainsAll, Values: []string{"Axios", "MongoDB"}},
		},
		Sort: query.Sort{Field: query.FieldTitle, Direction: query.SortDirectionAsc},
	})
	sql := stmt.SQL.String()

	for _, fragment := range []string{
		`"type" = $1`,
		`"tech_tags" @> $2::jsonb`,
		`ORDER BY "title","id"`,
	} {
		if !strings.Contains(sql, fragment) {
			t.Fatalf("expected %q in %s", fragment, sql)
		}
	}
	want := []interface{}{"Group", `["Axios","MongoDB"]`}
	if !reflect.DeepEqual(stmt.Vars, want) {
		t.Fatalf("expected vars %v, got %v", want, stmt.Vars)
	}
}

func TestProjectRepositoryRejectsUnknownFields(t *testing.T) {
	db := dryRunDB(t)
	repo := NewProjectRepository(db)

	bad := []query.StoreQuery{
		{Sort: query.Sort{Field: "title; DROP TABLE projects"}},
		{
			Filters: []query.Filter{{Field: "nope", Operator: query.OpEquals, Values: []string{"x"}}},
			Sort:    query.Sort{Field: query.FieldTitle},
		},
		{
			Filters: []query.Filter{{Field: query.FieldType, Operator: query.OpEquals, Values: []string{"a", "b"}}},
			Sort:    query.Sort{Field: query.FieldTitle},
		},
	}
	for i, q := range bad {
		if _, err := repo.scope(db.Model(&models.Project{}), q); err == nil {
			t.Fatalf("query %d: expected error", i)
		}
	}
}
