package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/portfolio-api/api/v1"
	"github.com/portfolio-api/config"
	"github.com/portfolio-api/database"
	"github.com/portfolio-api/middleware"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/query"
	"github.com/portfolio-api/repositories"
	"github.com/portfolio-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(cfg config.Config, store services.ProjectStore) *gin.Engine {
	if store == nil {
		store = repositories.NewMemoryProjectStore(database.FixtureProjects()...)
	}
	svc := services.NewProjectService(store, time.Second)
	return NewRouter(cfg, v1.NewProjectController(svc))
}

func serve(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeMsg(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	if len(body) != 1 {
		t.Fatalf("expected only msg in error body, got %v", body)
	}
	return body["msg"]
}

func decodeProjects(t *testing.T, w *httptest.ResponseRecorder) []map[string]json.RawMessage {
	t.Helper()
	var body struct {
		Projects []map[string]json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode list body %q: %v", w.Body.String(), err)
	}
	if body.Projects == nil {
		t.Fatalf("expected projects array, got %s", w.Body.String())
	}
	return body.Projects
}

func stringField(t *testing.T, p map[string]json.RawMessage, key string) string {
	t.Helper()
	var s string
	if err := json.Unmarshal(p[key], &s); err != nil {
		t.Fatalf("field %s: %v", key, err)
	}
	return s
}

func TestListProjectsReturnsCatalogFieldsOnly(t *testing.T) {
	router := newTestRouter(config.Config{}, nil)

	for _, target := range []string{"/", "/projects"} {
		w := serve(router, http.MethodGet, target)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", target, w.Code, w.Body.String())
		}
		projects := decodeProjects(t, w)
		if len(projects) != 3 {
			t.Fatalf("%s: expected 3 projects, got %d", target, len(projects))
		}
		for _, p := range projects {
			if len(p) != len(query.AllFieldNames) {
				t.Fatalf("%s: expected %d fields, got %d", target, len(query.AllFieldNames), len(p))
			}
			for _, name := range query.AllFieldNames {
				if _, ok := p[string(name)]; !ok {
					t.Fatalf("%s: missing field %s", target, name)
				}
			}
		}
	}
}

func TestListProjectsSorting(t *testing.T) {
	router := newTestRouter(config.Config{}, nil)

	tests := []struct {
		target string
		field  string
		desc   bool
	}{
		{"/projects", "creationDate", true},
		{"/projects?order=asc", "creationDate", false},
		{"/projects?sortby=title&order=asc", "title", false},
		{"/projects?sortby=title", "title", true},
		{"/projects?sortby=type&order=asc", "type", false},
		{"/?sortby=type&order=desc", "type", true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := serve(router, http.MethodGet, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			projects := decodeProjects(t, w)
			values := make([]string, len(projects))
			for i, p := range projects {
				values[i] = stringField(t, p, tt.field)
			}
			sorted := sort.SliceIsSorted(values, func(i, j int) bool {
				if tt.desc {
					return values[i] > values[j]
				}
				return values[i] < values[j]
			})
			if !sorted {
				t.Fatalf("%s not sorted (desc=%v): %v", tt.field, tt.desc, values)
			}
		})
	}
}

func TestListProjectsFiltering(t *testing.T) {
	router := newTestRouter(config.Config{}, nil)

	tests := []struct {
		target string
		want   []string
	}{
		{"/projects?type=Group", []string{"make-space-app"}},
		{"/projects?type=Pair", []string{"bookshelf-pair-kata"}},
		{"/projects?techTags=MongoDB", []string{"make-space-app"}},
		{"/projects?techTags=Axios&techTags=MongoDB", []string{"make-space-app"}},
		{"/projects?techTags=MongoDB&techTags=Axios", []string{"make-space-app"}},
		{"/projects?techTags=PSQL&techTags=MongoDB", []string{}},
		{"/projects?type=Solo&techTags=Jest", []string{"proclaim-your-game-website"}},
		{"/projects?type=Group&techTags=Jest", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := serve(router, http.MethodGet, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			projects := decodeProjects(t, w)
			got := make([]string, len(projects))
			for i, p := range projects {
				got[i] = stringField(t, p, "id")
			}
			sort.Strings(got)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestListProjectsValidationErrors(t *testing.T) {
	router := newTestRouter(config.Config{}, nil)

	tests := []struct {
		target string
		msg    string
	}{
		{"/projects?foo=bar", "foo is an invalid filter."},
		{"/?foo=bar", "foo is an invalid filter."},
		{"/projects?title=Make", "Cannot filter by title."},
		{"/projects?sortby=overview", "Invalid sortby query."},
		{"/projects?sortby=title&sortby=type", "Invalid sortby query."},
		{"/projects?order=up", "Invalid order query."},
		{"/projects?type=Team", "Invalid type query."},
		{"/projects?techTags=Cobol", "Invalid tech tag query."},
		{"/projects?techTags=Jest&techTags=Cobol", "Invalid tech tag query."},

		// first failing check wins
		{"/projects?sortby=nope&foo=bar", "foo is an invalid filter."},
		{"/projects?title=x&order=up", "Cannot filter by title."},
		{"/projects?order=up&sortby=nope", "Invalid sortby query."},
		{"/projects?techTags=Cobol&type=Team&order=up", "Invalid order query."},
		{"/projects?techTags=Cobol&type=Team", "Invalid type query."},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := serve(router, http.MethodGet, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if msg := decodeMsg(t, w); msg != tt.msg {
				t.Fatalf("expected %q, got %q", tt.msg, msg)
			}
		})
	}
}

func TestGetProject(t *testing.T) {
	router := newTestRouter(config.Config{}, nil)

	w := serve(router, http.MethodGet, "/project/make-space-app")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var project map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &project); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if len(project) != len(query.AllFieldNames) {
		t.Fatalf("expected %d fields, got %d", len(query.AllFieldNames), len(project))
	}
	if got := stringField(t, project, "title"); got != "Make Space App" {
		t.Fatalf("unexpected title %q", got)
	}

	w = serve(router, http.MethodGet, "/project/another-app")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if msg := decodeMsg(t, w); msg != v1.MsgProjectNotFound {
		t.Fatalf("unexpected msg %q", msg)
	}
}

func TestFallbacks(t *testing.T) {
	router := newTestRouter(config.Config{}, nil)

	tests := []struct {
		method string
		target string
		code   int
		msg    string
	}{
		{http.MethodPost, "/projects", http.StatusMethodNotAllowed, MsgMethodNotAllowed},
		{http.MethodPatch, "/", http.StatusMethodNotAllowed, MsgMethodNotAllowed},
		{http.MethodDelete, "/project/make-space-app", http.StatusMethodNotAllowed, MsgMethodNotAllowed},
		{http.MethodPut, "/project/x", http.StatusMethodNotAllowed, MsgMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound, MsgPathNotFound},
		{http.MethodGet, "/projects/extra/segments", http.StatusNotFound, MsgPathNotFound},
		{http.MethodPost, "/nope", http.StatusNotFound, MsgPathNotFound},
		{http.MethodGet, "/projects/", http.StatusNotFound, MsgPathNotFound},
		{http.MethodGet, "/project/", http.StatusNotFound, MsgPathNotFound},
		{http.MethodGet, "/project", http.StatusNotFound, MsgPathNotFound},
		{http.MethodGet, "/project/make-space-app/", http.StatusNotFound, MsgPathNotFound},
		{http.MethodPost, "/projects/", http.StatusNotFound, MsgPathNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := serve(router, tt.method, tt.target)
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Fatalf("expected a JSON body, got %q", ct)
			}
			if msg := decodeMsg(t, w); msg != tt.msg {
				t.Fatalf("expected %q, got %q", tt.msg, msg)
			}
		})
	}
}

type failingStore struct {
	err   error
	panic bool
}

func (f failingStore) Find(ctx context.Context, q query.StoreQuery) ([]models.Project, error) {
	if f.panic {
		panic("store exploded")
	}
	return nil, f.err
}

func (f failingStore) FindByID(ctx context.Context, id string) ([]models.Project, error) {
	if f.panic {
		panic("store exploded")
	}
	return nil, f.err
}

func TestStoreFailuresBecomeInternalServerError(t *testing.T) {
	stores := map[string]services.ProjectStore{
		"error": failingStore{err: errors.New("connection refused")},
		"panic": failingStore{panic: true},
	}

	for name, store := range stores {
		router := newTestRouter(config.Config{}, store)
		for _, target := range []string{"/projects", "/project/make-space-app"} {
			w := serve(router, http.MethodGet, target)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("%s %s: expected 500, got %d", name, target, w.Code)
			}
			if msg := decodeMsg(t, w); msg != middleware.MsgInternalServerError {
				t.Fatalf("%s %s: unexpected msg %q", name, target, msg)
			}
		}
	}
}

func TestValidationRunsBeforeStore(t *testing.T) {
	router := newTestRouter(config.Config{}, failingStore{panic: true})

	w := serve(router, http.MethodGet, "/projects?foo=bar")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBasePath(t *testing.T) {
	router := newTestRouter(config.Config{BasePath: "/api"}, nil)

	for _, target := range []string{"/api", "/api/", "/api/projects", "/api/project/make-space-app"} {
		if w := serve(router, http.MethodGet, target); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", target, w.Code, w.Body.String())
		}
	}

	w := serve(router, http.MethodGet, "/projects")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside base path, got %d", w.Code)
	}
	if w := serve(router, http.MethodGet, "/health"); w.Code != http.StatusOK {
		t.Fatalf("health should stay at the root, got %d", w.Code)
	}
}

func TestRequestIDAndCORSHeaders(t *testing.T) {
	router := newTestRouter(config.Config{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	req.Header.Set("Origin", "https://example.com")
	router.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}

	restricted := newTestRouter(config.Config{AllowedOrigins: []string{"https://portfolio.example"}}, nil)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Origin", "https://evil.example")
	restricted.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a foreign origin, got %d", w.Code)
	}
}
