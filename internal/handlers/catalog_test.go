package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/repos"
)

type stubCatalogService struct {
	universities []repos.UniversitySummary
	programs     []repos.ProgramSummary
	err          error
}

func (s *stubCatalogService) Universities(ctx context.Context, tx *gorm.DB) ([]repos.UniversitySummary, error) {
	return s.universities, s.err
}

func (s *stubCatalogService) Programs(ctx context.Context, tx *gorm.DB) ([]repos.ProgramSummary, error) {
	return s.programs, s.err
}

func (s *stubCatalogService) Campuses(ctx context.Context, tx *gorm.DB) ([]repos.CampusView, error) {
	return nil, s.err
}

func (s *stubCatalogService) Offerings(ctx context.Context, tx *gorm.DB) ([]repos.OfferingView, error) {
	return nil, s.err
}

func (s *stubCatalogService) ProgramDetail(ctx context.Context, tx *gorm.DB, programID uint) (*repos.ProgramDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repos.ProgramDetail{ID: programID, Name: "Computer Science"}, nil
}

func (s *stubCatalogService) UniversityDetail(ctx context.Context, tx *gorm.DB, universityID uint) (*repos.UniversityDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repos.UniversityDetail{ID: universityID, Name: "Dow University"}, nil
}

func (s *stubCatalogService) SearchPrograms(ctx context.Context, tx *gorm.DB, query string) ([]repos.ProgramSummary, error) {
	return s.programs, s.err
}

func (s *stubCatalogService) Stats(ctx context.Context, tx *gorm.DB) (*repos.CatalogStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repos.CatalogStats{Universities: 2}, nil
}

func catalogRouter(t *testing.T, svc *stubCatalogService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("production")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	handler := NewCatalogHandler(log, svc)
	router := gin.New()
	api := router.Group("/api")
	api.GET("/universities", handler.ListUniversities)
	api.GET("/program/:id", handler.GetProgramDetail)
	api.GET("/university/:id", handler.GetUniversityDetail)
	api.GET("/search-programs", handler.SearchPrograms)
	api.GET("/stats", handler.GetStats)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListUniversitiesEndpoint(t *testing.T) {
	svc := &stubCatalogService{universities: []repos.UniversitySummary{
		{ID: 1, Name: "Dow University", Sector: "Public", CampusCount: 1, ProgramCount: 2},
	}}
	w := doGet(t, catalogRouter(t, svc), "/api/universities")

	if w.Code != http.StatusOK {
		t.Fatalf("status: want=%d got=%d", http.StatusOK, w.Code)
	}
	var resp struct {
		Success      bool                      `json:"success"`
		Universities []repos.UniversitySummary `json:"universities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || len(resp.Universities) != 1 || resp.Universities[0].Name != "Dow University" {
		t.Fatalf("response: got %+v", resp)
	}
}

func TestDetailEndpointErrors(t *testing.T) {
	t.Run("unknown id maps to 404", func(t *testing.T) {
		svc := &stubCatalogService{err: repos.ErrNotFound}
		router := catalogRouter(t, svc)

		for _, path := range []string{"/api/program/999", "/api/university/999"} {
			w := doGet(t, router, path)
			if w.Code != http.StatusNotFound {
				t.Fatalf("%s status: want=%d got=%d", path, http.StatusNotFound, w.Code)
			}
			assertErrorEnvelope(t, w.Body.Bytes())
		}
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		router := catalogRouter(t, &stubCatalogService{})
		w := doGet(t, router, "/api/program/abc")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: want=%d got=%d", http.StatusBadRequest, w.Code)
		}
		assertErrorEnvelope(t, w.Body.Bytes())
	})
}

func TestSearchProgramsEndpoint(t *testing.T) {
	t.Run("missing query is a 400", func(t *testing.T) {
		router := catalogRouter(t, &stubCatalogService{})
		w := doGet(t, router, "/api/search-programs")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: want=%d got=%d", http.StatusBadRequest, w.Code)
		}
		assertErrorEnvelope(t, w.Body.Bytes())
	})

	t.Run("query is echoed back", func(t *testing.T) {
		svc := &stubCatalogService{programs: []repos.ProgramSummary{{ID: 2, Name: "Computer Science"}}}
		w := doGet(t, catalogRouter(t, svc), "/api/search-programs?q=computer")
		if w.Code != http.StatusOK {
			t.Fatalf("status: want=%d got=%d", http.StatusOK, w.Code)
		}
		var resp struct {
			Success  bool                   `json:"success"`
			Query    string                 `json:"query"`
			Programs []repos.ProgramSummary `json:"programs"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !resp.Success || resp.Query != "computer" || len(resp.Programs) != 1 {
			t.Fatalf("response: got %+v", resp)
		}
	})
}

func TestStatsEndpoint(t *testing.T) {
	w := doGet(t, catalogRouter(t, &stubCatalogService{}), "/api/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status: want=%d got=%d", http.StatusOK, w.Code)
	}
	var resp struct {
		Success bool               `json:"success"`
		Stats   repos.CatalogStats `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Stats.Universities != 2 {
		t.Fatalf("response: got %+v", resp)
	}
}
