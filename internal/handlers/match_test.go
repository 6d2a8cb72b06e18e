package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/matching"
)

type stubMatchService struct {
	result *matching.MatchResult
	err    error

	gotPayload matching.ProfilePayload
}

func (s *stubMatchService) MatchPrograms(ctx context.Context, tx *gorm.DB, payload matching.ProfilePayload) (*matching.MatchResult, error) {
	s.gotPayload = payload
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func matchRouter(t *testing.T, svc *stubMatchService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("production")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	router := gin.New()
	handler := NewMatchHandler(log, svc)
	router.POST("/api/match-programs", handler.MatchPrograms)
	return router
}

func TestMatchProgramsEndpoint(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		svc := &stubMatchService{result: &matching.MatchResult{
			MatchedOfferings: []matching.ScoredOffering{},
			TotalMatches:     0,
			SubjectRestrictions: matching.SubjectRestrictions{
				HSCGroup:          "Pre-Medical",
				FilteredInterests: []string{"Medicine"},
			},
		}}
		router := matchRouter(t, svc)

		body := `{"sscPercentage":85,"hscPercentage":"88","hscGroup":"Pre-Medical","interests":["Medicine"],"budget":300000}`
		req := httptest.NewRequest(http.MethodPost, "/api/match-programs", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status: want=%d got=%d body=%s", http.StatusOK, w.Code, w.Body.String())
		}
		var resp struct {
			Success             bool                         `json:"success"`
			MatchedOfferings    []matching.ScoredOffering    `json:"matched_offerings"`
			TotalMatches        int                          `json:"total_matches"`
			SubjectRestrictions matching.SubjectRestrictions `json:"subject_restrictions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !resp.Success {
			t.Fatal("success flag: want=true got=false")
		}
		if resp.SubjectRestrictions.HSCGroup != "Pre-Medical" {
			t.Fatalf("restrictions echo: got %+v", resp.SubjectRestrictions)
		}
		if float64(svc.gotPayload.SSCPercentage) != 85 || float64(svc.gotPayload.HSCPercentage) != 88 {
			t.Fatalf("payload coercion: got ssc=%v hsc=%v", svc.gotPayload.SSCPercentage, svc.gotPayload.HSCPercentage)
		}
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		router := matchRouter(t, &stubMatchService{})

		req := httptest.NewRequest(http.MethodPost, "/api/match-programs", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: want=%d got=%d", http.StatusBadRequest, w.Code)
		}
		assertErrorEnvelope(t, w.Body.Bytes())
	})

	t.Run("service failure is a 500 with the error envelope", func(t *testing.T) {
		svc := &stubMatchService{err: errors.New("candidate retrieval failed")}
		router := matchRouter(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/match-programs", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status: want=%d got=%d", http.StatusInternalServerError, w.Code)
		}
		assertErrorEnvelope(t, w.Body.Bytes())
	})
}

func assertErrorEnvelope(t *testing.T, body []byte) {
	t.Helper()
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if resp.Success {
		t.Fatal("success flag: want=false got=true")
	}
	if resp.Error == "" {
		t.Fatal("error message: want non-empty")
	}
}
