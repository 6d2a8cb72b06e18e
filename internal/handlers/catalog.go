package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/repos"
	"github.com/uni-verse/universe-backend/internal/services"
)

type CatalogHandler struct {
	log        *logger.Logger
	catalogSvc services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogSvc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:        log.With("handler", "CatalogHandler"),
		catalogSvc: catalogSvc,
	}
}

// GET /api/universities
func (h *CatalogHandler) ListUniversities(c *gin.Context) {
	universities, err := h.catalogSvc.Universities(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("ListUniversities failed", "error", err)
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, gin.H{"universities": universities})
}

// GET /api/programs
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	programs, err := h.catalogSvc.Programs(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("ListPrograms failed", "error", err)
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, gin.H{"programs": programs})
}

// GET /api/campuses
func (h *CatalogHandler) ListCampuses(c *gin.Context) {
	campuses, err := h.catalogSvc.Campuses(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("ListCampuses failed", "error", err)
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, gin.H{"campuses": campuses})
}

// GET /api/program-offerings
func (h *CatalogHandler) ListOfferings(c *gin.Context) {
	offerings, err := h.catalogSvc.Offerings(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("ListOfferings failed", "error", err)
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, gin.H{"offerings": offerings})
}

// GET /api/program/:id
func (h *CatalogHandler) GetProgramDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	detail, err := h.catalogSvc.ProgramDetail(c.Request.Context(), nil, id)
	if err != nil {
		h.respondDetailError(c, "GetProgramDetail", err)
		return
	}
	RespondOK(c, gin.H{"program": detail})
}

// GET /api/university/:id
func (h *CatalogHandler) GetUniversityDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	detail, err := h.catalogSvc.UniversityDetail(c.Request.Context(), nil, id)
	if err != nil {
		h.respondDetailError(c, "GetUniversityDetail", err)
		return
	}
	RespondOK(c, gin.H{"university": detail})
}

// GET /api/search-programs?q=
func (h *CatalogHandler) SearchPrograms(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondError(c, http.StatusBadRequest, errors.New("query parameter required"))
		return
	}
	programs, err := h.catalogSvc.SearchPrograms(c.Request.Context(), nil, query)
	if err != nil {
		h.log.Error("SearchPrograms failed", "error", err, "query", query)
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, gin.H{"programs": programs, "query": query})
}

// GET /api/stats
func (h *CatalogHandler) GetStats(c *gin.Context) {
	stats, err := h.catalogSvc.Stats(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("GetStats failed", "error", err)
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, gin.H{"stats": stats})
}

func (h *CatalogHandler) respondDetailError(c *gin.Context, op string, err error) {
	if errors.Is(err, repos.ErrNotFound) {
		RespondError(c, http.StatusNotFound, err)
		return
	}
	h.log.Error(op+" failed", "error", err)
	RespondError(c, http.StatusInternalServerError, err)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, errors.New("invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}
