package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/matching"
	"github.com/uni-verse/universe-backend/internal/services"
)

type MatchHandler struct {
	log      *logger.Logger
	matchSvc services.MatchService
}

func NewMatchHandler(log *logger.Logger, matchSvc services.MatchService) *MatchHandler {
	return &MatchHandler{
		log:      log.With("handler", "MatchHandler"),
		matchSvc: matchSvc,
	}
}

// POST /api/match-programs
func (h *MatchHandler) MatchPrograms(c *gin.Context) {
	var payload matching.ProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.matchSvc.MatchPrograms(c.Request.Context(), nil, payload)
	if err != nil {
		h.log.Error("MatchPrograms failed", "error", err)
		RespondError(c, http.StatusInternalServerError, err)
		return
	}

	RespondOK(c, gin.H{
		"matched_offerings":    result.MatchedOfferings,
		"total_matches":        result.TotalMatches,
		"subject_restrictions": result.SubjectRestrictions,
	})
}
