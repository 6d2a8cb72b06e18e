package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/matching"
	"github.com/uni-verse/universe-backend/internal/repos"
)

// MatchService runs one match request end to end: parse the profile, fetch
// the candidate snapshot, and hand both to the engine. A retrieval failure is
// fatal for the request; no partial result list ever escapes.
type MatchService interface {
	MatchPrograms(ctx context.Context, tx *gorm.DB, payload matching.ProfilePayload) (*matching.MatchResult, error)
}

type matchService struct {
	db          *gorm.DB
	log         *logger.Logger
	catalogRepo repos.CatalogRepo
	engine      *matching.Engine
}

func NewMatchService(db *gorm.DB, baseLog *logger.Logger, catalogRepo repos.CatalogRepo, engine *matching.Engine) MatchService {
	return &matchService{
		db:          db,
		log:         baseLog.With("service", "MatchService"),
		catalogRepo: catalogRepo,
		engine:      engine,
	}
}

func (ms *matchService) MatchPrograms(ctx context.Context, tx *gorm.DB, payload matching.ProfilePayload) (*matching.MatchResult, error) {
	profile := matching.ParseProfile(payload)

	// The SQL-side filter mirrors the engine's academic and budget terms; it
	// is an optimization, the engine re-scores whatever comes back.
	candidates, err := ms.catalogRepo.CandidateOfferings(ctx, tx, profile.AcademicScore(), profile.Budget)
	if err != nil {
		ms.log.Error("candidate retrieval failed", "error", err)
		return nil, fmt.Errorf("retrieve candidate offerings: %w", err)
	}

	result := ms.engine.Match(profile, candidates)
	ms.log.Info("match request served",
		"group", profile.GroupLabel,
		"candidates", len(candidates),
		"matches", result.TotalMatches,
	)
	return result, nil
}
