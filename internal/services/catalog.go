package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/uni-verse/universe-backend/internal/cache"
	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/repos"
)

// CatalogService serves the listing, detail, search and stats endpoints.
// Listings and stats go through the optional snapshot cache; details and
// search always hit the database.
type CatalogService interface {
	Universities(ctx context.Context, tx *gorm.DB) ([]repos.UniversitySummary, error)
	Programs(ctx context.Context, tx *gorm.DB) ([]repos.ProgramSummary, error)
	Campuses(ctx context.Context, tx *gorm.DB) ([]repos.CampusView, error)
	Offerings(ctx context.Context, tx *gorm.DB) ([]repos.OfferingView, error)
	ProgramDetail(ctx context.Context, tx *gorm.DB, programID uint) (*repos.ProgramDetail, error)
	UniversityDetail(ctx context.Context, tx *gorm.DB, universityID uint) (*repos.UniversityDetail, error)
	SearchPrograms(ctx context.Context, tx *gorm.DB, query string) ([]repos.ProgramSummary, error)
	Stats(ctx context.Context, tx *gorm.DB) (*repos.CatalogStats, error)
}

type catalogService struct {
	db          *gorm.DB
	log         *logger.Logger
	catalogRepo repos.CatalogRepo
	cache       *cache.Cache
}

func NewCatalogService(db *gorm.DB, baseLog *logger.Logger, catalogRepo repos.CatalogRepo, c *cache.Cache) CatalogService {
	return &catalogService{
		db:          db,
		log:         baseLog.With("service", "CatalogService"),
		catalogRepo: catalogRepo,
		cache:       c,
	}
}

const (
	cacheKeyUniversities = "catalog:universities"
	cacheKeyPrograms     = "catalog:programs"
	cacheKeyStats        = "catalog:stats"
)

func (cs *catalogService) Universities(ctx context.Context, tx *gorm.DB) ([]repos.UniversitySummary, error) {
	var cached []repos.UniversitySummary
	if cs.cache.GetJSON(ctx, cacheKeyUniversities, &cached) {
		return cached, nil
	}
	universities, err := cs.catalogRepo.ListUniversities(ctx, tx)
	if err != nil {
		return nil, err
	}
	cs.cache.SetJSON(ctx, cacheKeyUniversities, universities)
	return universities, nil
}

func (cs *catalogService) Programs(ctx context.Context, tx *gorm.DB) ([]repos.ProgramSummary, error) {
	var cached []repos.ProgramSummary
	if cs.cache.GetJSON(ctx, cacheKeyPrograms, &cached) {
		return cached, nil
	}
	programs, err := cs.catalogRepo.ListPrograms(ctx, tx)
	if err != nil {
		return nil, err
	}
	cs.cache.SetJSON(ctx, cacheKeyPrograms, programs)
	return programs, nil
}

func (cs *catalogService) Campuses(ctx context.Context, tx *gorm.DB) ([]repos.CampusView, error) {
	return cs.catalogRepo.ListCampuses(ctx, tx)
}

func (cs *catalogService) Offerings(ctx context.Context, tx *gorm.DB) ([]repos.OfferingView, error) {
	return cs.catalogRepo.ListOfferings(ctx, tx)
}

func (cs *catalogService) ProgramDetail(ctx context.Context, tx *gorm.DB, programID uint) (*repos.ProgramDetail, error) {
	return cs.catalogRepo.GetProgramDetail(ctx, tx, programID)
}

func (cs *catalogService) UniversityDetail(ctx context.Context, tx *gorm.DB, universityID uint) (*repos.UniversityDetail, error) {
	return cs.catalogRepo.GetUniversityDetail(ctx, tx, universityID)
}

func (cs *catalogService) SearchPrograms(ctx context.Context, tx *gorm.DB, query string) ([]repos.ProgramSummary, error) {
	return cs.catalogRepo.SearchPrograms(ctx, tx, query)
}

func (cs *catalogService) Stats(ctx context.Context, tx *gorm.DB) (*repos.CatalogStats, error) {
	var cached repos.CatalogStats
	if cs.cache.GetJSON(ctx, cacheKeyStats, &cached) {
		return &cached, nil
	}
	stats, err := cs.catalogRepo.Stats(ctx, tx)
	if err != nil {
		return nil, err
	}
	cs.cache.SetJSON(ctx, cacheKeyStats, stats)
	return stats, nil
}
