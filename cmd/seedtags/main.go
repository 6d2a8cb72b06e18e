package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/uni-verse/universe-backend/internal/db"
	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/repos"
)

// Discipline tags per program, keyed by program name as it appears in the
// catalog. Most specific tags first; these are what the interest taxonomy
// matches against, so the vocabulary here must stay aligned with it.
var tagMappings = map[string][]string{
	// Medical
	"MBBS": {"medicine", "medical", "doctor", "mbbs"},
	"BDS":  {"dentistry", "dental", "medicine"},
	"DVM":  {"veterinary", "animal", "medicine"},

	// Allied health
	"BS Nursing":            {"nursing", "allied-health", "medicine"},
	"BS Medical Technology": {"medical-technology", "allied-health", "medicine"},
	"BS Pharmacy":           {"pharmacy", "allied-health", "medicine"},
	"BS Physiotherapy":      {"physiotherapy", "allied-health", "medicine"},
	"BS Medical Laboratory": {"medical-laboratory", "allied-health", "medicine"},

	// Engineering
	"Civil Engineering":      {"engineering", "civil", "construction"},
	"Electrical Engineering": {"engineering", "electrical", "electronics"},
	"Mechanical Engineering": {"engineering", "mechanical", "manufacturing"},
	"Chemical Engineering":   {"engineering", "chemical", "process"},
	"Software Engineering":   {"engineering", "software", "computer-science"},
	"Computer Engineering":   {"engineering", "computer", "electronics"},

	// Computing
	"Computer Science":        {"computer-science", "programming", "technology"},
	"Information Technology":  {"information-technology", "computer-science", "technology"},
	"Data Science":            {"data-science", "computer-science", "analytics"},
	"Artificial Intelligence": {"artificial-intelligence", "computer-science", "technology"},
	"Cybersecurity":           {"cybersecurity", "computer-science", "security"},

	// Business
	"Business Administration": {"business", "management", "administration"},
	"Commerce":                {"commerce", "business", "economics"},
	"Economics":               {"economics", "business", "social-sciences"},
	"Finance":                 {"finance", "business", "banking"},
	"Accounting":              {"accounting", "business", "finance"},
	"Marketing":               {"marketing", "business", "advertising"},

	// Arts and humanities
	"English Literature": {"literature", "humanities", "arts"},
	"History":            {"history", "humanities", "arts"},
	"Philosophy":         {"philosophy", "humanities", "arts"},
	"Psychology":         {"psychology", "social-sciences", "humanities"},
	"Sociology":          {"sociology", "social-sciences", "humanities"},
	"Political Science":  {"political-science", "social-sciences", "humanities"},
}

const seedWorkers = 8

func main() {
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log = log.With("cmd", "seedtags")

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	tagRepo := repos.NewTagRepo(postgresService.DB(), log)

	ctx := context.Background()

	// Ensure every distinct tag exists up front so the concurrent attach
	// phase only inserts join rows.
	tagIDs := make(map[string]uint)
	for _, tags := range tagMappings {
		for _, name := range tags {
			if _, ok := tagIDs[name]; ok {
				continue
			}
			tag, err := tagRepo.EnsureTag(ctx, nil, name)
			if err != nil {
				log.Fatal("Tag ensure failed", "tag", name, "error", err)
			}
			tagIDs[name] = tag.ID
		}
	}
	log.Info("Tags ensured", "count", len(tagIDs))

	var attached, skipped, programsMatched int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedWorkers)
	for programName, tags := range tagMappings {
		g.Go(func() error {
			programIDs, err := tagRepo.ProgramIDsByName(gctx, nil, programName)
			if err != nil {
				return err
			}
			if len(programIDs) == 0 {
				log.Debug("No programs found for mapping", "program", programName)
				return nil
			}
			atomic.AddInt64(&programsMatched, int64(len(programIDs)))
			offeringIDs, err := tagRepo.OfferingIDsForPrograms(gctx, nil, programIDs)
			if err != nil {
				return err
			}
			for _, offeringID := range offeringIDs {
				for _, tagName := range tags {
					created, err := tagRepo.AttachTag(gctx, nil, offeringID, tagIDs[tagName])
					if err != nil {
						return err
					}
					if created {
						atomic.AddInt64(&attached, 1)
					} else {
						atomic.AddInt64(&skipped, 1)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("Tag seeding failed", "error", err)
	}

	log.Info("Tag seeding complete",
		"programs_matched", programsMatched,
		"attached", attached,
		"already_present", skipped,
	)
}
