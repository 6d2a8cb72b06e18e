package repos

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/matching"
	"github.com/uni-verse/universe-backend/internal/types"
	"golang.org/x/sync/errgroup"
)

var ErrNotFound = errors.New("not found")

// UniversitySummary is one row of the universities listing.
type UniversitySummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Sector       string `json:"sector"`
	CampusCount  int    `json:"campus_count"`
	ProgramCount int    `json:"program_count"`
}

// ProgramSummary is one row of the programs listing and search results.
type ProgramSummary struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Discipline    string   `json:"discipline"`
	Code          string   `json:"code"`
	OfferingCount int      `json:"offering_count"`
	MinFee        *int     `json:"min_fee"`
	MaxFee        *int     `json:"max_fee"`
	AvgScore      *float64 `json:"avg_score,omitempty"`
}

// CampusView is one row of the campuses listing.
type CampusView struct {
	ID         uint                        `json:"id"`
	City       string                      `json:"city"`
	University matching.OfferingUniversity `json:"university"`
}

// OfferingProgram is the nested program shape on offering views.
type OfferingProgram struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Discipline string `json:"discipline"`
	Code       string `json:"code"`
}

// OfferingView is a fully-joined offering as served by the listing and detail
// endpoints.
type OfferingView struct {
	ID              uint                         `json:"id"`
	Program         *OfferingProgram             `json:"program,omitempty"`
	University      *matching.OfferingUniversity `json:"university,omitempty"`
	Campus          matching.OfferingCampus      `json:"campus"`
	MinScorePct     float64                      `json:"min_score_pct"`
	MinScoreType    string                       `json:"min_score_type"`
	AnnualFee       int                          `json:"annual_fee"`
	HostelAvailable bool                         `json:"hostel_available"`
	Tags            []string                     `json:"tags"`
	RequiredGroups  []string                     `json:"required_groups"`
	AcceptedBoards  []string                     `json:"accepted_boards,omitempty"`
}

// ProgramDetail is a program with all its offerings.
type ProgramDetail struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	Discipline string         `json:"discipline"`
	Code       string         `json:"code"`
	Offerings  []OfferingView `json:"offerings"`
}

// UniversityDetail is a university with its campuses and offerings.
type UniversityDetail struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Sector    string         `json:"sector"`
	Campuses  []CampusRef    `json:"campuses"`
	Offerings []OfferingView `json:"offerings"`
}

type CampusRef struct {
	ID   uint   `json:"id"`
	City string `json:"city"`
}

// CatalogStats holds the entity counts behind /api/stats.
type CatalogStats struct {
	Universities int64 `json:"universities"`
	Campuses     int64 `json:"campuses"`
	Programs     int64 `json:"programs"`
	Offerings    int64 `json:"offerings"`
	Tags         int64 `json:"tags"`
}

// CatalogRepo is the read side of the offering catalog. The matching core
// consumes only CandidateOfferings; the rest backs the listing endpoints.
type CatalogRepo interface {
	CandidateOfferings(ctx context.Context, tx *gorm.DB, maxScore float64, maxFee int) ([]matching.CandidateOffering, error)
	ListUniversities(ctx context.Context, tx *gorm.DB) ([]UniversitySummary, error)
	ListPrograms(ctx context.Context, tx *gorm.DB) ([]ProgramSummary, error)
	ListCampuses(ctx context.Context, tx *gorm.DB) ([]CampusView, error)
	ListOfferings(ctx context.Context, tx *gorm.DB) ([]OfferingView, error)
	GetProgramDetail(ctx context.Context, tx *gorm.DB, programID uint) (*ProgramDetail, error)
	GetUniversityDetail(ctx context.Context, tx *gorm.DB, universityID uint) (*UniversityDetail, error)
	SearchPrograms(ctx context.Context, tx *gorm.DB, query string) ([]ProgramSummary, error)
	Stats(ctx context.Context, tx *gorm.DB) (*CatalogStats, error)
}

type catalogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCatalogRepo(db *gorm.DB, baseLog *logger.Logger) CatalogRepo {
	return &catalogRepo{db: db, log: baseLog.With("repo", "CatalogRepo")}
}

func (r *catalogRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// CandidateOfferings retrieves the pre-filtered candidate set for one match
// request: offerings reachable on score and affordable on fee, cheapest and
// easiest to qualify for first. Tag/group/board sets are aggregated here so
// the engine sees flat records.
func (r *catalogRepo) CandidateOfferings(ctx context.Context, tx *gorm.DB, maxScore float64, maxFee int) ([]matching.CandidateOffering, error) {
	var offerings []types.ProgramOffering
	err := r.conn(tx).WithContext(ctx).
		Preload("Program").
		Preload("Campus").
		Preload("Campus.University").
		Preload("Tags").
		Preload("Groups").
		Preload("Boards").
		Where("min_score_pct <= ? AND annual_fee <= ?", maxScore, maxFee).
		Order("min_score_pct ASC, annual_fee ASC").
		Find(&offerings).Error
	if err != nil {
		return nil, fmt.Errorf("load candidate offerings: %w", err)
	}

	perProgram := make(map[uint]int, len(offerings))
	for _, o := range offerings {
		perProgram[o.ProgramID]++
	}

	candidates := make([]matching.CandidateOffering, 0, len(offerings))
	for _, o := range offerings {
		c := matching.CandidateOffering{
			OfferingID:      o.ID,
			ProgramID:       o.ProgramID,
			MinScorePct:     o.MinScorePct,
			MinScoreType:    o.MinScoreType,
			AnnualFee:       o.AnnualFee,
			HostelAvailable: o.HostelAvailable,
			OfferingCount:   perProgram[o.ProgramID],
			Tags:            tagNames(o.Tags),
			RequiredGroups:  groupNames(o.Groups),
			AcceptedBoards:  boardNames(o.Boards),
		}
		if o.Program != nil {
			c.ProgramName = o.Program.Name
			c.Discipline = o.Program.Discipline
			c.ProgramCode = o.Program.Code
		}
		if o.Campus != nil {
			c.City = o.Campus.City
			if o.Campus.University != nil {
				c.UniversityID = o.Campus.University.ID
				c.UniversityName = o.Campus.University.Name
				c.Sector = o.Campus.University.Sector
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func (r *catalogRepo) ListUniversities(ctx context.Context, tx *gorm.DB) ([]UniversitySummary, error) {
	var rows []UniversitySummary
	err := r.conn(tx).WithContext(ctx).Raw(`
		SELECT u.id, u.name, u.sector,
		       COUNT(DISTINCT c.id) AS campus_count,
		       COUNT(DISTINCT po.id) AS program_count
		FROM universities u
		LEFT JOIN campuses c ON u.id = c.university_id
		LEFT JOIN program_offerings po ON c.id = po.campus_id
		GROUP BY u.id, u.name, u.sector
		ORDER BY u.name`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}
	return rows, nil
}

type programAggRow struct {
	ID            uint
	Name          string
	Discipline    string
	Code          string
	OfferingCount int
	MinFee        *int
	MaxFee        *int
	AvgScore      *float64
}

func (row programAggRow) summary() ProgramSummary {
	s := ProgramSummary{
		ID:            row.ID,
		Name:          row.Name,
		Discipline:    row.Discipline,
		Code:          row.Code,
		OfferingCount: row.OfferingCount,
		MinFee:        row.MinFee,
		MaxFee:        row.MaxFee,
	}
	if row.AvgScore != nil {
		rounded := math.Round(*row.AvgScore*10) / 10
		s.AvgScore = &rounded
	}
	return s
}

func (r *catalogRepo) ListPrograms(ctx context.Context, tx *gorm.DB) ([]ProgramSummary, error) {
	var rows []programAggRow
	err := r.conn(tx).WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.discipline, p.code,
		       COUNT(DISTINCT po.id) AS offering_count,
		       MIN(po.annual_fee) AS min_fee,
		       MAX(po.annual_fee) AS max_fee,
		       AVG(po.min_score_pct) AS avg_score
		FROM programs p
		LEFT JOIN program_offerings po ON p.id = po.program_id
		GROUP BY p.id, p.name, p.discipline, p.code
		ORDER BY p.name`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	summaries := make([]ProgramSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.summary())
	}
	return summaries, nil
}

func (r *catalogRepo) SearchPrograms(ctx context.Context, tx *gorm.DB, query string) ([]ProgramSummary, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var rows []programAggRow
	err := r.conn(tx).WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.discipline, p.code,
		       COUNT(DISTINCT po.id) AS offering_count,
		       MIN(po.annual_fee) AS min_fee,
		       MAX(po.annual_fee) AS max_fee
		FROM programs p
		LEFT JOIN program_offerings po ON p.id = po.program_id
		WHERE LOWER(p.name) LIKE ? OR LOWER(p.discipline) LIKE ?
		GROUP BY p.id, p.name, p.discipline, p.code
		ORDER BY p.name`, pattern, pattern).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search programs: %w", err)
	}
	summaries := make([]ProgramSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.summary())
	}
	return summaries, nil
}

func (r *catalogRepo) ListCampuses(ctx context.Context, tx *gorm.DB) ([]CampusView, error) {
	var campuses []types.Campus
	err := r.conn(tx).WithContext(ctx).
		Preload("University").
		Order("id").
		Find(&campuses).Error
	if err != nil {
		return nil, fmt.Errorf("list campuses: %w", err)
	}
	views := make([]CampusView, 0, len(campuses))
	for _, c := range campuses {
		v := CampusView{ID: c.ID, City: c.City}
		if c.University != nil {
			v.University = matching.OfferingUniversity{
				ID:     c.University.ID,
				Name:   c.University.Name,
				Sector: c.University.Sector,
			}
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *catalogRepo) ListOfferings(ctx context.Context, tx *gorm.DB) ([]OfferingView, error) {
	offerings, err := r.loadOfferings(ctx, tx, nil)
	if err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	views := make([]OfferingView, 0, len(offerings))
	for _, o := range offerings {
		views = append(views, offeringView(o, true, true))
	}
	return views, nil
}

func (r *catalogRepo) GetProgramDetail(ctx context.Context, tx *gorm.DB, programID uint) (*ProgramDetail, error) {
	var program types.Program
	if err := r.conn(tx).WithContext(ctx).First(&program, programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load program %d: %w", programID, err)
	}
	offerings, err := r.loadOfferings(ctx, tx, func(q *gorm.DB) *gorm.DB {
		return q.Where("program_id = ?", programID)
	})
	if err != nil {
		return nil, fmt.Errorf("load program %d offerings: %w", programID, err)
	}
	detail := &ProgramDetail{
		ID:         program.ID,
		Name:       program.Name,
		Discipline: program.Discipline,
		Code:       program.Code,
		Offerings:  make([]OfferingView, 0, len(offerings)),
	}
	for _, o := range offerings {
		detail.Offerings = append(detail.Offerings, offeringView(o, false, true))
	}
	return detail, nil
}

func (r *catalogRepo) GetUniversityDetail(ctx context.Context, tx *gorm.DB, universityID uint) (*UniversityDetail, error) {
	var university types.University
	if err := r.conn(tx).WithContext(ctx).First(&university, universityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load university %d: %w", universityID, err)
	}
	var campuses []types.Campus
	if err := r.conn(tx).WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("id").
		Find(&campuses).Error; err != nil {
		return nil, fmt.Errorf("load university %d campuses: %w", universityID, err)
	}
	campusIDs := make([]uint, 0, len(campuses))
	for _, c := range campuses {
		campusIDs = append(campusIDs, c.ID)
	}
	var offerings []types.ProgramOffering
	if len(campusIDs) > 0 {
		var err error
		offerings, err = r.loadOfferings(ctx, tx, func(q *gorm.DB) *gorm.DB {
			return q.Where("campus_id IN ?", campusIDs)
		})
		if err != nil {
			return nil, fmt.Errorf("load university %d offerings: %w", universityID, err)
		}
	}
	detail := &UniversityDetail{
		ID:        university.ID,
		Name:      university.Name,
		Sector:    university.Sector,
		Campuses:  make([]CampusRef, 0, len(campuses)),
		Offerings: make([]OfferingView, 0, len(offerings)),
	}
	for _, c := range campuses {
		detail.Campuses = append(detail.Campuses, CampusRef{ID: c.ID, City: c.City})
	}
	for _, o := range offerings {
		detail.Offerings = append(detail.Offerings, offeringView(o, true, false))
	}
	return detail, nil
}

// Stats counts each catalog entity; the five counts are independent so they
// run concurrently.
func (r *catalogRepo) Stats(ctx context.Context, tx *gorm.DB) (*CatalogStats, error) {
	conn := r.conn(tx)
	stats := &CatalogStats{}
	counts := []struct {
		model any
		dest  *int64
	}{
		{&types.University{}, &stats.Universities},
		{&types.Campus{}, &stats.Campuses},
		{&types.Program{}, &stats.Programs},
		{&types.ProgramOffering{}, &stats.Offerings},
		{&types.Tag{}, &stats.Tags},
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		g.Go(func() error {
			return conn.WithContext(gctx).Model(c.model).Count(c.dest).Error
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	return stats, nil
}

func (r *catalogRepo) loadOfferings(ctx context.Context, tx *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]types.ProgramOffering, error) {
	q := r.conn(tx).WithContext(ctx).
		Preload("Program").
		Preload("Campus").
		Preload("Campus.University").
		Preload("Tags").
		Preload("Groups").
		Preload("Boards").
		Order("id")
	if scope != nil {
		q = scope(q)
	}
	var offerings []types.ProgramOffering
	if err := q.Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}

func offeringView(o types.ProgramOffering, withProgram, withUniversity bool) OfferingView {
	v := OfferingView{
		ID:              o.ID,
		MinScorePct:     o.MinScorePct,
		MinScoreType:    o.MinScoreType,
		AnnualFee:       o.AnnualFee,
		HostelAvailable: o.HostelAvailable,
		Tags:            tagNames(o.Tags),
		RequiredGroups:  groupNames(o.Groups),
		AcceptedBoards:  boardNames(o.Boards),
	}
	if withProgram && o.Program != nil {
		v.Program = &OfferingProgram{
			ID:         o.Program.ID,
			Name:       o.Program.Name,
			Discipline: o.Program.Discipline,
			Code:       o.Program.Code,
		}
	}
	if o.Campus != nil {
		v.Campus = matching.OfferingCampus{City: o.Campus.City}
		if withUniversity && o.Campus.University != nil {
			v.University = &matching.OfferingUniversity{
				ID:     o.Campus.University.ID,
				Name:   o.Campus.University.Name,
				Sector: o.Campus.University.Sector,
			}
		}
	}
	return v
}

func tagNames(tags []types.Tag) []string {
	names := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seen[t.Name]; dup {
			continue
		}
		seen[t.Name] = struct{}{}
		names = append(names, t.Name)
	}
	return names
}

func groupNames(groups []types.ProgramOfferingGroup) []string {
	names := make([]string, 0, len(groups))
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if _, dup := seen[g.SubjectGroup]; dup {
			continue
		}
		seen[g.SubjectGroup] = struct{}{}
		names = append(names, g.SubjectGroup)
	}
	return names
}

func boardNames(boards []types.ProgramOfferingBoard) []string {
	names := make([]string, 0, len(boards))
	seen := make(map[string]struct{}, len(boards))
	for _, b := range boards {
		if _, dup := seen[b.Board]; dup {
			continue
		}
		seen[b.Board] = struct{}{}
		names = append(names, b.Board)
	}
	return names
}
