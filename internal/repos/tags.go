package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/types"
)

// TagRepo is the write side used by the tag-seeding command. Attachment is
// duplicate-tolerant so re-running the seeder is a no-op.
type TagRepo interface {
	EnsureTag(ctx context.Context, tx *gorm.DB, name string) (*types.Tag, error)
	ProgramIDsByName(ctx context.Context, tx *gorm.DB, name string) ([]uint, error)
	OfferingIDsForPrograms(ctx context.Context, tx *gorm.DB, programIDs []uint) ([]uint, error)
	AttachTag(ctx context.Context, tx *gorm.DB, offeringID, tagID uint) (created bool, err error)
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return &tagRepo{db: db, log: baseLog.With("repo", "TagRepo")}
}

func (r *tagRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *tagRepo) EnsureTag(ctx context.Context, tx *gorm.DB, name string) (*types.Tag, error) {
	var tag types.Tag
	err := r.conn(tx).WithContext(ctx).
		Where(types.Tag{Name: name}).
		FirstOrCreate(&tag).Error
	if err != nil {
		return nil, fmt.Errorf("ensure tag %q: %w", name, err)
	}
	return &tag, nil
}

func (r *tagRepo) ProgramIDsByName(ctx context.Context, tx *gorm.DB, name string) ([]uint, error) {
	var ids []uint
	err := r.conn(tx).WithContext(ctx).
		Model(&types.Program{}).
		Where("name = ?", name).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("programs by name %q: %w", name, err)
	}
	return ids, nil
}

func (r *tagRepo) OfferingIDsForPrograms(ctx context.Context, tx *gorm.DB, programIDs []uint) ([]uint, error) {
	if len(programIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.conn(tx).WithContext(ctx).
		Model(&types.ProgramOffering{}).
		Where("program_id IN ?", programIDs).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("offerings for programs: %w", err)
	}
	return ids, nil
}

// AttachTag inserts the join row. Duplicate inserts are swallowed and
// reported as created=false.
func (r *tagRepo) AttachTag(ctx context.Context, tx *gorm.DB, offeringID, tagID uint) (bool, error) {
	row := types.ProgramOfferingTag{OfferingID: offeringID, TagID: tagID}
	err := r.conn(tx).WithContext(ctx).Create(&row).Error
	if err != nil {
		if IsDuplicate(err) {
			return false, nil
		}
		return false, fmt.Errorf("attach tag %d to offering %d: %w", tagID, offeringID, err)
	}
	return true, nil
}
