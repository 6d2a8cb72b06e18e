package types

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (Tag) TableName() string { return "tags" }

// ProgramOfferingTag is the offering↔tag join row. Declared explicitly so the
// seeder can insert rows directly and rely on the composite unique index for
// idempotent re-runs.
type ProgramOfferingTag struct {
	OfferingID uint `gorm:"column:offering_id;primaryKey" json:"offering_id"`
	TagID      uint `gorm:"column:tag_id;primaryKey" json:"tag_id"`
}

func (ProgramOfferingTag) TableName() string { return "program_offering_tags" }
