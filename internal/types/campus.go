package types

type Campus struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UniversityID uint        `gorm:"column:university_id;not null;index" json:"university_id"`
	University   *University `gorm:"foreignKey:UniversityID;references:ID" json:"university,omitempty"`
	City         string      `gorm:"column:city;not null" json:"city"`
}

func (Campus) TableName() string { return "campuses" }
