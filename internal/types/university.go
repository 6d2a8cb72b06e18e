package types

type University struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"column:name;not null" json:"name"`
	Sector string `gorm:"column:sector" json:"sector"`

	Campuses []Campus `gorm:"constraint:OnDelete:CASCADE;foreignKey:UniversityID;references:ID" json:"campuses,omitempty"`
}

func (University) TableName() string { return "universities" }
