package types

type Program struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"column:name;not null;index" json:"name"`
	Discipline string `gorm:"column:discipline;index" json:"discipline"`
	Code       string `gorm:"column:code" json:"code"`

	Offerings []ProgramOffering `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProgramID;references:ID" json:"offerings,omitempty"`
}

func (Program) TableName() string { return "programs" }
