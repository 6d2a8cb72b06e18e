package types

// ProgramOffering is a program taught at a specific campus with its own
// admission requirements. Tags, subject-group requirements, accepted boards
// and entrance tests hang off the offering, not the program.
type ProgramOffering struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	ProgramID       uint     `gorm:"column:program_id;not null;index" json:"program_id"`
	Program         *Program `gorm:"foreignKey:ProgramID;references:ID" json:"program,omitempty"`
	CampusID        uint     `gorm:"column:campus_id;not null;index" json:"campus_id"`
	Campus          *Campus  `gorm:"foreignKey:CampusID;references:ID" json:"campus,omitempty"`
	MinScorePct     float64  `gorm:"column:min_score_pct;not null" json:"min_score_pct"`
	MinScoreType    string   `gorm:"column:min_score_type" json:"min_score_type"`
	AnnualFee       int      `gorm:"column:annual_fee;not null" json:"annual_fee"`
	HostelAvailable bool     `gorm:"column:hostel_available;not null;default:false" json:"hostel_available"`

	Tags   []Tag                  `gorm:"many2many:program_offering_tags;joinForeignKey:OfferingID;joinReferences:TagID" json:"tags,omitempty"`
	Groups []ProgramOfferingGroup `gorm:"constraint:OnDelete:CASCADE;foreignKey:OfferingID;references:ID" json:"groups,omitempty"`
	Boards []ProgramOfferingBoard `gorm:"constraint:OnDelete:CASCADE;foreignKey:OfferingID;references:ID" json:"boards,omitempty"`
	Tests  []ProgramOfferingTest  `gorm:"constraint:OnDelete:CASCADE;foreignKey:OfferingID;references:ID" json:"tests,omitempty"`
}

func (ProgramOffering) TableName() string { return "program_offerings" }

type ProgramOfferingGroup struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	OfferingID   uint   `gorm:"column:offering_id;not null;index" json:"offering_id"`
	SubjectGroup string `gorm:"column:subject_group;not null" json:"subject_group"`
}

func (ProgramOfferingGroup) TableName() string { return "program_offering_groups" }

type ProgramOfferingBoard struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OfferingID uint   `gorm:"column:offering_id;not null;index" json:"offering_id"`
	Board      string `gorm:"column:board;not null" json:"board"`
}

func (ProgramOfferingBoard) TableName() string { return "program_offering_boards" }

type ProgramOfferingTest struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	OfferingID uint              `gorm:"column:offering_id;not null;index" json:"offering_id"`
	TestTypeID uint              `gorm:"column:test_type_id;not null" json:"test_type_id"`
	TestType   *EntranceTestType `gorm:"foreignKey:TestTypeID;references:ID" json:"test_type,omitempty"`
}

func (ProgramOfferingTest) TableName() string { return "program_offering_tests" }

type EntranceTestType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (EntranceTestType) TableName() string { return "entrance_test_types" }
