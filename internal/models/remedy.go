package models

// Remedy is a catalog entry, independent of patient data.
type Remedy struct {
	RemedyID           uint   `gorm:"column:remedy_id;primaryKey" json:"remedy_id"`
	RemedyName         string `gorm:"size:100;not null" json:"remedy_name"`
	Ingredients        string `gorm:"type:text;not null" json:"ingredients"`
	Benefits           string `gorm:"type:text" json:"benefits"`
	PreparationMethod  string `gorm:"type:text" json:"preparation_method"`
	DosageInstructions string `gorm:"type:text" json:"dosage_instructions"`
	Precautions        string `gorm:"type:text" json:"precautions"`
}

func (Remedy) TableName() string {
	return "remedies"
}
