package models

// Herb is a catalog entry, independent of patient data.
type Herb struct {
	HerbID        uint   `gorm:"column:herb_id;primaryKey" json:"herb_id"`
	HerbName      string `gorm:"size:100;not null" json:"herb_name"`
	BotanicalName string `gorm:"size:100" json:"botanical_name"`
	CommonNames   string `gorm:"type:text" json:"common_names"`
	Benefits      string `gorm:"type:text" json:"benefits"`
	PrimaryUses   string `gorm:"type:text" json:"primary_uses"`
	Dosage        string `gorm:"size:100" json:"dosage"`
	Form          string `gorm:"size:50" json:"form"`
}

func (Herb) TableName() string {
	return "herbs"
}
