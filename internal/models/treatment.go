package models

import "time"

// Treatment is a prescribed course for a diagnosis.
type Treatment struct {
	TreatmentID          uint      `gorm:"column:treatment_id;primaryKey" json:"treatment_id"`
	DiagnosisID          uint      `gorm:"column:diagnosis_id;index" json:"diagnosis_id"`
	TreatmentDescription string    `gorm:"type:text;not null" json:"treatment_description"`
	Dosage               string    `gorm:"size:100" json:"dosage"`
	Duration             string    `gorm:"size:50" json:"duration"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`

	Diagnosis Diagnosis `gorm:"foreignKey:DiagnosisID" json:"-"`
}

func (Treatment) TableName() string {
	return "treatments"
}
