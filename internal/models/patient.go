package models

import "time"

// Patient represents a registered patient account.
type Patient struct {
	PatientID        uint      `gorm:"column:patient_id;primaryKey" json:"patient_id"`
	FirstName        string    `gorm:"size:50;not null" json:"first_name"`
	LastName         string    `gorm:"size:50;not null" json:"last_name"`
	DateOfBirth      string    `gorm:"size:10;not null" json:"date_of_birth"`
	Gender           string    `gorm:"size:10" json:"gender"`
	PhoneNumber      string    `gorm:"size:15" json:"phone_number"`
	Email            string    `gorm:"size:100" json:"email"`
	Address          string    `gorm:"type:text" json:"address"`
	City             string    `gorm:"size:50" json:"city"`
	State            string    `gorm:"size:50" json:"state"`
	PostalCode       string    `gorm:"size:10" json:"postal_code"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	Password         string    `gorm:"size:255;not null" json:"-"` // Never send password in JSON
}

func (Patient) TableName() string {
	return "patients"
}

// PatientSanitized represents the patient data that is safe to send in API responses.
type PatientSanitized struct {
	PatientID        uint      `json:"patient_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      string    `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	PhoneNumber      string    `json:"phone_number"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	PostalCode       string    `json:"postal_code"`
	RegistrationDate time.Time `json:"registration_date"`
}

// Sanitize creates a PatientSanitized struct from a Patient model, excluding the
// password hash.
func (p *Patient) Sanitize() PatientSanitized {
	return PatientSanitized{
		PatientID:        p.PatientID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		DateOfBirth:      p.DateOfBirth,
		Gender:           p.Gender,
		PhoneNumber:      p.PhoneNumber,
		Email:            p.Email,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		PostalCode:       p.PostalCode,
		RegistrationDate: p.RegistrationDate,
	}
}
