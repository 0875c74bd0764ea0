package models

import "time"

// Doctor represents a registered doctor account.
type Doctor struct {
	DoctorID         uint      `gorm:"column:doctor_id;primaryKey" json:"doctor_id"`
	FirstName        string    `gorm:"size:50;not null" json:"first_name"`
	LastName         string    `gorm:"size:50;not null" json:"last_name"`
	Specialization   string    `gorm:"size:100" json:"specialization"`
	PhoneNumber      string    `gorm:"size:15" json:"phone_number"`
	Email            string    `gorm:"size:100" json:"email"`
	Address          string    `gorm:"type:text" json:"address"`
	City             string    `gorm:"size:50" json:"city"`
	State            string    `gorm:"size:50" json:"state"`
	PostalCode       string    `gorm:"size:10" json:"postal_code"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	Password         string    `gorm:"size:255;not null" json:"-"` // Never send password in JSON
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorSanitized represents the doctor data that is safe to send in API responses.
type DoctorSanitized struct {
	DoctorID         uint      `json:"doctor_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Specialization   string    `json:"specialization"`
	PhoneNumber      string    `json:"phone_number"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	PostalCode       string    `json:"postal_code"`
	RegistrationDate time.Time `json:"registration_date"`
}

// Sanitize creates a DoctorSanitized struct from a Doctor model, excluding the
// password hash.
func (d *Doctor) Sanitize() DoctorSanitized {
	return DoctorSanitized{
		DoctorID:         d.DoctorID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Specialization:   d.Specialization,
		PhoneNumber:      d.PhoneNumber,
		Email:            d.Email,
		Address:          d.Address,
		City:             d.City,
		State:            d.State,
		PostalCode:       d.PostalCode,
		RegistrationDate: d.RegistrationDate,
	}
}
