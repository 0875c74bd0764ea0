package models

import "time"

// Diagnosis records the outcome of an appointment.
type Diagnosis struct {
	DiagnosisID          uint      `gorm:"column:diagnosis_id;primaryKey" json:"diagnosis_id"`
	AppointmentID        uint      `gorm:"column:appointment_id;index" json:"appointment_id"`
	DiagnosisDate        time.Time `gorm:"autoCreateTime" json:"diagnosis_date"`
	DiagnosisDescription string    `gorm:"type:text;not null" json:"diagnosis_description"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
