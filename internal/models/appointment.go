package models

import "time"

// Default status for newly booked appointments. The status column is free-form
// on purpose; clinics use their own vocabulary beyond this small set.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Appointment links one patient and one doctor at a point in time.
type Appointment struct {
	AppointmentID     uint      `gorm:"column:appointment_id;primaryKey" json:"appointment_id"`
	PatientID         uint      `gorm:"column:patient_id;index" json:"patient_id"`
	DoctorID          uint      `gorm:"column:doctor_id;index" json:"doctor_id"`
	AppointmentDate   time.Time `gorm:"not null" json:"appointment_date"`
	Reason            string    `gorm:"type:text" json:"reason"`
	AppointmentStatus string    `gorm:"size:50;default:'Scheduled'" json:"appointment_status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations (not always preloaded)
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}
