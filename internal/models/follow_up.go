package models

import "time"

// FollowUp schedules a return visit for an appointment.
type FollowUp struct {
	FollowUpID    uint      `gorm:"column:follow_up_id;primaryKey" json:"follow_up_id"`
	AppointmentID uint      `gorm:"column:appointment_id;index" json:"appointment_id"`
	FollowUpDate  time.Time `json:"follow_up_date"`
	FollowUpNotes string    `gorm:"type:text" json:"follow_up_notes"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}

func (FollowUp) TableName() string {
	return "follow_ups"
}
