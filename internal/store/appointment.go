package store

import (
	"time"

	"gorm.io/gorm"

	"ayuvibe-server/internal/models"
)

// AppointmentStore persists Appointment rows and serves the nested
// diagnoses-with-treatments query.
type AppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

// AppointmentPatch lists the mutable appointment fields. The patient and
// doctor references are fixed at creation.
type AppointmentPatch struct {
	AppointmentDate   *time.Time `json:"appointment_date"`
	Reason            *string    `json:"reason"`
	AppointmentStatus *string    `json:"appointment_status"`
}

func (p AppointmentPatch) apply(m *models.Appointment) {
	if p.AppointmentDate != nil {
		m.AppointmentDate = *p.AppointmentDate
	}
	if p.Reason != nil {
		m.Reason = *p.Reason
	}
	if p.AppointmentStatus != nil {
		m.AppointmentStatus = *p.AppointmentStatus
	}
}

// DiagnosisWithTreatments pairs a diagnosis with its prescribed treatments.
type DiagnosisWithTreatments struct {
	Diagnosis  models.Diagnosis   `json:"diagnosis"`
	Treatments []models.Treatment `json:"treatments"`
}

func (s *AppointmentStore) Create(a *models.Appointment) error {
	if a.AppointmentStatus == "" {
		a.AppointmentStatus = models.StatusScheduled
	}
	return s.db.Create(a).Error
}

func (s *AppointmentStore) GetByID(id uint) (*models.Appointment, error) {
	var a models.Appointment
	if err := s.db.First(&a, "appointment_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *AppointmentStore) List() ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := s.db.Order("appointment_id asc").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentStore) Update(id uint, patch AppointmentPatch) (*models.Appointment, error) {
	var a models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "appointment_id = ?", id).Error; err != nil {
			return err
		}
		patch.apply(&a)
		return tx.Save(&a).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *AppointmentStore) Delete(id uint) error {
	res := s.db.Delete(&models.Appointment{}, "appointment_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DiagnosesWithTreatments returns every diagnosis recorded for the appointment
// together with its treatments. An appointment with zero diagnoses yields
// ErrNotFound, exactly like an appointment id that does not exist; the two
// cases are deliberately not distinguished.
func (s *AppointmentStore) DiagnosesWithTreatments(appointmentID uint) ([]DiagnosisWithTreatments, error) {
	diagnoses := make([]models.Diagnosis, 0)
	if err := s.db.Order("diagnosis_id asc").Find(&diagnoses, "appointment_id = ?", appointmentID).Error; err != nil {
		return nil, err
	}
	if len(diagnoses) == 0 {
		return nil, ErrNotFound
	}

	result := make([]DiagnosisWithTreatments, 0, len(diagnoses))
	for _, d := range diagnoses {
		treatments := make([]models.Treatment, 0)
		if err := s.db.Order("treatment_id asc").Find(&treatments, "diagnosis_id = ?", d.DiagnosisID).Error; err != nil {
			return nil, err
		}
		result = append(result, DiagnosisWithTreatments{Diagnosis: d, Treatments: treatments})
	}
	return result, nil
}
