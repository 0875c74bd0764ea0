package store

import (
	"gorm.io/gorm"

	"ayuvibe-server/internal/models"
)

// DiagnosisStore persists Diagnosis rows.
type DiagnosisStore struct {
	db *gorm.DB
}

func NewDiagnosisStore(db *gorm.DB) *DiagnosisStore {
	return &DiagnosisStore{db: db}
}

// DiagnosisPatch lists the mutable diagnosis fields. The appointment reference
// and diagnosis date are fixed at creation.
type DiagnosisPatch struct {
	DiagnosisDescription *string `json:"diagnosis_description"`
}

func (p DiagnosisPatch) apply(m *models.Diagnosis) {
	if p.DiagnosisDescription != nil {
		m.DiagnosisDescription = *p.DiagnosisDescription
	}
}

func (s *DiagnosisStore) Create(d *models.Diagnosis) error {
	return s.db.Create(d).Error
}

func (s *DiagnosisStore) GetByID(id uint) (*models.Diagnosis, error) {
	var d models.Diagnosis
	if err := s.db.First(&d, "diagnosis_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (s *DiagnosisStore) List() ([]models.Diagnosis, error) {
	diagnoses := make([]models.Diagnosis, 0)
	if err := s.db.Order("diagnosis_id asc").Find(&diagnoses).Error; err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (s *DiagnosisStore) Update(id uint, patch DiagnosisPatch) (*models.Diagnosis, error) {
	var d models.Diagnosis
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&d, "diagnosis_id = ?", id).Error; err != nil {
			return err
		}
		patch.apply(&d)
		return tx.Save(&d).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (s *DiagnosisStore) Delete(id uint) error {
	res := s.db.Delete(&models.Diagnosis{}, "diagnosis_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
