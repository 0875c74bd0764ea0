package store

import (
	"gorm.io/gorm"

	"ayuvibe-server/internal/models"
)

// TreatmentStore persists Treatment rows.
type TreatmentStore struct {
	db *gorm.DB
}

func NewTreatmentStore(db *gorm.DB) *TreatmentStore {
	return &TreatmentStore{db: db}
}

// TreatmentPatch lists the mutable treatment fields.
type TreatmentPatch struct {
	TreatmentDescription *string `json:"treatment_description"`
	Dosage               *string `json:"dosage"`
	Duration             *string `json:"duration"`
}

func (p TreatmentPatch) apply(m *models.Treatment) {
	if p.TreatmentDescription != nil {
		m.TreatmentDescription = *p.TreatmentDescription
	}
	if p.Dosage != nil {
		m.Dosage = *p.Dosage
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
}

func (s *TreatmentStore) Create(t *models.Treatment) error {
	return s.db.Create(t).Error
}

func (s *TreatmentStore) GetByID(id uint) (*models.Treatment, error) {
	var t models.Treatment
	if err := s.db.First(&t, "treatment_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *TreatmentStore) List() ([]models.Treatment, error) {
	treatments := make([]models.Treatment, 0)
	if err := s.db.Order("treatment_id asc").Find(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

func (s *TreatmentStore) Update(id uint, patch TreatmentPatch) (*models.Treatment, error) {
	var t models.Treatment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "treatment_id = ?", id).Error; err != nil {
			return err
		}
		patch.apply(&t)
		return tx.Save(&t).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *TreatmentStore) Delete(id uint) error {
	res := s.db.Delete(&models.Treatment{}, "treatment_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
