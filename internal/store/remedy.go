package store

import (
	"gorm.io/gorm"

	"ayuvibe-server/internal/models"
)

// RemedyStore persists Remedy catalog entries.
type RemedyStore struct {
	db *gorm.DB
}

func NewRemedyStore(db *gorm.DB) *RemedyStore {
	return &RemedyStore{db: db}
}

func (s *RemedyStore) Create(r *models.Remedy) error {
	return s.db.Create(r).Error
}

func (s *RemedyStore) GetByID(id uint) (*models.Remedy, error) {
	var r models.Remedy
	if err := s.db.First(&r, "remedy_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

// List returns a page of remedies ordered by id.
func (s *RemedyStore) List(skip, limit int) ([]models.Remedy, error) {
	remedies := make([]models.Remedy, 0)
	if err := s.db.Order("remedy_id asc").Offset(skip).Limit(limit).Find(&remedies).Error; err != nil {
		return nil, err
	}
	return remedies, nil
}

// Update replaces every catalog field, mirroring HerbStore.Update.
func (s *RemedyStore) Update(id uint, fields models.Remedy) (*models.Remedy, error) {
	var r models.Remedy
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&r, "remedy_id = ?", id).Error; err != nil {
			return err
		}
		r.RemedyName = fields.RemedyName
		r.Ingredients = fields.Ingredients
		r.Benefits = fields.Benefits
		r.PreparationMethod = fields.PreparationMethod
		r.DosageInstructions = fields.DosageInstructions
		r.Precautions = fields.Precautions
		return tx.Save(&r).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (s *RemedyStore) Delete(id uint) error {
	res := s.db.Delete(&models.Remedy{}, "remedy_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
