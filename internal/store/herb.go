package store

import (
	"gorm.io/gorm"

	"ayuvibe-server/internal/models"
)

// Default paging for the catalog listings.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

// HerbStore persists Herb catalog entries.
type HerbStore struct {
	db *gorm.DB
}

func NewHerbStore(db *gorm.DB) *HerbStore {
	return &HerbStore{db: db}
}

func (s *HerbStore) Create(h *models.Herb) error {
	return s.db.Create(h).Error
}

func (s *HerbStore) GetByID(id uint) (*models.Herb, error) {
	var h models.Herb
	if err := s.db.First(&h, "herb_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

// List returns a page of herbs ordered by id.
func (s *HerbStore) List(skip, limit int) ([]models.Herb, error) {
	herbs := make([]models.Herb, 0)
	if err := s.db.Order("herb_id asc").Offset(skip).Limit(limit).Find(&herbs).Error; err != nil {
		return nil, err
	}
	return herbs, nil
}

// Update replaces every catalog field. Herb updates are full puts, not
// partial patches.
func (s *HerbStore) Update(id uint, fields models.Herb) (*models.Herb, error) {
	var h models.Herb
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&h, "herb_id = ?", id).Error; err != nil {
			return err
		}
		h.HerbName = fields.HerbName
		h.BotanicalName = fields.BotanicalName
		h.CommonNames = fields.CommonNames
		h.Benefits = fields.Benefits
		h.PrimaryUses = fields.PrimaryUses
		h.Dosage = fields.Dosage
		h.Form = fields.Form
		return tx.Save(&h).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (s *HerbStore) Delete(id uint) error {
	res := s.db.Delete(&models.Herb{}, "herb_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
