package store

import (
	"time"

	"gorm.io/gorm"

	"ayuvibe-server/internal/models"
)

// FollowUpStore persists FollowUp rows.
type FollowUpStore struct {
	db *gorm.DB
}

func NewFollowUpStore(db *gorm.DB) *FollowUpStore {
	return &FollowUpStore{db: db}
}

// FollowUpPatch lists the mutable follow-up fields.
type FollowUpPatch struct {
	FollowUpDate  *time.Time `json:"follow_up_date"`
	FollowUpNotes *string    `json:"follow_up_notes"`
}

func (p FollowUpPatch) apply(m *models.FollowUp) {
	if p.FollowUpDate != nil {
		m.FollowUpDate = *p.FollowUpDate
	}
	if p.FollowUpNotes != nil {
		m.FollowUpNotes = *p.FollowUpNotes
	}
}

func (s *FollowUpStore) Create(f *models.FollowUp) error {
	return s.db.Create(f).Error
}

func (s *FollowUpStore) GetByID(id uint) (*models.FollowUp, error) {
	var f models.FollowUp
	if err := s.db.First(&f, "follow_up_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (s *FollowUpStore) List() ([]models.FollowUp, error) {
	followUps := make([]models.FollowUp, 0)
	if err := s.db.Order("follow_up_id asc").Find(&followUps).Error; err != nil {
		return nil, err
	}
	return followUps, nil
}

func (s *FollowUpStore) Update(id uint, patch FollowUpPatch) (*models.FollowUp, error) {
	var f models.FollowUp
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&f, "follow_up_id = ?", id).Error; err != nil {
			return err
		}
		patch.apply(&f)
		return tx.Save(&f).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (s *FollowUpStore) Delete(id uint) error {
	res := s.db.Delete(&models.FollowUp{}, "follow_up_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
