package store

import (
	"gorm.io/gorm"

	"ayuvibe-server/internal/models"
)

// DoctorStore persists Doctor rows.
type DoctorStore struct {
	db *gorm.DB
}

func NewDoctorStore(db *gorm.DB) *DoctorStore {
	return &DoctorStore{db: db}
}

// DoctorPatch lists the mutable doctor fields.
type DoctorPatch struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Specialization *string `json:"specialization"`
	PhoneNumber    *string `json:"phone_number"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	PostalCode     *string `json:"postal_code"`
}

func (p DoctorPatch) apply(m *models.Doctor) {
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.Specialization != nil {
		m.Specialization = *p.Specialization
	}
	if p.PhoneNumber != nil {
		m.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Password != nil {
		m.Password = *p.Password
	}
	if p.Address != nil {
		m.Address = *p.Address
	}
	if p.City != nil {
		m.City = *p.City
	}
	if p.State != nil {
		m.State = *p.State
	}
	if p.PostalCode != nil {
		m.PostalCode = *p.PostalCode
	}
}

func (s *DoctorStore) Create(d *models.Doctor) error {
	return s.db.Create(d).Error
}

func (s *DoctorStore) GetByID(id uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.db.First(&d, "doctor_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (s *DoctorStore) GetByEmail(email string) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.db.First(&d, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (s *DoctorStore) List() ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0)
	if err := s.db.Order("doctor_id asc").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorStore) Update(id uint, patch DoctorPatch) (*models.Doctor, error) {
	var d models.Doctor
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&d, "doctor_id = ?", id).Error; err != nil {
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

func (s *DoctorStore) Delete(id uint) error {
	res := s.db.Delete(&models.Doctor{}, "doctor_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
