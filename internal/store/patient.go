package store

import (
	"gorm.io/gorm"

	"ayuvibe-server/internal/models"
)

// PatientStore persists Patient rows.
type PatientStore struct {
	db *gorm.DB
}

func NewPatientStore(db *gorm.DB) *PatientStore {
	return &PatientStore{db: db}
}

// PatientPatch lists the mutable patient fields. Identifier and registration
// date are absent on purpose; a partial update cannot touch them.
type PatientPatch struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	PostalCode  *string `json:"postal_code"`
}

func (p PatientPatch) apply(m *models.Patient) {
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.DateOfBirth != nil {
		m.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		m.Gender = *p.Gender
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

func (s *PatientStore) Create(p *models.Patient) error {
	return s.db.Create(p).Error
}

func (s *PatientStore) GetByID(id uint) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.First(&p, "patient_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *PatientStore) GetByEmail(email string) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.First(&p, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *PatientStore) List() ([]models.Patient, error) {
	patients := make([]models.Patient, 0)
	if err := s.db.Order("patient_id asc").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// Update applies the patch inside one transaction so the fetch-merge-save is
// all or nothing.
func (s *PatientStore) Update(id uint, patch PatientPatch) (*models.Patient, error) {
	var p models.Patient
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "patient_id = ?", id).Error; err != nil {
			return err
		}
		patch.apply(&p)
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Delete hard-deletes the row. Dependent appointments are not checked; see the
// relationship notes in DESIGN.md.
func (s *PatientStore) Delete(id uint) error {
	res := s.db.Delete(&models.Patient{}, "patient_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
