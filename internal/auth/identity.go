package auth

import (
	"time"

	"ayuvibe-server/internal/models"
)

// UserKind discriminates the two account types sharing the login flow.
type UserKind string

const (
	KindPatient UserKind = "patient"
	KindDoctor  UserKind = "doctor"
)

// Identity is the authenticated view of either account type. The Kind
// discriminant is decided once, at lookup time; nothing downstream inspects
// the underlying row type again.
type Identity struct {
	Kind             UserKind
	ID               uint
	FirstName        string
	LastName         string
	Email            string
	RegistrationDate time.Time

	passwordHash string
}

func identityFromPatient(p *models.Patient) *Identity {
	return &Identity{
		Kind:             KindPatient,
		ID:               p.PatientID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		RegistrationDate: p.RegistrationDate,
		passwordHash:     p.Password,
	}
}

func identityFromDoctor(d *models.Doctor) *Identity {
	return &Identity{
		Kind:             KindDoctor,
		ID:               d.DoctorID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		RegistrationDate: d.RegistrationDate,
		passwordHash:     d.Password,
	}
}

// Profile is the redacted login view. It has no password field at all, so
// redaction holds by construction rather than by filtering.
type Profile struct {
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	UserType         UserKind  `json:"user_type"`
	RegistrationDate time.Time `json:"registration_date"`
}

// Profile builds the redacted view of an identity.
func (id *Identity) Profile() *Profile {
	return &Profile{
		FirstName:        id.FirstName,
		LastName:         id.LastName,
		Email:            id.Email,
		UserType:         id.Kind,
		RegistrationDate: id.RegistrationDate,
	}
}
