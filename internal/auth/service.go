package auth

import (
	"errors"
	"time"

	"ayuvibe-server/internal/config"
	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
)

var (
	// ErrDuplicateEmail is returned when a signup reuses an email already
	// registered for the same account type.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// Callers must not be able to tell which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service orchestrates credential lookup, password verification and token
// issuance for patients and doctors.
type Service struct {
	patients   *store.PatientStore
	doctors    *store.DoctorStore
	issuer     *TokenIssuer
	sessionTTL time.Duration
}

// NewService wires the auth service from its stores, the token issuer and the
// loaded configuration.
func NewService(patients *store.PatientStore, doctors *store.DoctorStore, issuer *TokenIssuer, cfg *config.Config) *Service {
	return &Service{
		patients:   patients,
		doctors:    doctors,
		issuer:     issuer,
		sessionTTL: time.Duration(cfg.SessionTokenMinutes) * time.Minute,
	}
}

// RegisterPatient hashes the password and persists the patient. The duplicate
// check is per account type: a doctor may already hold the same email.
func (s *Service) RegisterPatient(p *models.Patient, password string) error {
	if _, err := s.patients.GetByEmail(p.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	p.Password = hash
	return s.patients.Create(p)
}

// RegisterDoctor hashes the password and persists the doctor.
func (s *Service) RegisterDoctor(d *models.Doctor, password string) error {
	if _, err := s.doctors.GetByEmail(d.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	d.Password = hash
	return s.doctors.Create(d)
}

// Authenticate verifies credentials against both account types. The patient
// table is consulted first; on an email shared across types the patient wins.
func (s *Service) Authenticate(email, password string) (*Identity, error) {
	identity, err := s.lookup(email)
	if err != nil {
		return nil, err
	}
	if identity == nil || !CheckPassword(identity.passwordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return identity, nil
}

func (s *Service) lookup(email string) (*Identity, error) {
	p, err := s.patients.GetByEmail(email)
	if err == nil {
		return identityFromPatient(p), nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	d, err := s.doctors.GetByEmail(email)
	if err == nil {
		return identityFromDoctor(d), nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return nil, nil
}

// LoginToken authenticates and issues a session-length bearer token with the
// email as subject and the per-type identifier as user_id.
func (s *Service) LoginToken(email, password string) (string, error) {
	identity, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}
	return s.issuer.Issue(identity.Email, identity.ID, s.sessionTTL)
}

// LoginProfile authenticates and returns the redacted profile view.
func (s *Service) LoginProfile(email, password string) (*Profile, error) {
	identity, err := s.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	return identity.Profile(), nil
}
