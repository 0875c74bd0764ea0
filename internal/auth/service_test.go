package auth_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ayuvibe-server/internal/auth"
	"ayuvibe-server/internal/config"
	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
)

func newTestService(t *testing.T) (*auth.Service, *store.PatientStore, *store.DoctorStore, *auth.TokenIssuer) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", SessionTokenMinutes: 30}
	patients := store.NewPatientStore(db)
	doctors := store.NewDoctorStore(db)
	issuer := auth.NewTokenIssuer(cfg)
	return auth.NewService(patients, doctors, issuer, cfg), patients, doctors, issuer
}

func testPatient(email string) *models.Patient {
	return &models.Patient{
		FirstName:   "Asha",
		LastName:    "Iyer",
		DateOfBirth: "1990-04-12",
		Gender:      "female",
		PhoneNumber: "5550100",
		Email:       email,
		Address:     "12 Lotus Lane",
		City:        "Pune",
		State:       "MH",
		PostalCode:  "411001",
	}
}

func testDoctor(email string) *models.Doctor {
	return &models.Doctor{
		FirstName:      "Ravi",
		LastName:       "Menon",
		Specialization: "Panchakarma",
		PhoneNumber:    "5550200",
		Email:          email,
		Address:        "3 Neem Road",
		City:           "Kochi",
		State:          "KL",
		PostalCode:     "682001",
	}
}

func TestRegisterAndAuthenticatePatient(t *testing.T) {
	svc, patients, _, _ := newTestService(t)

	require.NoError(t, svc.RegisterPatient(testPatient("a@x.com"), "pw1pw1pw1"))

	identity, err := svc.Authenticate("a@x.com", "pw1pw1pw1")
	require.NoError(t, err)
	assert.Equal(t, auth.KindPatient, identity.Kind)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.NotZero(t, identity.ID)

	// The stored row holds a hash, never the plaintext.
	stored, err := patients.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1pw1pw1", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "pw1pw1pw1"))
}

func TestRegisterAndAuthenticateDoctor(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	require.NoError(t, svc.RegisterDoctor(testDoctor("d@x.com"), "docpass123"))

	identity, err := svc.Authenticate("d@x.com", "docpass123")
	require.NoError(t, err)
	assert.Equal(t, auth.KindDoctor, identity.Kind)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	require.NoError(t, svc.RegisterPatient(testPatient("a@x.com"), "pw1pw1pw1"))
	err := svc.RegisterPatient(testPatient("a@x.com"), "otherpass1")
	assert.ErrorIs(t, err, auth.ErrDuplicateEmail)
}

// The duplicate check is per account type: a doctor may register with an email
// already held by a patient. This documents current behavior, not a product
// endorsement of it.
func TestRegisterSameEmailAcrossTypes(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	require.NoError(t, svc.RegisterPatient(testPatient("a@x.com"), "pw1pw1pw1"))
	require.NoError(t, svc.RegisterDoctor(testDoctor("a@x.com"), "docpass123"))

	// On the shared email the patient lookup wins.
	identity, err := svc.Authenticate("a@x.com", "pw1pw1pw1")
	require.NoError(t, err)
	assert.Equal(t, auth.KindPatient, identity.Kind)
}

func TestAuthenticateUnifiedError(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	require.NoError(t, svc.RegisterPatient(testPatient("a@x.com"), "pw1pw1pw1"))

	_, unknownErr := svc.Authenticate("nobody@x.com", "pw1pw1pw1")
	_, wrongErr := svc.Authenticate("a@x.com", "wrongwrong")

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, auth.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestLoginToken(t *testing.T) {
	svc, _, _, issuer := newTestService(t)
	require.NoError(t, svc.RegisterPatient(testPatient("a@x.com"), "pw1pw1pw1"))

	token, err := svc.LoginToken("a@x.com", "pw1pw1pw1")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.NotZero(t, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestLoginTokenBadCredentials(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.LoginToken("nobody@x.com", "whatever123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginProfileRedacted(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	require.NoError(t, svc.RegisterDoctor(testDoctor("d@x.com"), "docpass123"))

	profile, err := svc.LoginProfile("d@x.com", "docpass123")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", profile.FirstName)
	assert.Equal(t, "Menon", profile.LastName)
	assert.Equal(t, auth.KindDoctor, profile.UserType)
	assert.False(t, profile.RegistrationDate.IsZero())

	// The serialized view has no password field of any kind.
	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}
