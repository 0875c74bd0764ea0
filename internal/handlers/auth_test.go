package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ayuvibe-server/internal/config"
	"ayuvibe-server/internal/logger"
	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/routes"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("info")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.Migrate(db))

	cfg := &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 15,
		SessionTokenMinutes:  30,
		RateLimitRPS:         1000,
		RateLimitBurst:       1000,
	}

	router := gin.New()
	routes.SetupRoutes(router, db, cfg)
	return router
}

func doJSON(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func patientSignupBody(email string) string {
	return fmt.Sprintf(`{
		"first_name": "Asha", "last_name": "Iyer", "date_of_birth": "1990-04-12",
		"gender": "female", "phone_number": "5550100", "email": %q,
		"password": "pw1pw1pw1", "address": "12 Lotus Lane", "city": "Pune",
		"state": "MH", "postal_code": "411001"
	}`, email)
}

func doctorSignupBody(email string) string {
	return fmt.Sprintf(`{
		"first_name": "Ravi", "last_name": "Menon", "specialization": "Panchakarma",
		"phone_number": "5550200", "email": %q, "password": "docpass123",
		"address": "3 Neem Road", "city": "Kochi", "state": "KL", "postal_code": "682001"
	}`, email)
}

func TestSignupPatient(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/signup/patient", patientSignupBody("a@x.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Patient registered successfully", envelope(t, w)["message"])
}

func TestSignupPatientDuplicate(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/signup/patient", patientSignupBody("a@x.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/signup/patient", patientSignupBody("a@x.com"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", envelope(t, w)["error"])
}

func TestSignupValidation(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/signup/patient", `{"email": "a@x.com"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// A doctor may sign up with an email a patient already uses; the duplicate
// check is per account type.
func TestSignupSameEmailAcrossTypes(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/signup/patient", patientSignupBody("a@x.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/signup/doctor", doctorSignupBody("a@x.com"), nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthIssuesToken(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, http.MethodPost, "/signup/patient", patientSignupBody("a@x.com"), nil)

	w := doJSON(router, http.MethodPost, "/auth", `{"email": "a@x.com", "password": "pw1pw1pw1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "bearer", data["token_type"])
}

// Unknown email and wrong password produce byte-identical responses.
func TestAuthUnifiedErrorBody(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, http.MethodPost, "/signup/patient", patientSignupBody("a@x.com"), nil)

	unknown := doJSON(router, http.MethodPost, "/auth", `{"email": "nobody@x.com", "password": "pw1pw1pw1"}`, nil)
	wrong := doJSON(router, http.MethodPost, "/auth", `{"email": "a@x.com", "password": "wrongwrong"}`, nil)

	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, http.StatusBadRequest, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}

func TestLoginReturnsRedactedProfile(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, http.MethodPost, "/signup/doctor", doctorSignupBody("d@x.com"), nil)

	w := doJSON(router, http.MethodPost, "/login", `{"email": "d@x.com", "password": "docpass123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Ravi", data["first_name"])
	assert.Equal(t, "doctor", data["user_type"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthMe(t *testing.T) {
	router := setupRouter(t)
	doJSON(router, http.MethodPost, "/signup/patient", patientSignupBody("a@x.com"), nil)

	w := doJSON(router, http.MethodPost, "/auth", `{"email": "a@x.com", "password": "pw1pw1pw1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := envelope(t, w)["data"].(map[string]interface{})["access_token"].(string)

	w = doJSON(router, http.MethodGet, "/auth/me", "", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "a@x.com", data["email"])

	w = doJSON(router, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/auth/me", "", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
