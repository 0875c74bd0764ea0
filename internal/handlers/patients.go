package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/auth"
	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
	"ayuvibe-server/internal/utils"
)

// PatientHandler handles patient directory requests.
type PatientHandler struct {
	Patients *store.PatientStore
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients *store.PatientStore) *PatientHandler {
	return &PatientHandler{Patients: patients}
}

// GetPatients handles fetching all patients.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.Patients.List()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch patients")
		return
	}

	sanitized := make([]models.PatientSanitized, len(patients))
	for i, p := range patients {
		sanitized[i] = p.Sanitize()
	}
	utils.Success(c, "Patients fetched successfully", sanitized)
}

// GetPatientByID handles fetching a single patient.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid patient id")
		return
	}

	patient, err := h.Patients.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch patient")
		}
		return
	}
	utils.Success(c, "Patient fetched successfully", patient.Sanitize())
}

// UpdatePatient handles partial updates. Only supplied fields change; the
// identifier and registration date are not patchable.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid patient id")
		return
	}

	var patch store.PatientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	// A supplied password arrives in plaintext and is hashed before storage.
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			utils.InternalServerError(c, "Failed to hash password")
			return
		}
		patch.Password = &hash
	}

	patient, err := h.Patients.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Failed to update patient")
		}
		return
	}
	utils.Success(c, "Patient updated successfully", patient.Sanitize())
}

// DeletePatient handles deleting a patient. The delete is unconditional; any
// appointments referencing the patient are left in place.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid patient id")
		return
	}

	if err := h.Patients.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Failed to delete patient")
		}
		return
	}
	utils.Success(c, "Patient deleted successfully", nil)
}
