package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
	"ayuvibe-server/internal/utils"
)

// DiagnosisHandler handles diagnosis related requests.
type DiagnosisHandler struct {
	Diagnoses    *store.DiagnosisStore
	Appointments *store.AppointmentStore
}

// NewDiagnosisHandler creates a new DiagnosisHandler.
func NewDiagnosisHandler(diagnoses *store.DiagnosisStore, appointments *store.AppointmentStore) *DiagnosisHandler {
	return &DiagnosisHandler{Diagnoses: diagnoses, Appointments: appointments}
}

// CreateDiagnosisRequest represents the request body for recording a diagnosis.
type CreateDiagnosisRequest struct {
	AppointmentID        uint   `json:"appointment_id" binding:"required"`
	DiagnosisDescription string `json:"diagnosis_description" binding:"required"`
}

// CreateDiagnosis handles recording a diagnosis against an existing appointment.
func (h *DiagnosisHandler) CreateDiagnosis(c *gin.Context) {
	var req CreateDiagnosisRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if _, err := h.Appointments.GetByID(req.AppointmentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to verify appointment")
		}
		return
	}

	diagnosis := models.Diagnosis{
		AppointmentID:        req.AppointmentID,
		DiagnosisDescription: req.DiagnosisDescription,
	}
	if err := h.Diagnoses.Create(&diagnosis); err != nil {
		utils.InternalServerError(c, "Failed to create diagnosis")
		return
	}
	utils.Created(c, "Diagnosis created successfully", diagnosis)
}

// GetDiagnoses handles fetching all diagnoses.
func (h *DiagnosisHandler) GetDiagnoses(c *gin.Context) {
	diagnoses, err := h.Diagnoses.List()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch diagnoses")
		return
	}
	utils.Success(c, "Diagnoses fetched successfully", diagnoses)
}

// GetDiagnosisByID handles fetching a single diagnosis.
func (h *DiagnosisHandler) GetDiagnosisByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid diagnosis id")
		return
	}

	diagnosis, err := h.Diagnoses.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Diagnosis not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch diagnosis")
		}
		return
	}
	utils.Success(c, "Diagnosis fetched successfully", diagnosis)
}

// UpdateDiagnosis handles partial updates (description only).
func (h *DiagnosisHandler) UpdateDiagnosis(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid diagnosis id")
		return
	}

	var patch store.DiagnosisPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	diagnosis, err := h.Diagnoses.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Diagnosis not found")
		} else {
			utils.InternalServerError(c, "Failed to update diagnosis")
		}
		return
	}
	utils.Success(c, "Diagnosis updated successfully", diagnosis)
}

// DeleteDiagnosis handles deleting a diagnosis.
func (h *DiagnosisHandler) DeleteDiagnosis(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid diagnosis id")
		return
	}

	if err := h.Diagnoses.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Diagnosis not found")
		} else {
			utils.InternalServerError(c, "Failed to delete diagnosis")
		}
		return
	}
	utils.Success(c, "Diagnosis deleted successfully", nil)
}
