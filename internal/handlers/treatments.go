package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
	"ayuvibe-server/internal/utils"
)

// TreatmentHandler handles treatment related requests.
type TreatmentHandler struct {
	Treatments *store.TreatmentStore
	Diagnoses  *store.DiagnosisStore
}

// NewTreatmentHandler creates a new TreatmentHandler.
func NewTreatmentHandler(treatments *store.TreatmentStore, diagnoses *store.DiagnosisStore) *TreatmentHandler {
	return &TreatmentHandler{Treatments: treatments, Diagnoses: diagnoses}
}

// CreateTreatmentRequest represents the request body for prescribing a treatment.
type CreateTreatmentRequest struct {
	DiagnosisID          uint   `json:"diagnosis_id" binding:"required"`
	TreatmentDescription string `json:"treatment_description" binding:"required"`
	Dosage               string `json:"dosage"`
	Duration             string `json:"duration"`
}

// CreateTreatment handles prescribing a treatment for an existing diagnosis.
func (h *TreatmentHandler) CreateTreatment(c *gin.Context) {
	var req CreateTreatmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if _, err := h.Diagnoses.GetByID(req.DiagnosisID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Diagnosis not found")
		} else {
			utils.InternalServerError(c, "Failed to verify diagnosis")
		}
		return
	}

	treatment := models.Treatment{
		DiagnosisID:          req.DiagnosisID,
		TreatmentDescription: req.TreatmentDescription,
		Dosage:               req.Dosage,
		Duration:             req.Duration,
	}
	if err := h.Treatments.Create(&treatment); err != nil {
		utils.InternalServerError(c, "Failed to create treatment")
		return
	}
	utils.Created(c, "Treatment created successfully", treatment)
}

// GetTreatments handles fetching all treatments.
func (h *TreatmentHandler) GetTreatments(c *gin.Context) {
	treatments, err := h.Treatments.List()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch treatments")
		return
	}
	utils.Success(c, "Treatments fetched successfully", treatments)
}

// GetTreatmentByID handles fetching a single treatment.
func (h *TreatmentHandler) GetTreatmentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid treatment id")
		return
	}

	treatment, err := h.Treatments.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Treatment not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch treatment")
		}
		return
	}
	utils.Success(c, "Treatment fetched successfully", treatment)
}

// UpdateTreatment handles partial updates.
func (h *TreatmentHandler) UpdateTreatment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid treatment id")
		return
	}

	var patch store.TreatmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	treatment, err := h.Treatments.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Treatment not found")
		} else {
			utils.InternalServerError(c, "Failed to update treatment")
		}
		return
	}
	utils.Success(c, "Treatment updated successfully", treatment)
}

// DeleteTreatment handles deleting a treatment.
func (h *TreatmentHandler) DeleteTreatment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid treatment id")
		return
	}

	if err := h.Treatments.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Treatment not found")
		} else {
			utils.InternalServerError(c, "Failed to delete treatment")
		}
		return
	}
	utils.Success(c, "Treatment deleted successfully", nil)
}
