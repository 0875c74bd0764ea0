package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/auth"
	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
	"ayuvibe-server/internal/utils"
)

// DoctorHandler handles doctor directory requests.
type DoctorHandler struct {
	Doctors *store.DoctorStore
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(doctors *store.DoctorStore) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors}
}

// GetDoctors handles fetching all doctors.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors")
		return
	}

	sanitized := make([]models.DoctorSanitized, len(doctors))
	for i, d := range doctors {
		sanitized[i] = d.Sanitize()
	}
	utils.Success(c, "Doctors fetched successfully", sanitized)
}

// GetDoctorByID handles fetching a single doctor.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid doctor id")
		return
	}

	doctor, err := h.Doctors.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch doctor")
		}
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor.Sanitize())
}

// UpdateDoctor handles partial updates.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid doctor id")
		return
	}

	var patch store.DoctorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			utils.InternalServerError(c, "Failed to hash password")
			return
		}
		patch.Password = &hash
	}

	doctor, err := h.Doctors.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to update doctor")
		}
		return
	}
	utils.Success(c, "Doctor updated successfully", doctor.Sanitize())
}

// DeleteDoctor handles deleting a doctor.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid doctor id")
		return
	}

	if err := h.Doctors.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to delete doctor")
		}
		return
	}
	utils.Success(c, "Doctor deleted successfully", nil)
}
