package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
	"ayuvibe-server/internal/utils"
)

// FollowUpHandler handles follow-up related requests.
type FollowUpHandler struct {
	FollowUps    *store.FollowUpStore
	Appointments *store.AppointmentStore
}

// NewFollowUpHandler creates a new FollowUpHandler.
func NewFollowUpHandler(followUps *store.FollowUpStore, appointments *store.AppointmentStore) *FollowUpHandler {
	return &FollowUpHandler{FollowUps: followUps, Appointments: appointments}
}

// CreateFollowUpRequest represents the request body for scheduling a follow-up.
type CreateFollowUpRequest struct {
	AppointmentID uint      `json:"appointment_id" binding:"required"`
	FollowUpDate  time.Time `json:"follow_up_date" binding:"required"`
	FollowUpNotes string    `json:"follow_up_notes"`
}

// CreateFollowUp handles scheduling a follow-up for an existing appointment.
func (h *FollowUpHandler) CreateFollowUp(c *gin.Context) {
	var req CreateFollowUpRequest
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

	followUp := models.FollowUp{
		AppointmentID: req.AppointmentID,
		FollowUpDate:  req.FollowUpDate,
		FollowUpNotes: req.FollowUpNotes,
	}
	if err := h.FollowUps.Create(&followUp); err != nil {
		utils.InternalServerError(c, "Failed to create follow-up")
		return
	}
	utils.Created(c, "Follow-up created successfully", followUp)
}

// GetFollowUps handles fetching all follow-ups.
func (h *FollowUpHandler) GetFollowUps(c *gin.Context) {
	followUps, err := h.FollowUps.List()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch follow-ups")
		return
	}
	utils.Success(c, "Follow-ups fetched successfully", followUps)
}

// GetFollowUpByID handles fetching a single follow-up.
func (h *FollowUpHandler) GetFollowUpByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid follow-up id")
		return
	}

	followUp, err := h.FollowUps.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Follow-Up not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch follow-up")
		}
		return
	}
	utils.Success(c, "Follow-up fetched successfully", followUp)
}

// UpdateFollowUp handles partial updates.
func (h *FollowUpHandler) UpdateFollowUp(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid follow-up id")
		return
	}

	var patch store.FollowUpPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	followUp, err := h.FollowUps.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Follow-Up not found")
		} else {
			utils.InternalServerError(c, "Failed to update follow-up")
		}
		return
	}
	utils.Success(c, "Follow-up updated successfully", followUp)
}

// DeleteFollowUp handles deleting a follow-up.
func (h *FollowUpHandler) DeleteFollowUp(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid follow-up id")
		return
	}

	if err := h.FollowUps.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Follow-Up not found")
		} else {
			utils.InternalServerError(c, "Failed to delete follow-up")
		}
		return
	}
	utils.Success(c, "Follow-up deleted successfully", nil)
}
