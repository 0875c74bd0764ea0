package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
	"ayuvibe-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Appointments *store.AppointmentStore
	Patients     *store.PatientStore
	Doctors      *store.DoctorStore
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *store.AppointmentStore, patients *store.PatientStore, doctors *store.DoctorStore) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments, Patients: patients, Doctors: doctors}
}

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	PatientID       uint      `json:"patient_id" binding:"required"`
	DoctorID        uint      `json:"doctor_id" binding:"required"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Reason          string    `json:"reason"`
}

// CreateAppointment handles booking a new appointment. Both referenced rows
// must exist.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if _, err := h.Patients.GetByID(req.PatientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Failed to verify patient")
		}
		return
	}
	if _, err := h.Doctors.GetByID(req.DoctorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to verify doctor")
		}
		return
	}

	appointment := models.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
	}

	if err := h.Appointments.Create(&appointment); err != nil {
		utils.InternalServerError(c, "Failed to create appointment")
		return
	}
	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments handles fetching all appointments.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments, err := h.Appointments.List()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID handles fetching a single appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	appointment, err := h.Appointments.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch appointment")
		}
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointment handles partial updates (date, reason, status).
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	var patch store.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	appointment, err := h.Appointments.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to update appointment")
		}
		return
	}
	utils.Success(c, "Appointment updated successfully", appointment)
}

// DeleteAppointment handles deleting an appointment. Diagnoses and follow-ups
// referencing it are left in place.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	if err := h.Appointments.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to delete appointment")
		}
		return
	}
	utils.Success(c, "Appointment deleted successfully", nil)
}

// GetDiagnosesAndTreatments handles the nested listing of diagnoses and their
// treatments for one appointment.
func (h *AppointmentHandler) GetDiagnosesAndTreatments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	result, err := h.Appointments.DiagnosesWithTreatments(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "No diagnoses found for this appointment")
		} else {
			utils.InternalServerError(c, "Failed to fetch diagnoses")
		}
		return
	}
	utils.Success(c, "Diagnoses fetched successfully", result)
}
