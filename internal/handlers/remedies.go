package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
	"ayuvibe-server/internal/utils"
)

// RemedyHandler handles the remedy catalog.
type RemedyHandler struct {
	Remedies *store.RemedyStore
}

// NewRemedyHandler creates a new RemedyHandler.
func NewRemedyHandler(remedies *store.RemedyStore) *RemedyHandler {
	return &RemedyHandler{Remedies: remedies}
}

// RemedyRequest represents the request body for creating or replacing a remedy.
type RemedyRequest struct {
	RemedyName         string `json:"remedy_name" binding:"required"`
	Ingredients        string `json:"ingredients" binding:"required"`
	Benefits           string `json:"benefits"`
	PreparationMethod  string `json:"preparation_method"`
	DosageInstructions string `json:"dosage_instructions"`
	Precautions        string `json:"precautions"`
}

func (r RemedyRequest) model() models.Remedy {
	return models.Remedy{
		RemedyName:         r.RemedyName,
		Ingredients:        r.Ingredients,
		Benefits:           r.Benefits,
		PreparationMethod:  r.PreparationMethod,
		DosageInstructions: r.DosageInstructions,
		Precautions:        r.Precautions,
	}
}

// CreateRemedy handles adding a catalog entry.
func (h *RemedyHandler) CreateRemedy(c *gin.Context) {
	var req RemedyRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	remedy := req.model()
	if err := h.Remedies.Create(&remedy); err != nil {
		utils.InternalServerError(c, "Failed to create remedy")
		return
	}
	utils.Created(c, "Remedy created successfully", remedy)
}

// GetRemedies handles the paged catalog listing (skip/limit, defaults 0/10).
func (h *RemedyHandler) GetRemedies(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", strconv.Itoa(store.DefaultSkip)))
	if err != nil || skip < 0 {
		utils.BadRequest(c, "Invalid skip parameter")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultLimit)))
	if err != nil || limit < 0 {
		utils.BadRequest(c, "Invalid limit parameter")
		return
	}

	remedies, err := h.Remedies.List(skip, limit)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch remedies")
		return
	}
	utils.Success(c, "Remedies fetched successfully", remedies)
}

// GetRemedyByID handles fetching a single catalog entry.
func (h *RemedyHandler) GetRemedyByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid remedy id")
		return
	}

	remedy, err := h.Remedies.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Remedy not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch remedy")
		}
		return
	}
	utils.Success(c, "Remedy fetched successfully", remedy)
}

// UpdateRemedy handles a full replace of the catalog fields.
func (h *RemedyHandler) UpdateRemedy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid remedy id")
		return
	}

	var req RemedyRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	remedy, err := h.Remedies.Update(id, req.model())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Remedy not found")
		} else {
			utils.InternalServerError(c, "Failed to update remedy")
		}
		return
	}
	utils.Success(c, "Remedy updated successfully", remedy)
}

// DeleteRemedy handles removing a catalog entry.
func (h *RemedyHandler) DeleteRemedy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid remedy id")
		return
	}

	if err := h.Remedies.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Remedy not found")
		} else {
			utils.InternalServerError(c, "Failed to delete remedy")
		}
		return
	}
	utils.Success(c, "Remedy deleted", nil)
}
