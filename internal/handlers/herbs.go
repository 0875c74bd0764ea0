package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"ayuvibe-server/internal/models"
	"ayuvibe-server/internal/store"
	"ayuvibe-server/internal/utils"
)

// HerbHandler handles the herb catalog.
type HerbHandler struct {
	Herbs *store.HerbStore
}

// NewHerbHandler creates a new HerbHandler.
func NewHerbHandler(herbs *store.HerbStore) *HerbHandler {
	return &HerbHandler{Herbs: herbs}
}

// HerbRequest represents the request body for creating or replacing a herb.
type HerbRequest struct {
	HerbName      string `json:"herb_name" binding:"required"`
	BotanicalName string `json:"botanical_name"`
	CommonNames   string `json:"common_names"`
	Benefits      string `json:"benefits"`
	PrimaryUses   string `json:"primary_uses"`
	Dosage        string `json:"dosage"`
	Form          string `json:"form"`
}

func (r HerbRequest) model() models.Herb {
	return models.Herb{
		HerbName:      r.HerbName,
		BotanicalName: r.BotanicalName,
		CommonNames:   r.CommonNames,
		Benefits:      r.Benefits,
		PrimaryUses:   r.PrimaryUses,
		Dosage:        r.Dosage,
		Form:          r.Form,
	}
}

// CreateHerb handles adding a catalog entry.
func (h *HerbHandler) CreateHerb(c *gin.Context) {
	var req HerbRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	herb := req.model()
	if err := h.Herbs.Create(&herb); err != nil {
		utils.InternalServerError(c, "Failed to create herb")
		return
	}
	utils.Created(c, "Herb created successfully", herb)
}

// GetHerbs handles the paged catalog listing (skip/limit, defaults 0/10).
func (h *HerbHandler) GetHerbs(c *gin.Context) {
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

	herbs, err := h.Herbs.List(skip, limit)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch herbs")
		return
	}
	utils.Success(c, "Herbs fetched successfully", herbs)
}

// GetHerbByID handles fetching a single catalog entry.
func (h *HerbHandler) GetHerbByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid herb id")
		return
	}

	herb, err := h.Herbs.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Herb not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch herb")
		}
		return
	}
	utils.Success(c, "Herb fetched successfully", herb)
}

// UpdateHerb handles a full replace of the catalog fields.
func (h *HerbHandler) UpdateHerb(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid herb id")
		return
	}

	var req HerbRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	herb, err := h.Herbs.Update(id, req.model())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Herb not found")
		} else {
			utils.InternalServerError(c, "Failed to update herb")
		}
		return
	}
	utils.Success(c, "Herb updated successfully", herb)
}

// DeleteHerb handles removing a catalog entry.
func (h *HerbHandler) DeleteHerb(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid herb id")
		return
	}

	if err := h.Herbs.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Herb not found")
		} else {
			utils.InternalServerError(c, "Failed to delete herb")
		}
		return
	}
	utils.Success(c, "Herb deleted", nil)
}
