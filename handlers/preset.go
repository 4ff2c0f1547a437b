package handlers

import (
	"net/http"

	presetRepo "deskly/database/repository/preset"
	"deskly/models"
	"deskly/services/editor"
	"deskly/utils"

	"github.com/gin-gonic/gin"
)

// PresetHandler exposes the preset catalog: built-in templates plus
// user-created ones appended from the repository.
type PresetHandler struct {
	Repo presetRepo.PresetRepository
}

// NewPresetHandler constructs the handler.
func NewPresetHandler(repo presetRepo.PresetRepository) *PresetHandler {
	return &PresetHandler{Repo: repo}
}

// ListPresetsHandler returns the full preset catalog.
func (h *PresetHandler) ListPresetsHandler(c *gin.Context) {
	catalog := editor.BuiltinPresets()
	custom, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load presets", err.Error())
		return
	}
	catalog = append(catalog, custom...)
	c.JSON(http.StatusOK, gin.H{"presets": catalog})
}

// CreatePresetHandler appends a user-created preset to the catalog.
func (h *PresetHandler) CreatePresetHandler(c *gin.Context) {
	var preset models.Preset
	if err := c.ShouldBindJSON(&preset); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), preset)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create preset", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeletePresetHandler removes a user-created preset.
func (h *PresetHandler) DeletePresetHandler(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete preset", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
