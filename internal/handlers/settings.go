package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/config"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

type SettingsHandler struct {
	Store *store.Store
	Cfg   config.Config
}

type updateSettingsRequest struct {
	SystemName              string `json:"systemName" binding:"required"`
	PrimaryColor            string `json:"primaryColor"`
	SecondaryColor          string `json:"secondaryColor"`
	AccentColor             string `json:"accentColor"`
	AttachmentRetentionDays int    `json:"attachmentRetentionDays"`
}

func NewSettingsHandler(s *store.Store, cfg config.Config) *SettingsHandler {
	return &SettingsHandler{Store: s, Cfg: cfg}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.Store.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	setting, err := h.Store.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}

	setting.SystemName = req.SystemName
	if req.PrimaryColor != "" {
		setting.PrimaryColor = req.PrimaryColor
	}
	if req.SecondaryColor != "" {
		setting.SecondaryColor = req.SecondaryColor
	}
	if req.AccentColor != "" {
		setting.AccentColor = req.AccentColor
	}
	if req.AttachmentRetentionDays > 0 {
		setting.AttachmentRetentionDays = req.AttachmentRetentionDays
	}

	if err := h.Store.UpdateSettings(setting); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, setting)
}

// UploadLogo stores a branding image and records only its filename in
// the settings row.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file required"})
		return
	}

	setting, err := h.Store.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}

	filename := "logo_" + uuid.NewString() + filepath.Ext(file.Filename)
	dir := filepath.Join(h.Cfg.UploadDir, "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logo storage failed"})
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logo storage failed"})
		return
	}

	setting.LogoPath = filename
	if err := h.Store.UpdateSettings(setting); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, setting)
}
