package handlers

import (
	"net/http"

	"techrecruit-portal/internal/catalog"
	"techrecruit-portal/internal/i18n"
	"techrecruit-portal/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LanguageHandler reads and switches the active display language.
type LanguageHandler struct {
	store  *catalog.Store
	logger *zap.Logger
}

func NewLanguageHandler(store *catalog.Store, logger *zap.Logger) *LanguageHandler {
	return &LanguageHandler{store: store, logger: logger}
}

// SetLanguageRequest is the language switch payload.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// GetLanguage returns the active display language.
func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": h.store.Language()})
}

// SetLanguage switches the active display language. The switch is
// idempotent, persisted, and broadcast; it triggers no catalog reload.
func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language is required"})
		return
	}

	lang := normalizeLang(req.Language)
	h.store.SetLanguage(lang)

	h.logger.Info("Display language set", zap.String("language", string(lang)))
	c.JSON(http.StatusOK, gin.H{"language": lang})
}

// normalizeLang collapses any incoming code onto a supported language.
func normalizeLang(code string) models.Language {
	return i18n.Normalize(code)
}
