package handlers

import (
	"errors"
	"net/http"
	"time"

	"techrecruit-portal/internal/apply"
	"techrecruit-portal/internal/catalog"
	"techrecruit-portal/internal/i18n"
	"techrecruit-portal/internal/models"
	"techrecruit-portal/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationHandler validates and acknowledges application submissions.
// Nothing is stored or transmitted; a valid draft gets a receipt, an invalid
// one gets the full error batch back.
type ApplicationHandler struct {
	store     *catalog.Store
	projector *view.Projector
	logger    *zap.Logger
	now       func() time.Time
}

func NewApplicationHandler(store *catalog.Store, projector *view.Projector, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		store:     store,
		projector: projector,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitApplication validates a draft against the posting.
//
// Outcomes: 201 with a receipt; 409 when the application window is closed;
// 403 when the nationality gate rejects the candidate; 422 with the ordered
// error batch on fixable failures.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	lang := h.store.Language()
	if !h.store.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "catalog_unavailable",
			"message": h.projector.Bundle().Label(lang, "catalog_unavailable"),
		})
		return
	}

	rec, err := catalog.FindByID(h.store.Snapshot(), c.Param("id"))
	if errors.Is(err, catalog.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "job_not_found",
			"message": h.projector.Bundle().Label(lang, "job_not_found"),
		})
		return
	}

	now := h.now()
	if catalog.DeriveStatus(rec, now) == models.JobStatusClosed {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "applications_closed",
			"message": h.projector.Bundle().Label(lang, "applications_closed"),
		})
		return
	}

	var draft models.ApplicationDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application payload"})
		return
	}

	result := apply.Validate(draft, rec)
	if result.Ineligible() {
		h.logger.Info("Application rejected on eligibility",
			zap.String("job_id", rec.ID),
		)
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "ineligible",
			"message": "We cannot proceed with your application for this position.",
			"errors":  result.Errors,
		})
		return
	}
	if !result.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation_failed",
			"errors": result.Errors,
		})
		return
	}

	receipt := models.NewApplicationReceipt(rec.ID, i18n.Resolve(rec, i18n.FieldTitle, lang), now)
	h.logger.Info("Application validated",
		zap.String("job_id", rec.ID),
		zap.String("reference", receipt.Reference.String()),
	)
	c.JSON(http.StatusCreated, gin.H{"receipt": receipt})
}
