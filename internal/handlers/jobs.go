package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"techrecruit-portal/internal/catalog"
	"techrecruit-portal/internal/filter"
	"techrecruit-portal/internal/models"
	"techrecruit-portal/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler serves the listing and detail views of the catalog.
type JobHandler struct {
	store     *catalog.Store
	projector *view.Projector
	logger    *zap.Logger
	baseURL   string
	now       func() time.Time
}

func NewJobHandler(store *catalog.Store, projector *view.Projector, logger *zap.Logger, baseURL string) *JobHandler {
	return &JobHandler{
		store:     store,
		projector: projector,
		logger:    logger,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

// language picks the display language for a request: an explicit lang query
// override, otherwise the store's active language.
func (h *JobHandler) language(c *gin.Context) models.Language {
	if code := c.Query("lang"); code != "" {
		return normalizeLang(code)
	}
	return h.store.Language()
}

// degraded writes the "unable to load" state when no catalog is available.
func (h *JobHandler) degraded(c *gin.Context, lang models.Language) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":   "catalog_unavailable",
		"message": h.projector.Bundle().Label(lang, "catalog_unavailable"),
	})
}

// ListJobs returns the filtered listing view models. Filter values must be
// taken from the filter-options endpoint in the same language; criteria
// default to the wildcard.
func (h *JobHandler) ListJobs(c *gin.Context) {
	lang := h.language(c)
	if !h.store.Loaded() {
		h.degraded(c, lang)
		return
	}

	criteria := filter.Criteria{
		ContractType: c.DefaultQuery("type", filter.Wildcard),
		Location:     c.DefaultQuery("location", filter.Wildcard),
		WorkMode:     c.DefaultQuery("mode", filter.Wildcard),
		Nationality:  c.DefaultQuery("nationality", filter.Wildcard),
		Status:       c.DefaultQuery("status", filter.Wildcard),
	}

	now := h.now()
	matched := filter.Apply(h.store.Snapshot(), criteria, lang, now)

	jobs := make([]models.ListingView, 0, len(matched))
	for i := range matched {
		jobs = append(jobs, h.projector.ForListing(&matched[i], lang, now))
	}

	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"count":    len(jobs),
		"jobs":     jobs,
	})
}

// GetFilterOptions returns the selectable vocabulary per filter dimension in
// the active language.
func (h *JobHandler) GetFilterOptions(c *gin.Context) {
	lang := h.language(c)
	if !h.store.Loaded() {
		h.degraded(c, lang)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"options":  filter.Options(h.store.Snapshot(), lang, h.now()),
	})
}

// GetJob returns the detail view model for one posting.
func (h *JobHandler) GetJob(c *gin.Context) {
	lang := h.language(c)
	if !h.store.Loaded() {
		h.degraded(c, lang)
		return
	}

	rec, err := catalog.FindByID(h.store.Snapshot(), c.Param("id"))
	if errors.Is(err, catalog.ErrJobNotFound) {
		h.jobNotFound(c, lang)
		return
	}

	detail := h.projector.ForDetail(rec, lang, h.now())
	resp := gin.H{
		"language": lang,
		"job":      detail,
	}
	if detail.DeadlineSoon {
		resp["warning"] = h.projector.Bundle().Labelf(lang, "deadline_warning", detail.DaysRemaining)
	}
	c.JSON(http.StatusOK, resp)
}

// ShareJob returns the pre-formatted share text block for one posting.
func (h *JobHandler) ShareJob(c *gin.Context) {
	lang := h.language(c)
	if !h.store.Loaded() {
		h.degraded(c, lang)
		return
	}

	rec, err := catalog.FindByID(h.store.Snapshot(), c.Param("id"))
	if errors.Is(err, catalog.ErrJobNotFound) {
		h.jobNotFound(c, lang)
		return
	}

	jobURL := fmt.Sprintf("%s/jobs/%s", h.baseURL, rec.ID)
	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"share":    h.projector.ShareContent(rec, lang, jobURL),
	})
}

func (h *JobHandler) jobNotFound(c *gin.Context, lang models.Language) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":   "job_not_found",
		"message": h.projector.Bundle().Label(lang, "job_not_found"),
		"detail":  h.projector.Bundle().Label(lang, "job_not_found_detail"),
	})
}
