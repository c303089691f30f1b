package http

import (
	"net/http"

	"stylefeed/internal/usecase"
	"stylefeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	contentUseCase   usecase.ContentUseCase
	aclUseCase       usecase.ACLUseCase
	logger           *logger.Logger
}

func NewAnalyticsHandler(
	analyticsUseCase usecase.AnalyticsUseCase,
	contentUseCase usecase.ContentUseCase,
	aclUseCase usecase.ACLUseCase,
	logger *logger.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		contentUseCase:   contentUseCase,
		aclUseCase:       aclUseCase,
		logger:           logger,
	}
}

// Ingest godoc
// @Summary      Record an analytics event
// @Description  Accepts page_view and product_click events from anonymous or signed-in visitors. Missing creator attribution is backfilled from the post when possible.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        request body usecase.EventInput true "Event payload"
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /events [post]
func (h *AnalyticsHandler) Ingest(c *gin.Context) {
	var input usecase.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.UserAgent == "" {
		input.UserAgent = c.Request.UserAgent()
	}
	if input.Referrer == "" {
		input.Referrer = c.Request.Referer()
	}

	event, err := h.analyticsUseCase.Ingest(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": event.ID})
}

// requireManagedCreator resolves the slug and checks the caller can manage it.
// Reports are owner/editor only.
func (h *AnalyticsHandler) requireManagedCreator(c *gin.Context) (string, bool) {
	slug := c.Param("slug")
	creator, err := h.contentUseCase.GetCreator(slug)
	if err != nil {
		respondError(c, err)
		return "", false
	}
	if !h.aclUseCase.CanManage(c.GetString("user_id"), creator.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot view analytics for this creator"})
		return "", false
	}
	return slug, true
}

// Daily godoc
// @Summary      Per-day view/click rollup for a creator
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Creator slug"
// @Success      200  {object}  usecase.DailyReport
// @Failure      403  {object}  map[string]string
// @Router       /analytics/{slug}/daily [get]
func (h *AnalyticsHandler) Daily(c *gin.Context) {
	slug, ok := h.requireManagedCreator(c)
	if !ok {
		return
	}

	report, err := h.analyticsUseCase.DailyReport(slug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ProductClicks godoc
// @Summary      Per-product click breakdown for a creator
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Creator slug"
// @Param        order query string false "Sort order by clicks" Enums(asc, desc) default(desc)
// @Success      200  {array}   usecase.ProductClickRow
// @Failure      403  {object}  map[string]string
// @Router       /analytics/{slug}/products [get]
func (h *AnalyticsHandler) ProductClicks(c *gin.Context) {
	slug, ok := h.requireManagedCreator(c)
	if !ok {
		return
	}

	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be asc or desc"})
		return
	}

	rows, err := h.analyticsUseCase.ProductClickReport(slug, order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": rows})
}
