package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stylefeed/internal/usecase"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsHandler(analyticsUC *MockAnalyticsUseCase, contentUC *MockContentUseCase, aclUC *MockACLUseCase) *AnalyticsHandler {
	return NewAnalyticsHandler(analyticsUC, contentUC, aclUC, logger.New())
}

func TestIngestHandler_AcceptsAnonymousEvent(t *testing.T) {
	analyticsUC := new(MockAnalyticsUseCase)
	analyticsUC.On("Ingest", usecase.EventInput{
		Type:        "page_view",
		CreatorSlug: "suzzy",
		Path:        "/suzzy",
		UserAgent:   "test-agent",
	}).Return(&models.Event{ID: "event-1"}, nil)

	handler := newAnalyticsHandler(analyticsUC, new(MockContentUseCase), new(MockACLUseCase))

	w := httptest.NewRecorder()
	_, r := authedContext(w, "")
	r.POST("/events", handler.Ingest)

	body, _ := json.Marshal(map[string]string{
		"type":         "page_view",
		"creator_slug": "suzzy",
		"path":         "/suzzy",
	})
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	analyticsUC.AssertExpectations(t)
}

func TestDailyHandler_RequiresManagement(t *testing.T) {
	analyticsUC := new(MockAnalyticsUseCase)
	contentUC := new(MockContentUseCase)
	aclUC := new(MockACLUseCase)
	contentUC.On("GetCreator", "suzzy").Return(&models.Creator{ID: "creator-1", Slug: "suzzy"}, nil)
	aclUC.On("CanManage", "user-2", "creator-1").Return(false)

	handler := newAnalyticsHandler(analyticsUC, contentUC, aclUC)

	w := httptest.NewRecorder()
	_, r := authedContext(w, "user-2")
	r.GET("/analytics/:slug/daily", handler.Daily)

	req := httptest.NewRequest(http.MethodGet, "/analytics/suzzy/daily", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	analyticsUC.AssertNotCalled(t, "DailyReport")
}

func TestDailyHandler(t *testing.T) {
	analyticsUC := new(MockAnalyticsUseCase)
	contentUC := new(MockContentUseCase)
	aclUC := new(MockACLUseCase)
	contentUC.On("GetCreator", "suzzy").Return(&models.Creator{ID: "creator-1", Slug: "suzzy"}, nil)
	aclUC.On("CanManage", "user-1", "creator-1").Return(true)
	analyticsUC.On("DailyReport", "suzzy").Return(&usecase.DailyReport{Views: 200, Clicks: 25, CTR: 12.5}, nil)

	handler := newAnalyticsHandler(analyticsUC, contentUC, aclUC)

	w := httptest.NewRecorder()
	_, r := authedContext(w, "user-1")
	r.GET("/analytics/:slug/daily", handler.Daily)

	req := httptest.NewRequest(http.MethodGet, "/analytics/suzzy/daily", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp usecase.DailyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12.5, resp.CTR)
}

func TestProductClicksHandler_RejectsBadOrder(t *testing.T) {
	analyticsUC := new(MockAnalyticsUseCase)
	contentUC := new(MockContentUseCase)
	aclUC := new(MockACLUseCase)
	contentUC.On("GetCreator", "suzzy").Return(&models.Creator{ID: "creator-1"}, nil)
	aclUC.On("CanManage", "user-1", "creator-1").Return(true)

	handler := newAnalyticsHandler(analyticsUC, contentUC, aclUC)

	w := httptest.NewRecorder()
	_, r := authedContext(w, "user-1")
	r.GET("/analytics/:slug/products", handler.ProductClicks)

	req := httptest.NewRequest(http.MethodGet, "/analytics/suzzy/products?order=sideways", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	analyticsUC.AssertNotCalled(t, "ProductClickReport")
}

func TestProductClicksHandler(t *testing.T) {
	analyticsUC := new(MockAnalyticsUseCase)
	contentUC := new(MockContentUseCase)
	aclUC := new(MockACLUseCase)
	contentUC.On("GetCreator", "suzzy").Return(&models.Creator{ID: "creator-1"}, nil)
	aclUC.On("CanManage", "user-1", "creator-1").Return(true)
	analyticsUC.On("ProductClickReport", "suzzy", "asc").Return([]usecase.ProductClickRow{
		{Brand: "Nike", Name: "Air Max", Clicks: 7},
	}, nil)

	handler := newAnalyticsHandler(analyticsUC, contentUC, aclUC)

	w := httptest.NewRecorder()
	_, r := authedContext(w, "user-1")
	r.GET("/analytics/:slug/products", handler.ProductClicks)

	req := httptest.NewRequest(http.MethodGet, "/analytics/suzzy/products?order=asc", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Air Max")
}
