package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealer_dashboard/internal/models"
	"dealer_dashboard/internal/search"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchService struct {
	orders      []search.OrderMatch
	dealers     []search.DealerMatch
	suggestions []string
	filtered    []models.Order
	filterErr   error
	history     []string
	lastSession string
	clearedKey  string
}

func (f *fakeSearchService) SearchOrders(sessionKey, query string, opts search.OrderSearchOptions) ([]search.OrderMatch, error) {
	f.lastSession = sessionKey
	return f.orders, nil
}

func (f *fakeSearchService) AutoCompleteSuggestions(query string, maxSuggestions int) ([]string, error) {
	return f.suggestions, nil
}

func (f *fakeSearchService) SearchDealers(sessionKey, query string, opts search.DealerSearchOptions) ([]search.DealerMatch, error) {
	f.lastSession = sessionKey
	return f.dealers, nil
}

func (f *fakeSearchService) FilterOrders(filters search.OrderFilters) ([]models.Order, error) {
	return f.filtered, f.filterErr
}

func (f *fakeSearchService) GetHistory(sessionKey string) ([]string, error) {
	return f.history, nil
}

func (f *fakeSearchService) ClearHistory(sessionKey string) error {
	f.clearedKey = sessionKey
	return nil
}

func newSearchRouter(service *fakeSearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewSearchHandler(service)

	router := gin.New()
	router.GET("/api/search/orders", handler.SearchOrders)
	router.GET("/api/search/suggestions", handler.AutoCompleteSuggestions)
	router.GET("/api/search/dealers", handler.SearchDealers)
	router.POST("/api/search/filters", handler.FilterOrders)
	router.GET("/api/search/history", handler.GetHistory)
	router.DELETE("/api/search/history", handler.ClearHistory)
	return router
}

func TestSearchOrdersEndpoint(t *testing.T) {
	service := &fakeSearchService{
		orders: []search.OrderMatch{
			{Order: models.Order{ID: "ORD-1001"}, Score: 15, Matches: []string{"Tam eşleşme"}},
		},
	}
	router := newSearchRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/search/orders?q=ORD-1001", nil)
	req.Header.Set("X-Session-Key", "session-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-1", service.lastSession)

	var body struct {
		Query   string              `json:"query"`
		Count   int                 `json:"count"`
		Results []search.OrderMatch `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ORD-1001", body.Query)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "ORD-1001", body.Results[0].Order.ID)
}

func TestAutoCompleteSuggestionsEndpoint(t *testing.T) {
	service := &fakeSearchService{suggestions: []string{"İstanbul Ana Bayi"}}
	router := newSearchRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/search/suggestions?q=ist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"İstanbul Ana Bayi"}, body.Suggestions)
}

func TestFilterOrdersEndpoint(t *testing.T) {
	service := &fakeSearchService{filtered: []models.Order{{ID: "ORD-1001"}}}
	router := newSearchRouter(service)

	payload := `{"status":"in-progress","dealer":"istanbul"}`
	req := httptest.NewRequest(http.MethodPost, "/api/search/filters", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}

func TestFilterOrdersEndpointBadDate(t *testing.T) {
	service := &fakeSearchService{
		filterErr: &models.DateParseError{Value: "gecersiz"},
	}
	router := newSearchRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/search/filters", strings.NewReader(`{"date_from":"gecersiz"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFilterOrdersEndpointBadJSON(t *testing.T) {
	router := newSearchRouter(&fakeSearchService{})

	req := httptest.NewRequest(http.MethodPost, "/api/search/filters", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHistoryRequiresSessionKey(t *testing.T) {
	router := newSearchRouter(&fakeSearchService{history: []string{"koltuk"}})

	req := httptest.NewRequest(http.MethodGet, "/api/search/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/search/history", nil)
	req.Header.Set("X-Session-Key", "session-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		History []string `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"koltuk"}, body.History)
}

func TestClearHistoryEndpoint(t *testing.T) {
	service := &fakeSearchService{}
	router := newSearchRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/search/history", nil)
	req.Header.Set("X-Session-Key", "session-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-1", service.clearedKey)
}
