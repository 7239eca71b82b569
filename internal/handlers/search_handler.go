package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dealer_dashboard/internal/middleware"
	"dealer_dashboard/internal/models"
	"dealer_dashboard/internal/search"
	"dealer_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

// sessionKeyHeader carries the opaque per-session key used to scope search
// history. The handler does not interpret it.
const sessionKeyHeader = "X-Session-Key"

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (h *SearchHandler) SearchOrders(c *gin.Context) {
	query := c.Query("q")

	opts := search.DefaultOrderSearchOptions()
	if threshold, err := strconv.ParseFloat(c.Query("threshold"), 64); err == nil {
		opts.FuzzyThreshold = threshold
	}
	if maxResults, err := strconv.Atoi(c.Query("max")); err == nil {
		opts.MaxResults = maxResults
	}
	if c.Query("sort") == "false" {
		opts.SortByRelevance = false
	}

	results, err := h.searchService.SearchOrders(c.GetHeader(sessionKeyHeader), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
	middleware.SearchQueries.WithLabelValues("orders").Inc()
}

func (h *SearchHandler) AutoCompleteSuggestions(c *gin.Context) {
	query := c.Query("q")
	maxSuggestions, _ := strconv.Atoi(c.Query("max"))

	suggestions, err := h.searchService.AutoCompleteSuggestions(query, maxSuggestions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
	middleware.SearchQueries.WithLabelValues("suggestions").Inc()
}

func (h *SearchHandler) SearchDealers(c *gin.Context) {
	query := c.Query("q")

	opts := search.DefaultDealerSearchOptions()
	if threshold, err := strconv.ParseFloat(c.Query("threshold"), 64); err == nil {
		opts.FuzzyThreshold = threshold
	}
	if maxResults, err := strconv.Atoi(c.Query("max")); err == nil {
		opts.MaxResults = maxResults
	}

	results, err := h.searchService.SearchDealers(c.GetHeader(sessionKeyHeader), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search dealers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
	middleware.SearchQueries.WithLabelValues("dealers").Inc()
}

func (h *SearchHandler) FilterOrders(c *gin.Context) {
	var filters search.OrderFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	results, err := h.searchService.FilterOrders(filters)
	if err != nil {
		var dateErr *models.DateParseError
		if errors.As(err, &dateErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": dateErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
	middleware.SearchQueries.WithLabelValues("filters").Inc()
}

func (h *SearchHandler) GetHistory(c *gin.Context) {
	sessionKey := c.GetHeader(sessionKeyHeader)
	if sessionKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session key"})
		return
	}

	history, err := h.searchService.GetHistory(sessionKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load search history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *SearchHandler) ClearHistory(c *gin.Context) {
	sessionKey := c.GetHeader(sessionKeyHeader)
	if sessionKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session key"})
		return
	}

	if err := h.searchService.ClearHistory(sessionKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear search history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
