package handlers

import (
	"net/http"
	"strconv"

	"dealer_dashboard/internal/scoring"
	"dealer_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type DealerHandler struct {
	scoringService services.ScoringService
}

func NewDealerHandler(scoringService services.ScoringService) *DealerHandler {
	return &DealerHandler{scoringService: scoringService}
}

// GetDealers lists dealers, optionally sorted (?sort=score|revenue|orders|
// satisfaction) or filtered by star tier (?stars=N).
func (h *DealerHandler) GetDealers(c *gin.Context) {
	if starsParam := c.Query("stars"); starsParam != "" {
		stars, err := strconv.Atoi(starsParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stars parameter"})
			return
		}
		dealers, err := h.scoringService.GetDealersByStars(stars)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dealers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(dealers), "dealers": dealers})
		return
	}

	dealers, err := h.scoringService.GetDealers(scoring.SortKey(c.Query("sort")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dealers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(dealers), "dealers": dealers})
}

func (h *DealerHandler) GetDealer(c *gin.Context) {
	dealer, err := h.scoringService.GetDealerByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dealer not found"})
		return
	}
	c.JSON(http.StatusOK, dealer)
}

func (h *DealerHandler) GetHierarchy(c *gin.Context) {
	hierarchy, err := h.scoringService.GetHierarchy()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dealer hierarchy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"main_dealers": hierarchy})
}

func (h *DealerHandler) RecalculateScores(c *gin.Context) {
	dealers, err := h.scoringService.RecalculateScores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate scores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(dealers), "dealers": dealers})
}

func (h *DealerHandler) GetScoringConfig(c *gin.Context) {
	config, err := h.scoringService.GetConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scoring configuration"})
		return
	}
	c.JSON(http.StatusOK, config)
}

func (h *DealerHandler) UpdateScoringConfig(c *gin.Context) {
	var config services.ScoringConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.scoringService.UpdateConfig(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
