package handlers

import (
	"net/http"
	"strconv"

	"dealer_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	trackingService services.TrackingService
}

func NewTrackingHandler(trackingService services.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

func (h *TrackingHandler) GetProductProgress(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	progress, err := h.trackingService.ProductProgress(uint(productID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *TrackingHandler) GetOrderProgress(c *gin.Context) {
	progress, err := h.trackingService.OrderProgress(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *TrackingHandler) GetQualityScore(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	score, err := h.trackingService.QualityScore(uint(productID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, score)
}

func (h *TrackingHandler) GetCapacityAnalysis(c *gin.Context) {
	analysis, err := h.trackingService.CapacityAnalysis()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze capacity"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *TrackingHandler) GetCustomerUpdate(c *gin.Context) {
	update, err := h.trackingService.CustomerUpdate(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, update)
}
