package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/analytics"
)

func AdminDashboardStats(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Dashboard(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Dashboard stats could not be computed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": stats})
	}
}

func AdminSalesAnalytics(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Sales(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sales analytics could not be computed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": report})
	}
}

func AdminInventoryAnalytics(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Inventory(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Inventory analytics could not be computed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": report})
	}
}

func AdminCustomerAnalytics(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Customers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Customer analytics could not be computed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": report})
	}
}

// AdminClearAnalyticsCache forces the next report reads to recompute. Useful
// right after bulk catalog or order edits.
func AdminClearAnalyticsCache(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.ClearCache()
		c.JSON(http.StatusOK, gin.H{"message": "analytics cache cleared"})
	}
}
