package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/models"
	"omufusion/internal/services"
)

// GetSiteConfig serves the public site configuration. Reads come through the
// service cache so the storefront can poll this freely.
func GetSiteConfig(site *services.SiteConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := site.Get(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Site configuration could not be loaded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cfg})
	}
}

type siteConfigRequest struct {
	SiteName       string             `json:"siteName" binding:"required,min=1,max=120"`
	LogoURL        string             `json:"logoUrl" binding:"omitempty,url"`
	ContactEmail   string             `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone   string             `json:"contactPhone" binding:"omitempty,max=32"`
	Social         models.SocialLinks `json:"social"`
	SEO            models.SEOFields   `json:"seo"`
	FeatureToggles map[string]bool    `json:"featureToggles"`
	Theme          models.ThemeColors `json:"theme"`
}

// AdminUpdateSiteConfig replaces the singleton configuration whole. Partial
// edits are the client's job; the document is small enough to round-trip.
func AdminUpdateSiteConfig(site *services.SiteConfigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req siteConfigRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		err := site.Upsert(c.Request.Context(), models.SiteConfig{
			SiteName:       req.SiteName,
			LogoURL:        req.LogoURL,
			ContactEmail:   req.ContactEmail,
			ContactPhone:   req.ContactPhone,
			Social:         req.Social,
			SEO:            req.SEO,
			FeatureToggles: req.FeatureToggles,
			Theme:          req.Theme,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "site configuration saved"})
	}
}
