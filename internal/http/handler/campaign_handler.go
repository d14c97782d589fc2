package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/repository"
)

// CampaignHandler exposes the read-only campaign surface. No write path
// exists; the handler talks to the repository directly.
type CampaignHandler struct {
	Campaigns repository.CampaignRepository
}

// NewCampaignHandler creates the handler set.
func NewCampaignHandler(campaigns repository.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{Campaigns: campaigns}
}

// List returns campaigns, capped by ?limit=.
func (h *CampaignHandler) List(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			respondError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	campaigns, err := h.Campaigns.FindAll(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "campaign")
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"campaigns": campaigns,
		"total":     len(campaigns),
	})
}

// Get returns one campaign.
func (h *CampaignHandler) Get(c *gin.Context) {
	campaign, err := h.Campaigns.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "campaign")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "campaign": campaign})
}
