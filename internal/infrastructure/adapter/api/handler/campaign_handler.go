package handler

import (
	"net/http"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CampaignHandler handles campaign catalog HTTP requests
type CampaignHandler struct {
	logger coreport.Logger
}

// NewCampaignHandler creates a new campaign handler instance
func NewCampaignHandler(logger coreport.Logger) *CampaignHandler {
	return &CampaignHandler{logger: logger}
}

// ListCampaigns handles the GET /campaigns endpoint
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	category := c.DefaultQuery("category", entity.CategoryAll)

	campaigns := entity.ListByCategory(category)

	responses := make([]dto.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		responses = append(responses, dto.CampaignResponse{
			ID:          campaign.ID,
			Title:       campaign.Title,
			Category:    string(campaign.Category),
			Description: campaign.Description,
			Goal:        campaign.GoalAmount,
			Raised:      campaign.RaisedAmount,
		})
	}

	c.JSON(http.StatusOK, dto.CampaignListResponse{
		Category:  category,
		Campaigns: responses,
	})
}
