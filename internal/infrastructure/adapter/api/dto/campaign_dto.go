package dto

// CampaignResponse represents a campaign in API responses
type CampaignResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Goal        string `json:"goal"`
	Raised      string `json:"raised"`
}

// CampaignListResponse represents the API response for listing campaigns
type CampaignListResponse struct {
	Category  string             `json:"category"`
	Campaigns []CampaignResponse `json:"campaigns"`
}
